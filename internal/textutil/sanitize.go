package textutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// unsafeFileNameChars are rejected outright by ValidateFileName.
const unsafeFileNameChars = `/\:*?"<>|`

// reservedDeviceNames cannot be used as file stems on Windows.
var reservedDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// maxFileStemBytes leaves room for the ".json" suffix under the common
// 255-byte name limit.
const maxFileStemBytes = 250

// SanitizeFileName replaces filesystem-unsafe characters in a filename.
// Slashes, backslashes, colons, and asterisks become dashes; other unsafe
// characters are removed. The result is trimmed of leading/trailing whitespace.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// ValidateFileName reports why name cannot be used verbatim as a file stem,
// or nil when it can. It never rewrites the name.
func ValidateFileName(name string) error {
	switch {
	case name == "":
		return errors.New("name is empty")
	case !utf8.ValidString(name):
		return errors.New("name is not valid UTF-8")
	case name == "." || name == "..":
		return fmt.Errorf("%q is a directory reference", name)
	case strings.HasPrefix(name, "."):
		return errors.New("name starts with a dot")
	case strings.TrimSpace(name) != name:
		return errors.New("name has leading or trailing whitespace")
	case strings.HasSuffix(name, "."):
		return errors.New("name ends with a dot")
	case len(name) > maxFileStemBytes:
		return fmt.Errorf("name is %d bytes long, limit is %d", len(name), maxFileStemBytes)
	}
	if i := strings.IndexAny(name, unsafeFileNameChars); i >= 0 {
		return fmt.Errorf("name contains %q", name[i])
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name contains control character %U", r)
		}
	}
	stem, _, _ := strings.Cut(name, ".")
	if _, reserved := reservedDeviceNames[strings.ToUpper(stem)]; reserved {
		return fmt.Errorf("%q is a reserved device name", stem)
	}
	return nil
}
