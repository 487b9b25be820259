package textutil

import "testing"

func TestValidateFileName(t *testing.T) {
	valid := []string{"C95", "M3-54", "コミックマーケット95", "Reitaisai 16", "a.b"}
	for _, name := range valid {
		if err := ValidateFileName(name); err != nil {
			t.Errorf("ValidateFileName(%q) = %v, want nil", name, err)
		}
	}
	invalid := []string{"", ".", "..", ".hidden", "C95/extra", `C95\x`, "a:b", "what?", " C95", "C95 ", "end.", "con", "LPT1.txt", "tab\tname", "C\xff95"}
	for _, name := range invalid {
		if err := ValidateFileName(name); err == nil {
			t.Errorf("ValidateFileName(%q) = nil, want error", name)
		}
	}
}

func TestAliasKeyFoldsCaseAndNormalization(t *testing.T) {
	if AliasKey("C95") != AliasKey("c95") {
		t.Fatal("expected case-insensitive match")
	}
	composed := "é"   // é
	decomposed := "é" // e + combining acute
	if AliasKey(composed) != AliasKey(decomposed) {
		t.Fatal("expected NFC-equivalent aliases to share a key")
	}
	if AliasKey("C95") == AliasKey("C96") {
		t.Fatal("expected distinct aliases to differ")
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := map[string]string{
		"Comiket":           "Comiket",
		"  Comic/Market  ":  "Comic-Market",
		`M3: "Spring" <2019>`: "M3- Spring 2019",
		"":                  "",
	}
	for in, want := range tests {
		if got := SanitizeFileName(in); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
