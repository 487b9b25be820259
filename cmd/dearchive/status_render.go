package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"dearchive/internal/store"
)

type severity int

const (
	severityInfo severity = iota
	severityOK
	severityWarn
	severityError
)

var severityStyles = map[severity]struct {
	label string
	color string
}{
	severityInfo:  {"INFO", "\x1b[34m"},
	severityOK:    {"OK", "\x1b[32m"},
	severityWarn:  {"WARN", "\x1b[33m"},
	severityError: {"ERROR", "\x1b[31m"},
}

const ansiReset = "\x1b[0m"

// reportWriter builds the human-readable verify output. Colour is applied
// per line only when stdout is a terminal.
type reportWriter struct {
	colorize bool
	lines    []string
}

func (w *reportWriter) paint(color, text string) string {
	if !w.colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

func (w *reportWriter) header(title string) {
	line := "== " + strings.TrimSpace(title) + " =="
	w.lines = append(w.lines,
		w.paint(severityStyles[severityInfo].color, line),
		w.paint(severityStyles[severityInfo].color, strings.Repeat("-", len(line))))
}

func (w *reportWriter) status(label string, sev severity, message string) {
	style := severityStyles[sev]
	text := "[" + style.label + "]"
	if message != "" {
		text += " " + message
	}
	w.lines = append(w.lines, w.paint(style.color, fmt.Sprintf("  %-20s %s", label+":", text)))
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderVerifyReport lays out a store report as a section of status lines,
// one per issue.
func renderVerifyReport(report store.Report, colorize bool) []string {
	w := &reportWriter{colorize: colorize}
	w.header("Store " + report.Group)
	w.status("Folder", severityInfo, report.Folder)
	w.status("Contents", severityInfo, fmt.Sprintf("%d events, %d circles", report.Events, report.Circles))
	if report.OK() {
		w.status("Index", severityOK, "consistent with shards")
		return w.lines
	}
	for _, issue := range report.Issues {
		label := issue.Alias
		if label == "" {
			label = "folder"
		}
		w.status(label, issueSeverity(issue.Kind), string(issue.Kind)+": "+issue.Detail)
	}
	return w.lines
}

// Leftovers from interrupted writes are harmless; index disagreements are not.
func issueSeverity(kind store.IssueKind) severity {
	switch kind {
	case store.IssueOrphanShard, store.IssueLeftoverTemp:
		return severityWarn
	default:
		return severityError
	}
}
