// Package normalize prepares raw report text for pattern extraction.
//
// Two paths exist: the generic path for free-form narrative reports, and the
// form path for table-heavy ACORD loss notices, which keeps double spaces as
// column separators and rewrites scanner artifacts into canonical labels.
package normalize

import (
	"regexp"
	"strings"
)

var (
	hspaceRun   = regexp.MustCompile(`[ \t]{2,}`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
	crlf        = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Normalize collapses whitespace runs to a single space, unifies line
// endings, and trims excess blank lines. It never fails; empty input yields
// an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = crlf.Replace(text)
	text = hspaceRun.ReplaceAllString(text, " ")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// ocrReplacements maps scanner artifacts in ACORD form text to their ASCII
// equivalents. Order matters: replacements apply as literal substring
// rewrites in declaration order, one full pass, no re-scan.
//
// The lowercase "l" to "I" rewrite is deliberate legacy behavior carried
// over from the upstream cleaning table: it fixes the frequent I/l confusion
// in scanned form labels at the cost of corrupting ordinary words. Do not
// extend it.
var ocrReplacements = []struct{ old, new string }{
	{"l", "I"},
	{"|", "I"},
	{"１", "1"},
	{"２", "2"},
	{"３", "3"},
	{"４", "4"},
	{"５", "5"},
	{"６", "6"},
	{"７", "7"},
	{"８", "8"},
	{"９", "9"},
	{"０", "0"},
	{"．", "."},
	{"，", ","},
	{"；", ";"},
	{"：", ":"},
	{"（", "("},
	{"）", ")"},
	{"［", "["},
	{"］", "]"},
	{"｛", "{"},
	{"｝", "}"},
	{"＄", "$"},
}

// labelStandardizations rewrites known label variants onto the canonical
// ACORD field labels the form catalog expects. Earlier rewrites can enable
// later ones; applied case-sensitively in declaration order.
var labelStandardizations = []struct{ old, new string }{
	{"POLICY NO", "POLICY NUMBER"},
	{"POLICY#", "POLICY NUMBER"},
	{"POL NO", "POLICY NUMBER"},
	{"VEHICLE ID NUMBER", "V.I.N."},
	{"VEHICLE ID", "V.I.N."},
	{"ESTIMATED DAMAGES", "ESTIMATE AMOUNT"},
	{"LOSS DATE", "DATE OF LOSS"},
	{"INSUREDS NAME", "NAME OF INSURED"},
	{"NAIC NO", "NAIC CODE"},
}

// NormalizeForm cleans ACORD form text. Whitespace runs collapse to exactly
// two spaces to preserve column-style field separation, then the OCR and
// label tables are applied. Never fails.
func NormalizeForm(text string) string {
	if text == "" {
		return ""
	}
	text = crlf.Replace(text)
	text = hspaceRun.ReplaceAllString(text, "  ")
	text = blankLines.ReplaceAllString(text, "\n\n")

	for _, r := range ocrReplacements {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	for _, r := range labelStandardizations {
		text = strings.ReplaceAll(text, r.old, r.new)
	}
	return strings.TrimSpace(text)
}
