package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	descriptionLimit  = 1500
	truncationMarker  = "..."
)

var (
	nonAmountChars = regexp.MustCompile(`[^0-9.]`)
	innerSpace     = regexp.MustCompile(`\s+`)
	edgePunct      = regexp.MustCompile(`^[:\.\-\s]+|[:\.\-\s]+$`)
	trailingInitial = regexp.MustCompile(`\s+[A-Z]\.?$`)
	trailingSuffix  = regexp.MustCompile(`(?i)\s+(?:JR|SR|II|III|IV|V)$`)
	sentenceSplit   = regexp.MustCompile(`[.!?]+`)
)

// CoerceCurrency parses a captured amount string into a non-negative float.
// It is total: any input that cannot be parsed, including garbage text,
// yields 0.
func CoerceCurrency(s string) float64 {
	clean := nonAmountChars.ReplaceAllString(s, "")
	if clean == "" {
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// dateLayouts is the ordered list of accepted calendar-date formats. The
// first layout that parses wins.
var dateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2, 2006 3:04 PM",
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2/1/06",
	"2006-01-02",
	"2-1-2006",
}

// CoerceDate re-emits a recognized date as YYYY-MM-DD. Unrecognized input is
// returned unchanged; the caller keeps the literal rather than failing.
func CoerceDate(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// coerceName trims a single trailing initial ("... J.") and a generational
// suffix (Jr/Sr/II/III/IV/V) from the end of a captured name.
func coerceName(s string) string {
	s = strings.TrimSpace(innerSpace.ReplaceAllString(s, " "))
	s = trailingInitial.ReplaceAllString(s, "")
	s = trailingSuffix.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ocrCorrections fixes the handful of I/l confusions that survive into
// narrative text pulled from scanned reports.
var ocrCorrections = []struct{ old, new string }{
	{"Iight", "light"},
	{"poIe", "pole"},
	{"Iot", "lot"},
}

// coerceDescription cleans a captured loss narrative: whitespace collapse,
// edge punctuation removal, OCR corrections, and truncation to the
// description limit preferring sentence boundaries.
func coerceDescription(s string) string {
	s = strings.TrimSpace(innerSpace.ReplaceAllString(s, " "))
	s = edgePunct.ReplaceAllString(s, "")
	for _, c := range ocrCorrections {
		s = strings.ReplaceAll(s, c.old, c.new)
	}

	if len(s) <= descriptionLimit {
		return s
	}

	var trimmed strings.Builder
	for _, sentence := range sentenceSplit.Split(s, -1) {
		if trimmed.Len()+len(sentence) >= descriptionLimit {
			break
		}
		trimmed.WriteString(sentence)
		trimmed.WriteString(".")
	}
	if trimmed.Len() > 0 {
		return trimmed.String()
	}
	return s[:descriptionLimit] + truncationMarker
}

// coerce applies the kind-specific conversion to a raw captured value. It
// never fails; degradation always produces a defined value.
func coerce(kind Kind, value string) any {
	value = strings.TrimSpace(innerSpace.ReplaceAllString(value, " "))
	switch kind {
	case KindCurrency:
		return CoerceCurrency(value)
	case KindDate:
		return CoerceDate(value)
	case KindIdentifier:
		return strings.ToUpper(value)
	case KindName:
		return coerceName(value)
	case KindDescription:
		return coerceDescription(value)
	default:
		return value
	}
}
