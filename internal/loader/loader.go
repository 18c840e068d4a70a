// Package loader reads claim report files from disk and hands the core an
// already-decoded text string.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// Load reads a report file and returns its decoded text. Only plain-text
// files are supported; PDF ingestion lives outside this service.
func Load(path string) (domain.RawDocument, error) {
	if path == "" {
		return domain.RawDocument{}, fmt.Errorf("load document: empty path")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return loadText(path)
	case ".pdf":
		return domain.RawDocument{}, fmt.Errorf("load document %q: %w", path, domain.ErrUnsupportedFileType)
	default:
		return domain.RawDocument{}, fmt.Errorf("load document %q: %w", path, domain.ErrUnsupportedFileType)
	}
}

func loadText(path string) (domain.RawDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("read document %q: %w", path, err)
	}

	text, err := decode(raw)
	if err != nil {
		return domain.RawDocument{}, fmt.Errorf("decode document %q: %w", path, err)
	}

	doc := domain.RawDocument{
		Text:   stripControl(text),
		Format: domain.FormatPlain,
	}
	if IsACORDForm(doc.Text) {
		doc.Format = domain.FormatForm
	}
	return doc, nil
}

// decode interprets file bytes as UTF-8 when valid, otherwise falls back to
// Windows-1252 and then Latin-1. Scanned report exports in the wild are
// frequently cp1252 despite claiming otherwise.
func decode(raw []byte) (string, error) {
	// UTF-8 BOM.
	if len(raw) >= 3 && raw[0] == 0xEF && raw[1] == 0xBB && raw[2] == 0xBF {
		raw = raw[3:]
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	if out, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil {
		return string(out), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// stripControl removes control characters other than newline and tab, which
// the normalizer handles itself.
func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)
}

// IsACORDForm reports whether the text looks like an ACORD loss notice. The
// marker string appears on every page of the standard form.
func IsACORDForm(text string) bool {
	return strings.Contains(strings.ToUpper(text), "ACORD")
}
