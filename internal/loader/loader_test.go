package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad_PlainText(t *testing.T) {
	path := writeFile(t, "report.txt", []byte("Policy Number: AUTO-123\nDescription: minor scrape"))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatPlain, doc.Format)
	assert.Contains(t, doc.Text, "AUTO-123")
}

func TestLoad_BOMStripped(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Policy Number: AUTO-123")...)
	path := writeFile(t, "bom.txt", data)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Policy Number: AUTO-123", doc.Text)
}

func TestLoad_Windows1252Fallback(t *testing.T) {
	// 0x93/0x94 are curly quotes in cp1252 and invalid UTF-8.
	data := []byte("Claimant said \x93it was not my fault\x94")
	path := writeFile(t, "legacy.txt", data)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "“it was not my fault”")
}

func TestLoad_ControlCharactersStripped(t *testing.T) {
	path := writeFile(t, "ctrl.txt", []byte("Policy\x00 Number:\x07 AUTO-123\nnext line"))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Policy Number: AUTO-123\nnext line", doc.Text)
}

func TestLoad_ACORDDetection(t *testing.T) {
	path := writeFile(t, "notice.txt", []byte("ACORD AUTOMOBILE LOSS NOTICE\nPOLICY NUMBER: CA-1"))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FormatForm, doc.Format)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	for _, name := range []string{"scan.pdf", "photo.jpg"} {
		path := writeFile(t, name, []byte("irrelevant"))
		_, err := Load(path)
		assert.True(t, errors.Is(err, domain.ErrUnsupportedFileType), "expected unsupported type for %s", name)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestIsACORDForm(t *testing.T) {
	assert.True(t, IsACORDForm("ACORD 2 AUTOMOBILE LOSS NOTICE"))
	assert.True(t, IsACORDForm("this acord form"))
	assert.False(t, IsACORDForm("ordinary narrative report"))
}
