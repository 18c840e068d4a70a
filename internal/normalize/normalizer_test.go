package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("collapses whitespace runs", func(t *testing.T) {
		got := Normalize("Policy   Number:\t\tABC-123")
		assert.Equal(t, "Policy Number: ABC-123", got)
	})

	t.Run("unifies line endings", func(t *testing.T) {
		got := Normalize("line one\r\nline two\rline three")
		assert.Equal(t, "line one\nline two\nline three", got)
	})

	t.Run("trims excess blank lines", func(t *testing.T) {
		got := Normalize("a\n\n\n\n\nb")
		assert.Equal(t, "a\n\nb", got)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", Normalize(""))
		assert.Equal(t, "", Normalize("   \n\t  "))
	})

	t.Run("idempotent", func(t *testing.T) {
		input := "Date of Loss:   March 15, 2024\r\n\r\n\r\nDescription: rear-ended"
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	})
}

func TestNormalizeForm(t *testing.T) {
	t.Run("keeps double space column separation", func(t *testing.T) {
		got := NormalizeForm("YEAR      MAKE      MODEL")
		assert.Equal(t, "YEAR  MAKE  MODEL", got)
	})

	t.Run("rewrites scanner artifacts", func(t *testing.T) {
		got := NormalizeForm("POLICY NUMBER: ＡUTO－ is not rewritten but １２３ digits are")
		assert.Contains(t, got, "123")
	})

	t.Run("lowercase l becomes I", func(t *testing.T) {
		got := NormalizeForm("PoIicy labeI")
		assert.NotContains(t, got, "l")
	})

	t.Run("standardizes label variants", func(t *testing.T) {
		got := NormalizeForm("POLICY NO: AUTO-123\nLOSS DATE: 3/15/2024\nVEHICLE ID NUMBER: 1HGBH41JXMN109186")
		assert.Contains(t, got, "POLICY NUMBER: AUTO-123")
		assert.Contains(t, got, "DATE OF LOSS: 3/15/2024")
		assert.Contains(t, got, "V.I.N.: 1HGBH41JXMN109186")
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Equal(t, "", NormalizeForm(""))
	})
}
