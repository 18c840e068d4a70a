package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceCurrency(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain", "8200", 8200},
		{"comma grouped", "42,000", 42000},
		{"with cents", "1,234.56", 1234.56},
		{"dollar sign", "$500.00", 500},
		{"garbage", "Unknown", 0},
		{"empty", "", 0},
		{"mixed text", "about 5,000 dollars", 5000},
		{"multiple dots", "1.2.3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceCurrency(tt.input))
		})
	}
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"long month", "February 1, 2024", "2024-02-01"},
		{"short month", "Mar 15, 2024", "2024-03-15"},
		{"slash US", "3/15/2024", "2024-03-15"},
		{"slash short year", "3/15/24", "2024-03-15"},
		{"iso passthrough", "2024-03-15", "2024-03-15"},
		{"unparseable keeps literal", "Last week", "Last week"},
		{"whitespace trimmed", "  January 2, 2024 ", "2024-01-02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceDate(tt.input))
		})
	}
}

func TestCoerceName(t *testing.T) {
	assert.Equal(t, "John Smith", coerceName("John Smith J."))
	assert.Equal(t, "John Smith", coerceName("John Smith Jr"))
	assert.Equal(t, "Mary Anne Watson", coerceName("  Mary  Anne   Watson "))
}

func TestCoerceDescription(t *testing.T) {
	t.Run("cleans edges and whitespace", func(t *testing.T) {
		got := coerceDescription(":  Vehicle was   rear-ended at a stop light. ")
		assert.Equal(t, "Vehicle was rear-ended at a stop light", got)
	})

	t.Run("fixes scanner confusions", func(t *testing.T) {
		got := coerceDescription("Hit a poIe near the parking Iot under a street Iight")
		assert.Contains(t, got, "pole")
		assert.Contains(t, got, "lot")
		assert.Contains(t, got, "light")
	})

	t.Run("truncates long narratives at sentence boundary", func(t *testing.T) {
		sentence := "The insured vehicle sustained significant damage to the rear quarter panel. "
		long := strings.Repeat(sentence, 50)
		got := coerceDescription(long)
		assert.LessOrEqual(t, len(got), descriptionLimit+len(truncationMarker))
		assert.True(t, strings.HasSuffix(got, "."))
	})
}
