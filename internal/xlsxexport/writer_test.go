package xlsxexport

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

func TestWrite(t *testing.T) {
	fields := domain.FieldMap{}
	fields.Set(domain.FieldPolicyNumber, "AUTO-78901234")
	fields.Set(domain.FieldEstimatedDamage, 8200.0)
	fieldsJSON, err := json.Marshal(fields)
	require.NoError(t, err)
	missingJSON, err := json.Marshal([]string{"location"})
	require.NoError(t, err)

	claim := domain.Claim{
		ID:              uuid.New(),
		DocumentName:    "report.txt",
		Format:          domain.FormatPlain,
		ExtractedFields: fieldsJSON,
		MissingFields:   missingJSON,
		Route:           domain.RouteManualReview,
		Reasoning:       "Missing required fields: location",
		ProcessedAt:     time.Date(2024, 2, 2, 9, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []domain.Claim{claim}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Claim ID", rows[0][0])
	assert.Equal(t, "report.txt", rows[1][1])
	assert.Equal(t, "Manual Review", rows[1][3])
	assert.Equal(t, "AUTO-78901234", rows[1][5])
	assert.Equal(t, "location", rows[1][12])
}
