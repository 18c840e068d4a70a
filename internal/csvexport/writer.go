package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Claim ID",
	"Document Name",
	"Format",
	"Route",
	"Reasoning",
	"Policy Number",
	"Policyholder Name",
	"Date of Loss",
	"Location",
	"Description",
	"Claim Type",
	"Estimated Damage",
	"Missing Fields",
	"Warnings",
	"Errors",
	"Inconsistencies",
	"Processed At",
	"Created At",
}

// Writer wraps csv.Writer for exporting claims as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteClaims converts a batch of claims to CSV rows and writes them.
func (w *Writer) WriteClaims(claims []domain.Claim) error {
	for i := range claims {
		row := claimToRow(&claims[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// claimToRow converts a single claim to a string slice. Field columns are
// left empty when the stored JSON does not unmarshal.
func claimToRow(c *domain.Claim) []string {
	row := make([]string, len(columns))

	row[0] = c.ID.String()
	row[1] = c.DocumentName
	row[2] = string(c.Format)
	row[3] = string(c.Route)
	row[4] = c.Reasoning
	row[16] = c.ProcessedAt.Format(time.RFC3339)
	row[17] = c.CreatedAt.Format(time.RFC3339)

	var fields domain.FieldMap
	if err := json.Unmarshal(c.ExtractedFields, &fields); err == nil {
		row[5] = fields.String(domain.FieldPolicyNumber)
		row[6] = fields.String(domain.FieldPolicyholderName)
		row[7] = fields.String(domain.FieldDateOfLoss)
		row[8] = fields.String(domain.FieldLocation)
		row[9] = fields.String(domain.FieldDescription)
		row[10] = fields.String(domain.FieldClaimType)
		if fields.Has(domain.FieldEstimatedDamage) {
			row[11] = strconv.FormatFloat(fields.Amount(domain.FieldEstimatedDamage), 'f', 2, 64)
		}
	}

	var missing []string
	if err := json.Unmarshal(c.MissingFields, &missing); err == nil {
		row[12] = strings.Join(missing, "; ")
	}

	var validation domain.ValidationReport
	if err := json.Unmarshal(c.Validation, &validation); err == nil {
		row[13] = strings.Join(validation.Warnings, "; ")
		row[14] = strings.Join(validation.Errors, "; ")
		row[15] = strings.Join(validation.Inconsistencies, "; ")
	}

	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
