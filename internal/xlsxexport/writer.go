// Package xlsxexport renders stored claims as an Excel workbook.
package xlsxexport

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

const sheetName = "Claims"

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
	"Processed At",
}

// Write renders claims as a single-sheet workbook and streams it to w.
func Write(w io.Writer, claims []domain.Claim) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for rowIdx := range claims {
		row := claimToRow(&claims[rowIdx])
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return fmt.Errorf("row cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func claimToRow(c *domain.Claim) []any {
	row := make([]any, len(columns))
	row[0] = c.ID.String()
	row[1] = c.DocumentName
	row[2] = string(c.Format)
	row[3] = string(c.Route)
	row[4] = c.Reasoning
	row[13] = c.ProcessedAt.Format(time.RFC3339)

	var fields domain.FieldMap
	if err := json.Unmarshal(c.ExtractedFields, &fields); err == nil {
		row[5] = fields.String(domain.FieldPolicyNumber)
		row[6] = fields.String(domain.FieldPolicyholderName)
		row[7] = fields.String(domain.FieldDateOfLoss)
		row[8] = fields.String(domain.FieldLocation)
		row[9] = fields.String(domain.FieldDescription)
		row[10] = fields.String(domain.FieldClaimType)
		if fields.Has(domain.FieldEstimatedDamage) {
			row[11] = fields.Amount(domain.FieldEstimatedDamage)
		}
	}

	var missing []string
	if err := json.Unmarshal(c.MissingFields, &missing); err == nil {
		row[12] = strings.Join(missing, "; ")
	}

	return row
}
