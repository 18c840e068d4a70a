package routing

import (
	"fmt"
	"strings"
	"time"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// highDamageThreshold flags amounts large enough to warrant a second look.
const highDamageThreshold = 1000000.0

// Validate runs the non-gating data-quality checks over extracted fields.
// The result never affects routing; it is attached to the claim record for
// downstream review.
func Validate(fields domain.FieldMap) domain.ValidationReport {
	return validateAt(fields, time.Now())
}

func validateAt(fields domain.FieldMap, now time.Time) domain.ValidationReport {
	report := domain.ValidationReport{
		Warnings:        []string{},
		Errors:          []string{},
		Inconsistencies: []string{},
	}

	if damage := fields.Amount(domain.FieldEstimatedDamage); damage > highDamageThreshold {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("Unusually high damage amount: %s", formatMoney(damage, 2)))
	}

	// Unparseable dates are skipped, not reported; the extraction layer
	// already kept the literal for a human to read.
	if dateStr := fields.String(domain.FieldDateOfLoss); dateStr != "" {
		if lossDate, err := time.Parse("2006-01-02", dateStr); err == nil && lossDate.After(now) {
			report.Errors = append(report.Errors,
				"Date of loss is in the future: "+dateStr)
		}
	}

	if description := fields.String(domain.FieldDescription); len(description) < 10 {
		report.Warnings = append(report.Warnings,
			"Description is very short, may be incomplete")
	}

	claimType := fields.String(domain.FieldClaimType)
	description := strings.ToLower(fields.String(domain.FieldDescription))
	if claimType == string(domain.ClaimTypeInjury) && !strings.Contains(description, "injury") {
		report.Inconsistencies = append(report.Inconsistencies,
			"Claim type is 'injury' but description doesn't mention injuries")
	}

	return report
}
