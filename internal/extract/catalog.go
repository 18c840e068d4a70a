// Package extract turns normalized FNOL report text into typed, named fields
// using ordered pattern cascades, then enriches the result with cross-field
// inference and substructure scans.
package extract

import (
	"regexp"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// Kind selects the coercion applied to a raw captured value.
type Kind int

const (
	KindText Kind = iota
	KindCurrency
	KindDate
	KindIdentifier
	KindName
	KindDescription
)

// Entry is one field's pattern cascade: candidate patterns tried in declared
// order, first match wins. Pattern order is a correctness contract: labeled,
// structured patterns must precede generic fallbacks or ambiguous documents
// will resolve to the wrong capture.
type Entry struct {
	Field    string
	Kind     Kind
	Patterns []*regexp.Regexp
}

// Catalog is the ordered list of field cascades applied to one document.
type Catalog []Entry

func pats(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// GenericCatalog returns the pattern catalog for free-form narrative reports.
func GenericCatalog() Catalog {
	return Catalog{
		{
			Field: domain.FieldPolicyNumber, Kind: KindIdentifier,
			Patterns: pats(
				`(?im)Policy\s*Number[:\s]+([A-Z0-9\-_]+[A-Z0-9])`,
				`(?im)Policy\s*#[:\s]+([A-Z0-9\-_]+[A-Z0-9])`,
				`(?im)Policy\s*No\.?[:\s]+([A-Z0-9\-_]+[A-Z0-9])`,
				`(?im)Policy[:\s]+([A-Z0-9\-_]+[A-Z0-9])`,
			),
		},
		{
			Field: domain.FieldPolicyholderName, Kind: KindName,
			Patterns: pats(
				`(?im)Policyholder\s*Name[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Name\s*of\s*Insured[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Named\s*Insured[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Insured\s*Name[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Name[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Claimant[:\s]+([A-Z][a-zA-Z ]+)`,
			),
		},
		{
			Field: domain.FieldEffectiveDates, Kind: KindText,
			Patterns: pats(
				`(?im)Effective\s*Date[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
				`(?im)Policy\s*Period[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
				`(?im)Coverage\s*Dates[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
			),
		},
		{
			Field: domain.FieldDateOfLoss, Kind: KindDate,
			Patterns: pats(
				`(?im)Date\s*of\s*Loss[:\s]+([A-Z][a-z]+\s+\d{1,2},\s+\d{4})`,
				`(?im)Date\s*of\s*Loss[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
				`(?im)Date[:\s]+([A-Z][a-z]+\s+\d{1,2},\s+\d{4})`,
				`(?im)Loss\s*Date[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
				`(?im)Incident\s*Date[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`,
			),
		},
		{
			Field: domain.FieldTimeOfLoss, Kind: KindText,
			Patterns: pats(
				`(?im)Time[:\s]+(\d{1,2}:\d{2}\s*[AP]M)`,
				`(?im)Time\s*of\s*Loss[:\s]+(\d{1,2}:\d{2}\s*[AP]M)`,
				`(?im)(\d{1,2}:\d{2}\s*[AP]M)\s*(?:on|date)`,
			),
		},
		{
			Field: domain.FieldLocation, Kind: KindText,
			Patterns: pats(
				`(?im)Location\s*of\s*Loss[:\s]+(.+)`,
				`(?im)Location[:\s]+(.+)`,
				`(?im)Address[:\s]+(.+)`,
				`(?im)Street[:\s]+(.+)`,
			),
		},
		{
			Field: domain.FieldDescription, Kind: KindDescription,
			Patterns: pats(
				`(?is)Description\s*of\s*(?:Accident|Loss|Incident)[:\s]+(.+?)(?:\n\n|\z)`,
				`(?im)Loss\s*Description[:\s]+(.+)`,
				`(?im)Description[:\s]+(.+)`,
				`(?im)Remarks[:\s]+(.+)`,
			),
		},
		{
			Field: domain.FieldAssetType, Kind: KindText,
			Patterns: pats(
				`(?im)Vehicle\s*Type[:\s]+([A-Za-z ]+)`,
				`(?im)Asset\s*Type[:\s]+([A-Za-z ]+)`,
				`(?im)Type\s*of\s*Vehicle[:\s]+([A-Za-z ]+)`,
			),
		},
		{
			Field: domain.FieldAssetID, Kind: KindIdentifier,
			Patterns: pats(
				`(?i)V\.I\.N\.[:\s]+([A-Z0-9]{17})`,
				`(?i)\bVIN[:\s]+([A-Z0-9]{17})`,
				`(?im)Vehicle\s*ID[:\s]+([A-Z0-9]+)`,
			),
		},
		{
			Field: domain.FieldEstimatedDamage, Kind: KindCurrency,
			Patterns: pats(
				`(?im)Damage\s*Estimate[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Estimate\s*Amount[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Estimated\s*Damage[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Amount[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)(?:Estimate|Damage|Amount)[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
			),
		},
		{
			Field: domain.FieldEstimateAmount, Kind: KindCurrency,
			Patterns: pats(
				`(?im)Estimate\s*Amount[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Damage\s*Estimate[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Estimated\s*Damage[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				// Bare dollar fallback. Matches any dollar figure in the
				// document, including unrelated amounts such as a policy
				// limit. Known accuracy limitation kept for compatibility.
				`\$([0-9,]+\.?[0-9]*)`,
			),
		},
		{
			Field: domain.FieldClaimant, Kind: KindName,
			Patterns: pats(
				`(?im)Claimant[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Driver\s*Name[:\s]+([A-Z][a-zA-Z ]+)`,
				`(?im)Name\s*of\s*Contact[:\s]+([A-Z][a-zA-Z ]+)`,
			),
		},
		{
			Field: domain.FieldContactDetails, Kind: KindText,
			Patterns: pats(
				`(?im)Phone[:\s]+([0-9\-\(\)\. ]{10,})`,
				`(?im)Contact[:\s]+([0-9\-\(\)\. ]{10,})`,
				`(?im)E-?mail[:\s]+([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`,
			),
		},
		{
			Field: domain.FieldAttachments, Kind: KindText,
			Patterns: pats(
				`(?im)Attachments[:\s]+(.+)`,
				`(?im)Documents\s*Attached[:\s]+(.+)`,
				`(?im)Photos[:\s]+(.+)`,
			),
		},
		{
			Field: domain.FieldInitialEstimate, Kind: KindCurrency,
			Patterns: pats(
				`(?im)Initial\s*Estimate[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Initial\s*Assessment[:\s]+\$?\s*([0-9,]+\.?[0-9]*)`,
			),
		},
	}
}
