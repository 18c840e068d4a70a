package extract

import (
	"regexp"
	"strings"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// ACORDCatalog returns the pattern catalog tuned to the canonical labels the
// form-path normalizer produces on ACORD automobile loss notices.
func ACORDCatalog() Catalog {
	return Catalog{
		{
			Field: domain.FieldPolicyNumber, Kind: KindIdentifier,
			Patterns: pats(
				`(?i)POLICY\s*NUMBER[:\s]*([A-Z0-9\-]+)`,
				`(?i)POLICY\s*#\s*([A-Z0-9\-]+)`,
				`(?is)NAIC\s*CODE.*?POLICY\s*NUMBER\s*([A-Z0-9\-]+)`,
			),
		},
		{
			Field: domain.FieldPolicyholderName, Kind: KindName,
			Patterns: pats(
				`(?i)NAME\s*OF\s*INSURED\s*(?:\(First,\s*Middle,\s*Last\))?[:\s]*([A-Z][A-Za-z ,\.]+)`,
				`(?im)INSURED\s*NAME[:\s]*([A-Za-z \.,]+)`,
			),
		},
		{
			Field: domain.FieldDateOfLoss, Kind: KindDate,
			Patterns: pats(
				`(?i)DATE\s*OF\s*LOSS\s*AND\s*TIME\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
				`(?i)DATE\s*OF\s*LOSS[:\s]*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`,
			),
		},
		{
			Field: domain.FieldTimeOfLoss, Kind: KindText,
			Patterns: pats(
				`(?is)DATE\s*OF\s*LOSS\s*AND\s*TIME.*?([0-9]{1,2}:[0-9]{2}\s*[AP]M)`,
				`(?i)TIME\s*([0-9]{1,2}:[0-9]{2}\s*[AP]M)`,
			),
		},
		{
			Field: domain.FieldLocation, Kind: KindText,
			Patterns: pats(
				`(?is)LOCATION\s*OF\s*LOSS\s*(.+?)(?:POLICE\s*OR\s*FIRE|DESCRIBE\s*LOCATION)`,
				`(?im)STREET[:\s]*(.+)`,
				`(?im)CITY,\s*STATE,\s*ZIP[:\s]*(.+)`,
			),
		},
		{
			Field: domain.FieldDescription, Kind: KindDescription,
			Patterns: pats(
				`(?is)DESCRIPTION\s*OF\s*ACCIDENT[:\s]*(.+?)(?:1\.\s*WAS\s*A\s*STANDARD|Page\s*\d+|ACORD|\z)`,
				`(?is)DESCRIBE\s*DAMAGE[:\s]*(.+?)(?:\n\n|ESTIMATE\s*AMOUNT|\z)`,
			),
		},
		{
			Field: domain.FieldEstimateAmount, Kind: KindCurrency,
			Patterns: pats(
				`(?im)ESTIMATE\s*AMOUNT[:\s]*\$?\s*([0-9,]+\.?[0-9]*)`,
				`(?im)Damage\s*Estimate[:\s]*\$?\s*([0-9,]+\.?[0-9]*)`,
			),
		},
		{
			Field: domain.FieldVehicleVIN, Kind: KindIdentifier,
			Patterns: pats(
				`(?i)V\.I\.N\.[:\s]*([A-Z0-9]{17})`,
				`(?i)\bVIN[:\s]*([A-Z0-9]{17})`,
			),
		},
		{
			Field: domain.FieldVehicleMake, Kind: KindText,
			Patterns: pats(
				`(?im)MAKE[:\s]+([A-Za-z]+)`,
			),
		},
		{
			Field: domain.FieldVehicleModel, Kind: KindText,
			Patterns: pats(
				`(?im)MODEL[:\s]+([A-Za-z0-9\-]+)`,
			),
		},
		{
			Field: domain.FieldVehicleYear, Kind: KindText,
			Patterns: pats(
				`(?i)YEAR\s*[:\s]*([0-9]{4})`,
			),
		},
		{
			Field: domain.FieldPlateNumber, Kind: KindIdentifier,
			Patterns: pats(
				`(?im)PLATE\s*NUMBER[:\s]*([A-Z0-9\-]+)`,
			),
		},
		{
			Field: domain.FieldCarrier, Kind: KindText,
			Patterns: pats(
				// Column break on forms is two spaces, so capture lazily up
				// to the next break or end of line.
				`(?im)CARRIER[:\s]+([A-Za-z][A-Za-z ]*?)(?:  |$)`,
			),
		},
		{
			Field: domain.FieldNAICCode, Kind: KindIdentifier,
			Patterns: pats(
				`(?i)NAIC\s*CODE\s*([0-9]+)`,
			),
		},
	}
}

// Injury markers checked on form descriptions when upgrading the default
// vehicle_damage claim type.
var formInjuryMarkers = []string{"injury", "injured", "hurt", "pain", "hospital", "ambulance"}

// formEstimateFallbacks are tried against the whole form text when the
// labeled estimate field produced nothing.
var formEstimateFallbacks = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$([0-9,]+\.?[0-9]*)\s*(?:estimate|damage|amount)`),
	regexp.MustCompile(`(?im)Amount[:\s]*\$?\s*([0-9,]+\.?[0-9]*)`),
	regexp.MustCompile(`(?i)([0-9,]+\.?[0-9]*)\s*dollars`),
}

// formPostProcess applies the ACORD-specific inference steps: the vehicle
// damage default (upgraded to injury when the narrative carries injury
// markers) and the widened estimate-amount search.
func formPostProcess(fields domain.FieldMap, text string) {
	if !fields.Has(domain.FieldClaimType) {
		claimType := domain.ClaimTypeVehicleDamage
		desc := strings.ToLower(fields.String(domain.FieldDescription))
		for _, marker := range formInjuryMarkers {
			if strings.Contains(desc, marker) {
				claimType = domain.ClaimTypeInjury
				break
			}
		}
		fields.Set(domain.FieldClaimType, string(claimType))
	}

	if !fields.Has(domain.FieldEstimateAmount) {
		for _, re := range formEstimateFallbacks {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if amount := CoerceCurrency(m[1]); amount > 0 {
				fields.Set(domain.FieldEstimateAmount, amount)
				break
			}
		}
	}
}
