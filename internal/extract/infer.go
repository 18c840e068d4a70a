package extract

import (
	"regexp"
	"strings"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// claimTypeKeywords are checked in priority order against the lowercased
// narrative. An earlier group beats a later one, so an injured driver in a
// stolen vehicle still classifies as injury.
var claimTypeKeywords = []struct {
	claimType domain.ClaimType
	markers   []string
}{
	{domain.ClaimTypeInjury, []string{"injury", "injured", "hurt", "pain", "hospital", "ambulance", "whiplash", "medical"}},
	{domain.ClaimTypeTheft, []string{"theft", "stolen", "burglary", "break-in", "broke into", "robbed"}},
	{domain.ClaimTypeFire, []string{"fire", "smoke", "burned", "flames"}},
	{domain.ClaimTypeWaterDamage, []string{"flood", "water damage", "leak", "pipe burst", "sewage"}},
	{domain.ClaimTypeVandalism, []string{"vandalism", "vandalized", "graffiti", "keyed"}},
	{domain.ClaimTypeVehicleDamage, []string{"collision", "rear-end", "rear end", "accident", "crash", "vehicle", "car", "fender"}},
}

// InferClaimType classifies the loss narrative by keyword priority. An empty
// narrative or one matching no keyword group yields property_damage.
func InferClaimType(description string) domain.ClaimType {
	lowered := strings.ToLower(description)
	for _, group := range claimTypeKeywords {
		for _, marker := range group.markers {
			if strings.Contains(lowered, marker) {
				return group.claimType
			}
		}
	}
	return domain.ClaimTypePropertyDamage
}

// vehicleSectionPatterns locate the vehicle block inside a document.
var vehicleSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)VEH\s*#.*?DESCRIBE\s*DAMAGE`),
	regexp.MustCompile(`(?is)VEHICLE\s*INFORMATION.*?DESCRIBE\s*DAMAGE`),
	regexp.MustCompile(`(?is)YEAR.*?MAKE.*?MODEL.*?VIN[^\n]*\n(?:[^\n]*\n?){0,4}`),
}

var vehicleAttributePatterns = []struct {
	field string
	upper bool
	re    *regexp.Regexp
}{
	{domain.FieldVehicleYear, false, regexp.MustCompile(`(?i)YEAR\s*[:\s]+([0-9]{4})`)},
	{domain.FieldVehicleMake, false, regexp.MustCompile(`(?im)MAKE[:\s]+([A-Za-z]+)`)},
	{domain.FieldVehicleModel, false, regexp.MustCompile(`(?im)MODEL[:\s]+([A-Za-z0-9\-]+)`)},
	{domain.FieldVehicleVIN, true, regexp.MustCompile(`(?i)\b(?:V\.I\.N\.|VIN)[:\s]+([A-Z0-9]{17})`)},
	{domain.FieldPlateNumber, true, regexp.MustCompile(`(?im)PLATE\s*(?:NUMBER|NO\.?)?[:\s]+([A-Z0-9\-]+)`)},
}

// extractVehicleSection pulls year, make, model, VIN, and plate from the
// document's vehicle block, if one is present. Inner patterns run against
// only the matched section so vehicle attributes cannot latch onto
// unrelated text.
func extractVehicleSection(text string) domain.FieldMap {
	out := domain.FieldMap{}
	var section string
	for _, re := range vehicleSectionPatterns {
		if m := re.FindString(text); m != "" {
			section = m
			break
		}
	}
	if section == "" {
		return out
	}
	for _, attr := range vehicleAttributePatterns {
		if m := attr.re.FindStringSubmatch(section); m != nil {
			value := strings.TrimSpace(m[1])
			if attr.upper {
				value = strings.ToUpper(value)
			}
			out.Set(attr.field, value)
		}
	}
	return out
}

var (
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?im)(?:Phone|Tel|Telephone|Cell|Mobile)[:\s]+([0-9\-\(\)\. ]{10,})`),
		regexp.MustCompile(`(?im)Contact[:\s]+([0-9\-\(\)\. ]{10,})`),
		regexp.MustCompile(`\(([0-9]{3})\)\s*([0-9]{3})[\-\. ]([0-9]{4})`),
		regexp.MustCompile(`\b([0-9]{3})[\-\. ]([0-9]{3})[\-\. ]([0-9]{4})\b`),
	}
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	nonDigit     = regexp.MustCompile(`[^0-9]`)
)

// extractContacts scans for a phone number and an email address anywhere in
// the document. A phone candidate is only kept when it carries at least ten
// digits after stripping punctuation.
func extractContacts(text string) domain.FieldMap {
	out := domain.FieldMap{}
	for _, re := range phonePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(strings.Join(m[1:], "-"))
		if len(nonDigit.ReplaceAllString(candidate, "")) >= 10 {
			out.Set(domain.FieldContactPhone, candidate)
			break
		}
	}
	if m := emailPattern.FindString(text); m != "" {
		out.Set(domain.FieldContactEmail, m)
	}
	return out
}
