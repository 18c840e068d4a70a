package extract

import (
	"regexp"

	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/normalize"
)

// Extractor runs one pattern catalog over report text and post-processes the
// matches into a typed field map. A single Extractor is safe for concurrent
// use; all state is immutable after construction.
type Extractor struct {
	catalog  Catalog
	required []string
	form     bool
}

// NewExtractor builds an extractor for free-form narrative reports. The
// required list defines both the completeness vocabulary and its reporting
// order.
func NewExtractor(required []string) *Extractor {
	return &Extractor{catalog: GenericCatalog(), required: required}
}

// NewFormExtractor builds an extractor tuned to ACORD-style structured forms.
func NewFormExtractor(required []string) *Extractor {
	return &Extractor{catalog: ACORDCatalog(), required: required, form: true}
}

// bareDollar is the last-resort damage search over the whole document.
var bareDollar = regexp.MustCompile(`\$([0-9,]+\.?[0-9]*)`)

// Extract normalizes text and applies the catalog. For each field the
// cascade stops at the first pattern that matches at all, whether or not its
// capture survives coercion; a later pattern never overrides an earlier
// match. Extraction is idempotent: running it on its own normalized input
// yields the same fields.
func (e *Extractor) Extract(text string) domain.FieldMap {
	fields := domain.FieldMap{}
	if e.form {
		text = normalize.NormalizeForm(text)
	} else {
		text = normalize.Normalize(text)
	}
	if text == "" {
		return fields
	}

	for _, entry := range e.catalog {
		for _, re := range entry.Patterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if raw := firstGroup(m); raw != "" {
				fields.Set(entry.Field, coerce(entry.Kind, raw))
			}
			break
		}
	}

	e.postProcess(fields, text)
	return fields
}

// firstGroup returns the first non-empty capture group of a match.
func firstGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

func (e *Extractor) postProcess(fields domain.FieldMap, text string) {
	syncDamageFields(fields)

	if e.form {
		formPostProcess(fields, text)
	} else if !fields.Has(domain.FieldClaimType) {
		if desc := fields.String(domain.FieldDescription); desc != "" {
			fields.Set(domain.FieldClaimType, string(InferClaimType(desc)))
		}
	}

	if !fields.Has(domain.FieldEstimatedDamage) {
		if m := bareDollar.FindStringSubmatch(text); m != nil {
			if amount := CoerceCurrency(m[1]); amount > 0 {
				fields.Set(domain.FieldEstimatedDamage, amount)
				fields.Set(domain.FieldEstimateAmount, amount)
			}
		}
	}

	fields.Merge(extractVehicleSection(text))
	fields.Merge(extractContacts(text))
	syncDamageFields(fields)
}

// syncDamageFields keeps the two damage synonyms equal. When both are
// present, estimated_damage wins; when only one is, it fills the other.
func syncDamageFields(fields domain.FieldMap) {
	switch {
	case fields.Has(domain.FieldEstimatedDamage):
		fields.Set(domain.FieldEstimateAmount, fields.Amount(domain.FieldEstimatedDamage))
	case fields.Has(domain.FieldEstimateAmount):
		fields.Set(domain.FieldEstimatedDamage, fields.Amount(domain.FieldEstimateAmount))
	}
}

// Missing returns the required fields absent from the extracted map, in the
// vocabulary's declared order.
func (e *Extractor) Missing(fields domain.FieldMap) []string {
	missing := make([]string, 0, len(e.required))
	for _, name := range e.required {
		if !fields.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
