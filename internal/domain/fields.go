package domain

import "strings"

// Canonical field names used by the extraction catalogs, the required-field
// vocabulary, and the routing rules. Currency fields hold float64 values;
// every other field holds a string.
const (
	FieldPolicyNumber     = "policy_number"
	FieldPolicyholderName = "policyholder_name"
	FieldEffectiveDates   = "effective_dates"
	FieldDateOfLoss       = "date_of_loss"
	FieldTimeOfLoss       = "time_of_loss"
	FieldLocation         = "location"
	FieldDescription      = "description"
	FieldAssetType        = "asset_type"
	FieldAssetID          = "asset_id"
	FieldEstimatedDamage  = "estimated_damage"
	FieldEstimateAmount   = "estimate_amount"
	FieldInitialEstimate  = "initial_estimate"
	FieldClaimant         = "claimant"
	FieldContactDetails   = "contact_details"
	FieldAttachments      = "attachments"
	FieldClaimType        = "claim_type"
	FieldVehicleYear      = "year"
	FieldVehicleMake      = "make"
	FieldVehicleModel     = "model"
	FieldVehicleVIN       = "vin"
	FieldPlateNumber      = "plate_number"
	FieldContactPhone     = "contact_phone"
	FieldContactEmail     = "contact_email"
	FieldCarrier          = "carrier"
	FieldNAICCode         = "naic_code"
)

// FieldMap holds the typed values extracted from one document, keyed by
// canonical field name. A key is never present with an empty string or a
// zero-only placeholder; absence of a key means the field was not found.
type FieldMap map[string]any

// String returns the string value for key, or "" if the key is absent or
// holds a non-string value.
func (f FieldMap) String(key string) string {
	s, _ := f[key].(string)
	return s
}

// Amount returns the currency value for key, or 0 if the key is absent or
// holds a non-numeric value.
func (f FieldMap) Amount(key string) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Has reports whether key is present with a non-empty, non-zero value.
func (f FieldMap) Has(key string) bool {
	switch v := f[key].(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case nil:
		return false
	}
	return f[key] != nil
}

// Set stores value under key, dropping empty strings and zero amounts so the
// map never holds blank or placeholder values.
func (f FieldMap) Set(key string, value any) {
	switch v := value.(type) {
	case string:
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		f[key] = v
	case float64:
		if v == 0 {
			return
		}
		f[key] = v
	case int:
		if v == 0 {
			return
		}
		f[key] = v
	case nil:
	default:
		f[key] = value
	}
}

// Merge copies every entry of other into f without overwriting keys that
// already hold a value.
func (f FieldMap) Merge(other FieldMap) {
	for k, v := range other {
		if !f.Has(k) {
			f.Set(k, v)
		}
	}
}
