package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Fahad-1515/fnol-agent/internal/config"
	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

func testEngine() *Engine {
	return NewEngine(config.RoutingConfig{
		FastTrackThreshold: 25000,
		FraudKeywords: []string{
			"fraud", "fraudulent", "staged", "fake", "suspicious", "scam",
		},
		InjuryKeywords: []string{
			"injury", "injured", "hurt", "pain", "hospital", "whiplash", "ambulance",
		},
	})
}

// completeFields returns a field map that passes the completeness gate.
func completeFields(description string, damage float64, claimType domain.ClaimType) domain.FieldMap {
	f := domain.FieldMap{}
	f.Set(domain.FieldPolicyNumber, "AUTO-78901234")
	f.Set(domain.FieldPolicyholderName, "Sarah Connor")
	f.Set(domain.FieldDateOfLoss, "2024-02-01")
	f.Set(domain.FieldLocation, "123 Main St, Springfield")
	f.Set(domain.FieldDescription, description)
	f.Set(domain.FieldEstimatedDamage, damage)
	f.Set(domain.FieldEstimateAmount, damage)
	f.Set(domain.FieldClaimType, string(claimType))
	return f
}

func TestDecide_MissingFieldsGate(t *testing.T) {
	e := testEngine()

	d := e.Decide(domain.FieldMap{}, []string{"location", "description", "estimated_damage"})
	assert.Equal(t, domain.RouteManualReview, d.Route)
	assert.Equal(t, "Missing required fields: location, description, estimated_damage", d.Reasoning)
}

func TestDecide_FastTrack(t *testing.T) {
	e := testEngine()

	fields := completeFields("Vehicle was side-swiped while parked. Minor damage.", 8200, domain.ClaimTypeVehicleDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteFastTrack, d.Route)
	assert.Equal(t, "Estimated damage ($8,200.00) is below $25,000 threshold", d.Reasoning)
}

func TestDecide_InjuryGoesToSpecialist(t *testing.T) {
	e := testEngine()

	fields := completeFields("Driver reported whiplash after being rear-ended.", 42000, domain.ClaimTypeInjury)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteSpecialistQueue, d.Route)
	assert.Equal(t, "Injury claim with indicators: whiplash", d.Reasoning)
}

func TestDecide_InjuryWithoutKeywords(t *testing.T) {
	e := testEngine()

	fields := completeFields("Claimant slipped on wet flooring.", 5000, domain.ClaimTypeInjury)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteSpecialistQueue, d.Route)
	assert.Equal(t, "Injury claim type identified", d.Reasoning)
}

func TestDecide_FraudGoesToInvestigation(t *testing.T) {
	e := testEngine()

	fields := completeFields("Neighbor believes the claimant staged incident for insurance fraud.", 3000, domain.ClaimTypeVehicleDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteInvestigationFlag, d.Route)
	assert.Contains(t, d.Reasoning, "Fraud indicators detected:")
	assert.Contains(t, d.Reasoning, "fraud")
	assert.Contains(t, d.Reasoning, "staged")
}

func TestDecide_FraudGateDominatesInjuryAndDamage(t *testing.T) {
	e := testEngine()

	// Injury claim type, high damage, and fraud indicators together.
	fields := completeFields("Suspicious injury claim, likely staged.", 90000, domain.ClaimTypeInjury)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteInvestigationFlag, d.Route)
}

func TestDecide_HighDamageStandardProcessing(t *testing.T) {
	e := testEngine()

	fields := completeFields("Tree fell through the roof during the storm.", 100000, domain.ClaimTypePropertyDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteStandardProcessing, d.Route)
	assert.Equal(t, "Estimated damage ($100,000.00) meets or exceeds $25,000 threshold", d.Reasoning)
}

func TestDecide_ThresholdBoundary(t *testing.T) {
	e := testEngine()

	fields := completeFields("Garage wall collapsed.", 25000, domain.ClaimTypePropertyDamage)
	d := e.Decide(fields, nil)
	assert.Equal(t, domain.RouteStandardProcessing, d.Route)

	fields = completeFields("Garage wall collapsed.", 24999.99, domain.ClaimTypePropertyDamage)
	d = e.Decide(fields, nil)
	assert.Equal(t, domain.RouteFastTrack, d.Route)
}

func TestDecide_NoDamageAmount(t *testing.T) {
	e := testEngine()

	fields := completeFields("Bumper scraped in the lot.", 0, domain.ClaimTypeVehicleDamage)
	// Set drops zero amounts, so the damage keys are genuinely absent here.
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteManualReview, d.Route)
	assert.Contains(t, d.Reasoning, "Damage amount not specified or could not be extracted")
}

func TestDecide_AdditionalFactors(t *testing.T) {
	e := testEngine()

	fields := completeFields(
		"Three car pileup, one car fled in a hit and run. The truck belongs to a business fleet. Claimant filed a prior claim last yr.",
		9000, domain.ClaimTypeVehicleDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteFastTrack, d.Route)
	assert.Contains(t, d.Reasoning, "Multiple vehicles involved")
	assert.Contains(t, d.Reasoning, "Hit-and-run incident")
	assert.Contains(t, d.Reasoning, "Commercial vehicle involved")
	assert.Contains(t, d.Reasoning, "Reference to previous claims")
}

func TestDecide_AdditionalFactorsSkippedOnEarlyGates(t *testing.T) {
	e := testEngine()

	fields := completeFields("Staged hit and run with a second car.", 9000, domain.ClaimTypeVehicleDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteInvestigationFlag, d.Route)
	assert.NotContains(t, d.Reasoning, "Hit-and-run incident")
}

func TestDecide_AlwaysProducesRouteAndReasoning(t *testing.T) {
	e := testEngine()

	inputs := []struct {
		fields  domain.FieldMap
		missing []string
	}{
		{domain.FieldMap{}, []string{"policy_number"}},
		{domain.FieldMap{}, nil},
		{completeFields("", 500, domain.ClaimTypePropertyDamage), nil},
	}
	for _, in := range inputs {
		d := e.Decide(in.fields, in.missing)
		assert.Contains(t, domain.Routes, d.Route)
		assert.NotEmpty(t, d.Reasoning)
	}
}

func TestDecide_KeywordListCapped(t *testing.T) {
	e := testEngine()

	fields := completeFields("fraudulent fake staged suspicious scam", 1000, domain.ClaimTypeVehicleDamage)
	d := e.Decide(fields, nil)

	assert.Equal(t, domain.RouteInvestigationFlag, d.Route)
	// Only the first three matches are listed.
	assert.Equal(t, "Fraud indicators detected: fraud, fraudulent, staged", d.Reasoning)
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$8,200.00", formatMoney(8200, 2))
	assert.Equal(t, "$25,000", formatMoney(25000, 0))
	assert.Equal(t, "$1,234,567.89", formatMoney(1234567.89, 2))
	assert.Equal(t, "$999.50", formatMoney(999.5, 2))
}
