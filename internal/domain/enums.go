package domain

// Route is the terminal classification assigned to a claim.
type Route string

const (
	RouteFastTrack          Route = "Fast-track"
	RouteStandardProcessing Route = "Standard Processing"
	RouteSpecialistQueue    Route = "Specialist Queue"
	RouteInvestigationFlag  Route = "Investigation Flag"
	RouteManualReview       Route = "Manual Review"
)

// Routes lists every defined route in display order.
var Routes = []Route{
	RouteFastTrack,
	RouteStandardProcessing,
	RouteSpecialistQueue,
	RouteInvestigationFlag,
	RouteManualReview,
}

// ClaimType categorizes the nature of the reported loss.
type ClaimType string

const (
	ClaimTypeInjury         ClaimType = "injury"
	ClaimTypeTheft          ClaimType = "theft"
	ClaimTypeFire           ClaimType = "fire"
	ClaimTypeWaterDamage    ClaimType = "water_damage"
	ClaimTypeVandalism      ClaimType = "vandalism"
	ClaimTypeVehicleDamage  ClaimType = "vehicle_damage"
	ClaimTypePropertyDamage ClaimType = "property_damage"
)

// DocumentFormat identifies how the raw report text was produced.
type DocumentFormat string

const (
	FormatPlain DocumentFormat = "plain"
	FormatForm  DocumentFormat = "form"
)

// ProcessStatus represents the outcome of a single processing run.
type ProcessStatus string

const (
	ProcessStatusSuccess ProcessStatus = "success"
	ProcessStatusError   ProcessStatus = "error"
)
