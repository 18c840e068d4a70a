// Package routing converts extracted claim fields into a terminal route with
// a human-readable justification, and validates field quality alongside.
package routing

import (
	"fmt"
	"strings"

	"github.com/Fahad-1515/fnol-agent/internal/config"
	"github.com/Fahad-1515/fnol-agent/internal/domain"
)

// maxKeywordsShown caps how many matched keywords a reasoning fragment lists.
const maxKeywordsShown = 3

// Engine evaluates the routing rules in priority order. Rules short-circuit:
// the first gate that fires determines the route, and only the
// damage-threshold gate collects additional-factor fragments afterwards.
type Engine struct {
	threshold      float64
	fraudKeywords  []string
	injuryKeywords []string
}

// NewEngine builds an engine from the routing configuration. Keyword lists
// are matched as lowercase substrings of the claim description.
func NewEngine(cfg config.RoutingConfig) *Engine {
	return &Engine{
		threshold:      cfg.FastTrackThreshold,
		fraudKeywords:  lowerAll(cfg.FraudKeywords),
		injuryKeywords: lowerAll(cfg.InjuryKeywords),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Decide applies the rules to one claim. It never fails: any input,
// including an empty field map, resolves to one of the five routes with a
// non-empty reasoning string.
func (e *Engine) Decide(fields domain.FieldMap, missing []string) domain.RoutingDecision {
	var parts []string

	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
		return decision(domain.RouteManualReview, parts)
	}

	description := strings.ToLower(fields.String(domain.FieldDescription))
	damage := fields.Amount(domain.FieldEstimatedDamage)
	claimType := fields.String(domain.FieldClaimType)
	if claimType == "" {
		claimType = string(domain.ClaimTypePropertyDamage)
	}

	if found := matchKeywords(description, e.fraudKeywords); len(found) > 0 {
		parts = append(parts, "Fraud indicators detected: "+joinFirst(found, maxKeywordsShown))
		return decision(domain.RouteInvestigationFlag, parts)
	}

	if claimType == string(domain.ClaimTypeInjury) {
		if found := matchKeywords(description, e.injuryKeywords); len(found) > 0 {
			parts = append(parts, "Injury claim with indicators: "+joinFirst(found, maxKeywordsShown))
		} else {
			parts = append(parts, "Injury claim type identified")
		}
		return decision(domain.RouteSpecialistQueue, parts)
	}

	var route domain.Route
	if damage > 0 {
		if damage < e.threshold {
			route = domain.RouteFastTrack
			parts = append(parts, fmt.Sprintf("Estimated damage (%s) is below %s threshold",
				formatMoney(damage, 2), formatMoney(e.threshold, 0)))
		} else {
			route = domain.RouteStandardProcessing
			parts = append(parts, fmt.Sprintf("Estimated damage (%s) meets or exceeds %s threshold",
				formatMoney(damage, 2), formatMoney(e.threshold, 0)))
		}
	} else {
		route = domain.RouteManualReview
		parts = append(parts, "Damage amount not specified or could not be extracted")
	}

	parts = append(parts, additionalFactors(description)...)
	return decision(route, parts)
}

func decision(route domain.Route, parts []string) domain.RoutingDecision {
	return domain.RoutingDecision{Route: route, Reasoning: strings.Join(parts, ". ")}
}

func matchKeywords(description string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func joinFirst(words []string, n int) string {
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, ", ")
}

// additionalFactors appends context fragments that do not change the route.
// They only run after the damage-threshold gate; the earlier gates
// short-circuit before reaching them.
func additionalFactors(description string) []string {
	var reasons []string

	if strings.Count(description, "vehicle") > 1 || strings.Count(description, "car") > 1 {
		reasons = append(reasons, "Multiple vehicles involved")
	}
	if strings.Contains(description, "hit and run") || strings.Contains(description, "hit & run") {
		reasons = append(reasons, "Hit-and-run incident")
	}
	if containsAny(description, "commercial", "truck", "semi", "fleet", "business") {
		reasons = append(reasons, "Commercial vehicle involved")
	}
	if containsAny(description, "previous", "prior", "last claim", "before") {
		reasons = append(reasons, "Reference to previous claims")
	}

	return reasons
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// formatMoney renders an amount as "$1,234.56" style text with comma digit
// grouping and the given number of decimals.
func formatMoney(v float64, decimals int) string {
	s := fmt.Sprintf("%.*f", decimals, v)
	intPart := s
	var fracPart string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	var b strings.Builder
	b.WriteByte('$')
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
