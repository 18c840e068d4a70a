package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TableBlock is a table extracted alongside the document text, as produced
// by the external loader. Rows are kept as raw cell strings.
type TableBlock struct {
	Page int        `json:"page"`
	Rows [][]string `json:"rows"`
}

// RawDocument is the decoded input handed to the core. It is immutable once
// produced by the loader.
type RawDocument struct {
	Text   string         `json:"text"`
	Tables []TableBlock   `json:"tables,omitempty"`
	Format DocumentFormat `json:"format"`
}

// ValidationReport collects advisory data-quality findings. It never gates
// routing.
type ValidationReport struct {
	Warnings        []string `json:"warnings"`
	Errors          []string `json:"errors"`
	Inconsistencies []string `json:"inconsistencies"`
}

// RoutingDecision is the terminal outcome for one claim: the route plus the
// accumulated human-readable justification.
type RoutingDecision struct {
	Route     Route  `json:"route"`
	Reasoning string `json:"reasoning"`
}

// ProcessResult is the full outcome of processing one FNOL document.
type ProcessResult struct {
	Document         string           `json:"document"`
	Timestamp        time.Time        `json:"timestamp"`
	Status           ProcessStatus    `json:"status"`
	Error            string           `json:"error,omitempty"`
	ExtractedFields  FieldMap         `json:"extractedFields"`
	MissingFields    []string         `json:"missingFields"`
	Validation       ValidationReport `json:"validation"`
	RecommendedRoute Route            `json:"recommendedRoute"`
	Reasoning        string           `json:"reasoning"`
	ProcessingTime   float64          `json:"processingTime"`
}

// Claim is a persisted claim record produced from one processed document.
type Claim struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	DocumentName    string          `db:"document_name" json:"document_name"`
	Format          DocumentFormat  `db:"format" json:"format"`
	ExtractedFields json.RawMessage `db:"extracted_fields" json:"extracted_fields"`
	MissingFields   json.RawMessage `db:"missing_fields" json:"missing_fields"`
	Validation      json.RawMessage `db:"validation" json:"validation"`
	Route           Route           `db:"route" json:"route"`
	Reasoning       string          `db:"reasoning" json:"reasoning"`
	RawTextKey      string          `db:"raw_text_key" json:"raw_text_key,omitempty"`
	ProcessedAt     time.Time       `db:"processed_at" json:"processed_at"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// Stats holds aggregate counts over stored claims.
type Stats struct {
	TotalClaims        int `db:"total_claims" json:"total_claims"`
	FastTrack          int `db:"fast_track" json:"fast_track"`
	StandardProcessing int `db:"standard_processing" json:"standard_processing"`
	SpecialistQueue    int `db:"specialist_queue" json:"specialist_queue"`
	InvestigationFlag  int `db:"investigation_flag" json:"investigation_flag"`
	ManualReview       int `db:"manual_review" json:"manual_review"`
}
