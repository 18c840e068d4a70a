package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fahad-1515/fnol-agent/internal/config"
	"github.com/Fahad-1515/fnol-agent/internal/domain"
	"github.com/Fahad-1515/fnol-agent/internal/extract"
	"github.com/Fahad-1515/fnol-agent/internal/loader"
	"github.com/Fahad-1515/fnol-agent/internal/port"
	"github.com/Fahad-1515/fnol-agent/internal/routing"
)

// ClaimService defines the claim processing and retrieval contract.
type ClaimService interface {
	ProcessText(ctx context.Context, documentName, text string) *domain.ProcessResult
	ProcessAndStore(ctx context.Context, documentName, text string) (*domain.Claim, *domain.ProcessResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	List(ctx context.Context, route domain.Route, offset, limit int) ([]domain.Claim, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type claimService struct {
	extractor     *extract.Extractor
	formExtractor *extract.Extractor
	router        *routing.Engine
	claimRepo     port.ClaimRepository
	storage       port.ObjectStorage
	s3cfg         config.S3Config
}

// NewClaimService creates a new ClaimService implementation. storage may be
// nil when raw-text archiving is not configured.
func NewClaimService(
	cfg *config.Config,
	claimRepo port.ClaimRepository,
	storage port.ObjectStorage,
) ClaimService {
	return &claimService{
		extractor:     extract.NewExtractor(cfg.Extract.RequiredFields),
		formExtractor: extract.NewFormExtractor(cfg.Extract.RequiredFields),
		router:        routing.NewEngine(cfg.Routing),
		claimRepo:     claimRepo,
		storage:       storage,
		s3cfg:         cfg.S3,
	}
}

// ProcessText runs the full pipeline over decoded report text. It never
// fails: garbage or empty input produces a Manual Review result with every
// required field reported missing.
func (s *claimService) ProcessText(ctx context.Context, documentName, text string) *domain.ProcessResult {
	start := time.Now()

	ex := s.extractor
	if loader.IsACORDForm(text) {
		ex = s.formExtractor
	}

	fields := ex.Extract(text)
	missing := ex.Missing(fields)
	validation := routing.Validate(fields)
	decision := s.router.Decide(fields, missing)

	result := &domain.ProcessResult{
		Document:         documentName,
		Timestamp:        start.UTC(),
		Status:           domain.ProcessStatusSuccess,
		ExtractedFields:  fields,
		MissingFields:    missing,
		Validation:       validation,
		RecommendedRoute: decision.Route,
		Reasoning:        decision.Reasoning,
		ProcessingTime:   time.Since(start).Seconds(),
	}
	return result
}

// ProcessAndStore processes text and persists the resulting claim record,
// optionally archiving the raw text to object storage first.
func (s *claimService) ProcessAndStore(ctx context.Context, documentName, text string) (*domain.Claim, *domain.ProcessResult, error) {
	result := s.ProcessText(ctx, documentName, text)

	format := domain.FormatPlain
	if loader.IsACORDForm(text) {
		format = domain.FormatForm
	}

	fieldsJSON, err := json.Marshal(result.ExtractedFields)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal extracted fields: %w", err)
	}
	missingJSON, err := json.Marshal(result.MissingFields)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal missing fields: %w", err)
	}
	validationJSON, err := json.Marshal(result.Validation)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal validation: %w", err)
	}

	claim := &domain.Claim{
		ID:              uuid.New(),
		DocumentName:    documentName,
		Format:          format,
		ExtractedFields: fieldsJSON,
		MissingFields:   missingJSON,
		Validation:      validationJSON,
		Route:           result.RecommendedRoute,
		Reasoning:       result.Reasoning,
		ProcessedAt:     result.Timestamp,
	}

	if s.storage != nil && s.s3cfg.Enabled() {
		key := fmt.Sprintf("claims/raw/%s.txt", claim.ID)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.s3cfg.Bucket,
			Key:         key,
			Body:        strings.NewReader(text),
			ContentType: "text/plain; charset=utf-8",
		})
		if err != nil {
			// The claim record is still worth keeping without its archive.
			log.Printf("WARN: raw text archive failed for %s: %v", documentName, err)
		} else {
			claim.RawTextKey = key
		}
	}

	if err := s.claimRepo.Create(ctx, claim); err != nil {
		return nil, nil, fmt.Errorf("store claim: %w", err)
	}
	return claim, result, nil
}

func (s *claimService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	return s.claimRepo.GetByID(ctx, id)
}

func (s *claimService) List(ctx context.Context, route domain.Route, offset, limit int) ([]domain.Claim, int, error) {
	return s.claimRepo.List(ctx, route, offset, limit)
}

func (s *claimService) Delete(ctx context.Context, id uuid.UUID) error {
	claim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.claimRepo.Delete(ctx, id); err != nil {
		return err
	}
	if s.storage != nil && s.s3cfg.Enabled() && claim.RawTextKey != "" {
		if err := s.storage.Delete(ctx, s.s3cfg.Bucket, claim.RawTextKey); err != nil {
			log.Printf("WARN: raw text delete failed for %s: %v", claim.RawTextKey, err)
		}
	}
	return nil
}
