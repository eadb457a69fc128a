package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/logger"
	"github.com/boonewh/pathsix-crm/internal/metrics"
	"github.com/boonewh/pathsix-crm/internal/repository"
	"github.com/boonewh/pathsix-crm/internal/schema"
	"github.com/boonewh/pathsix-crm/internal/tabular"
	"github.com/boonewh/pathsix-crm/internal/validator"
)

// PreviewRowLimit caps how many data rows the preview operation echoes.
const PreviewRowLimit = 10

// PreconditionKind classifies batch-fatal mapping errors detected before
// any row is touched.
type PreconditionKind string

const (
	PreconditionInvalidFieldMapping  PreconditionKind = "invalid_field_mapping"
	PreconditionMissingRequiredField PreconditionKind = "missing_required_mapping"
)

// PreconditionError aborts the whole batch with no report.
type PreconditionError struct {
	Kind   PreconditionKind
	Fields []string
}

func (e *PreconditionError) Error() string {
	switch e.Kind {
	case PreconditionInvalidFieldMapping:
		return fmt.Sprintf("Invalid field mappings: %s", strings.Join(e.Fields, ", "))
	default:
		return fmt.Sprintf("Missing required field mappings: %s", strings.Join(e.Fields, ", "))
	}
}

// ImportService drives the import pipeline: decode once, validate the
// mapping itself, then normalize, validate, and stage every row
// independently. Rows are processed strictly sequentially and in file
// order so row numbering and warning order are reproducible.
type ImportService struct {
	leadRepo  repository.LeadRepository
	runRepo   repository.ImportRunRepository
	validator *validator.Validator
}

// NewImportService creates a new ImportService.
func NewImportService(leadRepo repository.LeadRepository, runRepo repository.ImportRunRepository, v *validator.Validator) *ImportService {
	return &ImportService{
		leadRepo:  leadRepo,
		runRepo:   runRepo,
		validator: v,
	}
}

// Preview decodes the uploaded file and returns headers, the first
// PreviewRowLimit data rows as display strings (absent cells as ""), and
// the total row count. A decode failure yields no partial data.
func (s *ImportService) Preview(data []byte, filename string) (*PreviewResult, error) {
	table, err := tabular.Decode(data, filename)
	if err != nil {
		return nil, err
	}

	limit := len(table.Rows)
	if limit > PreviewRowLimit {
		limit = PreviewRowLimit
	}

	rows := make([][]string, limit)
	for i := 0; i < limit; i++ {
		cells := make([]string, len(table.Rows[i]))
		for j, c := range table.Rows[i] {
			cells[j] = c.Display()
		}
		rows[i] = cells
	}

	return &PreviewResult{
		Headers:   table.Headers,
		Rows:      rows,
		TotalRows: len(table.Rows),
	}, nil
}

// FieldDefinitions returns the schema registry for mapping UIs. Pure and
// side-effect-free: two calls with no state change yield identical output.
func (s *ImportService) FieldDefinitions() []FieldDefinitionView {
	defs := schema.Fields()
	views := make([]FieldDefinitionView, len(defs))
	for i, def := range defs {
		views[i] = FieldDefinitionView{
			Field:       def.Name,
			Required:    def.Required,
			Type:        string(def.Kind),
			Description: def.Description,
			MaxLength:   def.MaxLength,
			Choices:     def.Choices,
		}
	}
	return views
}

// Run executes one import batch. Precondition failures (unknown target
// fields, uncovered required fields, decode errors) abort the whole batch
// with no report. Past that point failures are per-row data, never
// control flow: each row is normalized, validated, and staged in
// isolation, and all staged successes commit together at the end.
func (s *ImportService) Run(ctx context.Context, data []byte, filename string, mappings []domain.ColumnMapping, target ImportTarget) (*domain.ImportReport, error) {
	start := time.Now()
	log := logger.WithTenantID(target.TenantID).With(
		slog.String("filename", filename),
	)

	if err := validateMappings(mappings); err != nil {
		return nil, err
	}

	table, err := tabular.Decode(data, filename)
	if err != nil {
		return nil, err
	}
	log.Info("import batch decoded",
		slog.Int("rows", len(table.Rows)),
		slog.Int("columns", len(table.Headers)))

	tx, err := s.leadRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("start import batch: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			if abortErr := tx.Abort(ctx); abortErr != nil {
				log.Error("abort import batch", slog.String("error", abortErr.Error()))
			}
		}
	}()

	var (
		successes    int
		failures     []domain.RowFailure
		warnings     []string
		seenWarnings = make(map[string]struct{})
	)

	addWarnings := func(ws []string) {
		for _, w := range ws {
			if _, seen := seenWarnings[w]; seen {
				continue
			}
			seenWarnings[w] = struct{}{}
			warnings = append(warnings, w)
		}
	}

	for i := range table.Rows {
		// 1-indexed against the original file, counting the header row.
		rowNum := i + 2
		row := table.RowMap(i)

		record, rowWarnings, err := schema.Normalize(row, mappings)
		if err != nil {
			failures = append(failures, rowFailure(rowNum, row, err.Error()))
			continue
		}
		addWarnings(rowWarnings)

		if errs := s.validator.ValidateRecord(record); len(errs) > 0 {
			failures = append(failures, rowFailure(rowNum, row, strings.Join(errs, "; ")))
			continue
		}

		lead := leadFromRecord(record, target)
		if _, err := tx.StageCreate(ctx, lead); err != nil {
			if discardErr := tx.DiscardLastStaged(ctx); discardErr != nil {
				return nil, fmt.Errorf("import batch aborted: %w", discardErr)
			}
			failures = append(failures, rowFailure(rowNum, row, err.Error()))
			continue
		}
		successes++
	}

	if successes > 0 {
		if err := tx.CommitAll(ctx); err != nil {
			return nil, fmt.Errorf("commit import batch: %w", err)
		}
		committed = true
	}

	metrics.ObserveImportRun(string(runStatus(successes, len(failures))), time.Since(start).Seconds())
	metrics.ImportRowsProcessed.WithLabelValues("success").Add(float64(successes))
	metrics.ImportRowsProcessed.WithLabelValues("failed").Add(float64(len(failures)))

	s.recordRun(ctx, filename, target, successes, len(failures), len(warnings))

	log.Info("import batch completed",
		slog.Int("successful", successes),
		slog.Int("failed", len(failures)),
		slog.Int("warnings", len(warnings)),
		slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	return &domain.ImportReport{
		Message:           fmt.Sprintf("Import completed: %d successful, %d failed", successes, len(failures)),
		SuccessfulImports: successes,
		FailedImports:     len(failures),
		Warnings:          warnings,
		Failures:          failures,
	}, nil
}

// RecentRuns returns the latest import run history for a tenant.
func (s *ImportService) RecentRuns(ctx context.Context, tenantID string, limit int) ([]domain.ImportRun, error) {
	return s.runRepo.ListRecent(ctx, tenantID, limit)
}

// validateMappings checks the mapping itself before any row is processed:
// every non-empty target must be a registry field, and every required
// field must be covered.
func validateMappings(mappings []domain.ColumnMapping) error {
	mapped := make(map[string]struct{})
	var invalid []string
	for _, m := range mappings {
		if m.LeadField == "" {
			continue
		}
		if !schema.IsField(m.LeadField) {
			invalid = append(invalid, m.LeadField)
			continue
		}
		mapped[m.LeadField] = struct{}{}
	}
	if len(invalid) > 0 {
		return &PreconditionError{Kind: PreconditionInvalidFieldMapping, Fields: invalid}
	}

	var missing []string
	for _, name := range schema.RequiredFields() {
		if _, ok := mapped[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &PreconditionError{Kind: PreconditionMissingRequiredField, Fields: missing}
	}
	return nil
}

// rowFailure captures the original row for resubmission: every cell the
// source actually provided, keyed by source column.
func rowFailure(rowNum int, row map[string]tabular.Cell, message string) domain.RowFailure {
	data := make(map[string]string)
	for col, cell := range row {
		if cell.Set {
			data[col] = cell.Value
		}
	}
	return domain.RowFailure{Row: rowNum, Data: data, Error: message}
}

// leadFromRecord maps a validated candidate record onto a Lead attributed
// to the import target.
func leadFromRecord(record domain.CandidateRecord, target ImportTarget) *domain.Lead {
	lead := &domain.Lead{
		TenantID:   target.TenantID,
		Name:       record["name"],
		Type:       record["type"],
		LeadStatus: record["lead_status"],
		CreatedBy:  target.CreatedBy,
	}
	if target.AssignedTo != "" {
		assigned := target.AssignedTo
		lead.AssignedTo = &assigned
	}

	optional := map[string]**string{
		"contact_person":        &lead.ContactPerson,
		"contact_title":         &lead.ContactTitle,
		"email":                 &lead.Email,
		"phone":                 &lead.Phone,
		"phone_label":           &lead.PhoneLabel,
		"secondary_phone":       &lead.SecondaryPhone,
		"secondary_phone_label": &lead.SecondaryPhoneLabel,
		"address":               &lead.Address,
		"city":                  &lead.City,
		"state":                 &lead.State,
		"zip":                   &lead.Zip,
		"notes":                 &lead.Notes,
	}
	for field, dst := range optional {
		if value, ok := record[field]; ok {
			v := value
			*dst = &v
		}
	}
	return lead
}

// recordRun writes the run history entry. History is best effort: a
// failure here must not fail a batch that already committed.
func (s *ImportService) recordRun(ctx context.Context, filename string, target ImportTarget, successes, failed, warned int) {
	run := &domain.ImportRun{
		TenantID:     target.TenantID,
		UserID:       target.CreatedBy,
		Filename:     filename,
		Status:       runStatus(successes, failed),
		SuccessCount: successes,
		FailureCount: failed,
		WarningCount: warned,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		logger.Error("record import run",
			slog.String("tenant_id", target.TenantID),
			slog.String("error", err.Error()))
	}
}

func runStatus(successes, failed int) domain.ImportRunStatus {
	switch {
	case failed > 0 && successes == 0:
		return domain.ImportRunFailed
	case failed > 0:
		return domain.ImportRunCompletedWithErrors
	default:
		return domain.ImportRunCompleted
	}
}
