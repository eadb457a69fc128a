package service

import (
	"context"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

// ImportTarget identifies who an import batch belongs to. The caller has
// already resolved and authorized the assignee.
type ImportTarget struct {
	TenantID   string
	CreatedBy  string
	AssignedTo string
}

// PreviewResult is the decoded shape of an uploaded file: headers, the
// first rows rendered as display strings, and the total data row count.
type PreviewResult struct {
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	TotalRows int        `json:"totalRows"`
}

// FieldDefinitionView is the registry entry shape served to mapping UIs.
type FieldDefinitionView struct {
	Field       string   `json:"field"`
	Required    bool     `json:"required"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	MaxLength   int      `json:"max_length,omitempty"`
	Choices     []string `json:"choices,omitempty"`
}

// ImportServiceInterface defines the import engine's operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// Preview decodes a file and returns its headers and leading rows.
	Preview(data []byte, filename string) (*PreviewResult, error)
	// Run executes a full import batch and returns its report.
	Run(ctx context.Context, data []byte, filename string, mappings []domain.ColumnMapping, target ImportTarget) (*domain.ImportReport, error)
	// FieldDefinitions returns the importable field registry.
	FieldDefinitions() []FieldDefinitionView
	// Template returns an example CSV and its download filename.
	Template() ([]byte, string)
	// RecentRuns returns the latest import history for a tenant.
	RecentRuns(ctx context.Context, tenantID string, limit int) ([]domain.ImportRun, error)
}
