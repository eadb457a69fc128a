package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/mocks"
	"github.com/boonewh/pathsix-crm/internal/service"
	"github.com/boonewh/pathsix-crm/internal/tabular"
	"github.com/boonewh/pathsix-crm/internal/validator"
)

var testTarget = service.ImportTarget{
	TenantID:   "tenant-1",
	CreatedBy:  "user-1",
	AssignedTo: "user-2",
}

func nameMapping() []domain.ColumnMapping {
	return []domain.ColumnMapping{{CSVColumn: "company_name", LeadField: "name"}}
}

func newService(t *testing.T, leadRepo *mocks.MockLeadRepository, runRepo *mocks.MockImportRunRepository) *service.ImportService {
	t.Helper()
	return service.NewImportService(leadRepo, runRepo, validator.NewValidator())
}

func TestImportService_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("imports all rows and commits once", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-id", nil).
			Times(2)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		csv := []byte("company_name\nAcme Corp\nGlobex")
		report, err := svc.Run(ctx, csv, "leads.csv", nameMapping(), testTarget)

		require.NoError(t, err)
		assert.Equal(t, 2, report.SuccessfulImports)
		assert.Equal(t, 0, report.FailedImports)
		assert.Empty(t, report.Failures)
		assert.Equal(t, "Import completed: 2 successful, 0 failed", report.Message)
	})

	t.Run("isolates a failing row and numbers it against the file", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-id", nil).
			Times(2)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		// Row 2 of the data (file row 3) has a blank name.
		csv := []byte("company_name,city\nAcme Corp,Houston\n,Dallas\nGlobex,Austin")
		report, err := svc.Run(ctx, csv, "leads.csv", nameMapping(), testTarget)

		require.NoError(t, err)
		assert.Equal(t, 2, report.SuccessfulImports)
		assert.Equal(t, 1, report.FailedImports)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, 3, report.Failures[0].Row)
		assert.Equal(t, "Company name is required", report.Failures[0].Error)
		assert.Equal(t, "Dallas", report.Failures[0].Data["city"])
	})

	t.Run("discards a failed stage without losing earlier rows", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-1", nil).
			Once()
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("", assert.AnError).
			Once()
		tx.EXPECT().DiscardLastStaged(mock.Anything).Return(nil)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		csv := []byte("company_name\nAcme Corp\nGlobex")
		report, err := svc.Run(ctx, csv, "leads.csv", nameMapping(), testTarget)

		require.NoError(t, err)
		assert.Equal(t, 1, report.SuccessfulImports)
		assert.Equal(t, 1, report.FailedImports)
	})

	t.Run("does not commit when every row fails", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().Abort(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		csv := []byte("company_name,city\n,Houston")
		report, err := svc.Run(ctx, csv, "leads.csv", nameMapping(), testTarget)

		require.NoError(t, err)
		assert.Equal(t, 0, report.SuccessfulImports)
		assert.Equal(t, 1, report.FailedImports)
	})

	t.Run("records run history with batch status", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-id", nil)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)

		var recorded *domain.ImportRun
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Run(func(_ context.Context, run *domain.ImportRun) {
				recorded = run
			}).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		csv := []byte("company_name\nAcme Corp\n")
		_, err := svc.Run(ctx, csv, "leads.csv", nameMapping(), testTarget)

		require.NoError(t, err)
		require.NotNil(t, recorded)
		assert.Equal(t, "tenant-1", recorded.TenantID)
		assert.Equal(t, "leads.csv", recorded.Filename)
		assert.Equal(t, domain.ImportRunCompleted, recorded.Status)
		assert.Equal(t, 1, recorded.SuccessCount)
	})

	t.Run("collects warnings without duplicates", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-id", nil).
			Times(2)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		mappings := []domain.ColumnMapping{
			{CSVColumn: "company_name", LeadField: "name"},
			{CSVColumn: "business_type", LeadField: "type"},
		}
		csv := []byte("company_name,business_type\nAcme Corp,Retail\nGlobex,Retail")
		report, err := svc.Run(ctx, csv, "leads.csv", mappings, testTarget)

		require.NoError(t, err)
		assert.Equal(t, []string{"Unknown business type 'Retail', using 'None'"}, report.Warnings)
	})

	t.Run("rejects unknown mapped fields before touching rows", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)

		svc := newService(t, leadRepo, runRepo)

		mappings := []domain.ColumnMapping{
			{CSVColumn: "company_name", LeadField: "name"},
			{CSVColumn: "revenue", LeadField: "annual_revenue"},
		}
		csv := []byte("company_name,revenue\nAcme Corp,100")
		_, err := svc.Run(ctx, csv, "leads.csv", mappings, testTarget)

		var precondErr *service.PreconditionError
		require.ErrorAs(t, err, &precondErr)
		assert.Equal(t, service.PreconditionInvalidFieldMapping, precondErr.Kind)
		assert.Equal(t, "Invalid field mappings: annual_revenue", err.Error())
	})

	t.Run("rejects mappings that do not cover name", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)

		svc := newService(t, leadRepo, runRepo)

		mappings := []domain.ColumnMapping{{CSVColumn: "city", LeadField: "city"}}
		csv := []byte("city\nHouston")
		_, err := svc.Run(ctx, csv, "leads.csv", mappings, testTarget)

		var precondErr *service.PreconditionError
		require.ErrorAs(t, err, &precondErr)
		assert.Equal(t, service.PreconditionMissingRequiredField, precondErr.Kind)
		assert.Equal(t, "Missing required field mappings: name", err.Error())
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)

		svc := newService(t, leadRepo, runRepo)

		_, err := svc.Run(ctx, []byte("company_name\n"), "leads.csv", nameMapping(), testTarget)

		var decodeErr *tabular.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, tabular.ErrEmptyFile, decodeErr.Kind)
	})

	t.Run("fails the batch when commit fails", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Return("lead-id", nil)
		tx.EXPECT().CommitAll(mock.Anything).Return(assert.AnError)
		tx.EXPECT().Abort(mock.Anything).Return(nil)

		svc := newService(t, leadRepo, runRepo)

		_, err := svc.Run(ctx, []byte("company_name\nAcme Corp"), "leads.csv", nameMapping(), testTarget)
		require.Error(t, err)
	})

	t.Run("attributes staged leads to the import target", func(t *testing.T) {
		leadRepo := mocks.NewMockLeadRepository(t)
		runRepo := mocks.NewMockImportRunRepository(t)
		tx := mocks.NewMockLeadTx(t)

		var staged *domain.Lead
		leadRepo.EXPECT().Begin(mock.Anything).Return(tx, nil)
		tx.EXPECT().
			StageCreate(mock.Anything, mock.AnythingOfType("*domain.Lead")).
			Run(func(_ context.Context, lead *domain.Lead) {
				staged = lead
			}).
			Return("lead-id", nil)
		tx.EXPECT().CommitAll(mock.Anything).Return(nil)
		runRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.ImportRun")).
			Return(nil)

		svc := newService(t, leadRepo, runRepo)

		mappings := []domain.ColumnMapping{
			{CSVColumn: "company_name", LeadField: "name"},
			{CSVColumn: "contact", LeadField: "contact_person"},
		}
		csv := []byte("company_name,contact\nAcme Corp,John Smith")
		_, err := svc.Run(ctx, csv, "leads.csv", mappings, testTarget)

		require.NoError(t, err)
		require.NotNil(t, staged)
		assert.Equal(t, "tenant-1", staged.TenantID)
		assert.Equal(t, "user-1", staged.CreatedBy)
		require.NotNil(t, staged.AssignedTo)
		assert.Equal(t, "user-2", *staged.AssignedTo)
		assert.Equal(t, "Acme Corp", staged.Name)
		require.NotNil(t, staged.ContactPerson)
		assert.Equal(t, "John Smith", *staged.ContactPerson)
		assert.Equal(t, domain.DefaultBusinessType, staged.Type)
		assert.Equal(t, domain.DefaultLeadStatus, staged.LeadStatus)
	})
}

func TestImportService_Preview(t *testing.T) {
	svc := newService(t, mocks.NewMockLeadRepository(t), mocks.NewMockImportRunRepository(t))

	t.Run("returns headers and leading rows", func(t *testing.T) {
		csv := []byte("company_name,city\nAcme Corp,Houston\nGlobex,Dallas")
		preview, err := svc.Preview(csv, "leads.csv")

		require.NoError(t, err)
		assert.Equal(t, []string{"company_name", "city"}, preview.Headers)
		assert.Equal(t, [][]string{{"Acme Corp", "Houston"}, {"Globex", "Dallas"}}, preview.Rows)
		assert.Equal(t, 2, preview.TotalRows)
	})

	t.Run("caps rows at the preview limit but reports the full count", func(t *testing.T) {
		var csv []byte
		csv = append(csv, "company_name\n"...)
		for i := 0; i < 25; i++ {
			csv = append(csv, "Acme Corp\n"...)
		}

		preview, err := svc.Preview(csv, "leads.csv")

		require.NoError(t, err)
		assert.Len(t, preview.Rows, service.PreviewRowLimit)
		assert.Equal(t, 25, preview.TotalRows)
	})

	t.Run("renders absent cells as empty strings", func(t *testing.T) {
		csv := []byte("company_name,city,state\nAcme Corp,Houston")
		preview, err := svc.Preview(csv, "leads.csv")

		require.NoError(t, err)
		require.Len(t, preview.Rows, 1)
		assert.Equal(t, []string{"Acme Corp", "Houston", ""}, preview.Rows[0])
	})

	t.Run("propagates decode failures", func(t *testing.T) {
		_, err := svc.Preview([]byte("company_name"), "leads.txt")

		var decodeErr *tabular.DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, tabular.ErrUnsupportedFormat, decodeErr.Kind)
	})
}

func TestImportService_FieldDefinitions(t *testing.T) {
	svc := newService(t, mocks.NewMockLeadRepository(t), mocks.NewMockImportRunRepository(t))

	defs := svc.FieldDefinitions()
	require.NotEmpty(t, defs)

	assert.Equal(t, "name", defs[0].Field)
	assert.True(t, defs[0].Required)
	assert.Equal(t, "string", defs[0].Type)
	assert.Equal(t, 100, defs[0].MaxLength)

	byField := make(map[string]service.FieldDefinitionView)
	for _, def := range defs {
		byField[def.Field] = def
	}
	assert.Equal(t, domain.PhoneLabels, byField["phone_label"].Choices)
	assert.Equal(t, domain.BusinessTypeOptions, byField["type"].Choices)
	assert.Zero(t, byField["notes"].MaxLength)

	// Two calls with no state change yield identical output.
	assert.Equal(t, defs, svc.FieldDefinitions())
}

func TestImportService_RecentRuns(t *testing.T) {
	leadRepo := mocks.NewMockLeadRepository(t)
	runRepo := mocks.NewMockImportRunRepository(t)

	expected := []domain.ImportRun{{ID: "run-1", TenantID: "tenant-1"}}
	runRepo.EXPECT().
		ListRecent(mock.Anything, "tenant-1", 20).
		Return(expected, nil)

	svc := newService(t, leadRepo, runRepo)

	runs, err := svc.RecentRuns(context.Background(), "tenant-1", 20)
	require.NoError(t, err)
	assert.Equal(t, expected, runs)
}
