package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/boonewh/pathsix-crm/internal/domain"
	"github.com/boonewh/pathsix-crm/internal/middleware"
	"github.com/boonewh/pathsix-crm/internal/mocks"
	"github.com/boonewh/pathsix-crm/internal/service"
	"github.com/boonewh/pathsix-crm/internal/tabular"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func importRouter(handler *ImportHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Identity())
	api := router.Group("/api/import/leads")
	api.POST("/preview", handler.Preview)
	api.POST("/generic", handler.Run)
	api.GET("/field-definitions", handler.FieldDefinitions)
	api.GET("/generic-template", handler.Template)
	api.GET("/history", handler.History)
	return router
}

func authed(req *http.Request) *http.Request {
	req.Header.Set(middleware.TenantIDHeader, "tenant-1")
	req.Header.Set(middleware.UserIDHeader, "user-1")
	return req
}

type importForm struct {
	filename string
	file     []byte
	fields   map[string]string
}

func (f importForm) request(t *testing.T, url string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range f.fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if f.filename != "" {
		part, err := writer.CreateFormFile("file", f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return authed(req)
}

func TestImportHandler_Preview(t *testing.T) {
	t.Run("returns preview data", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

		mockService.EXPECT().
			Preview(mock.Anything, "leads.csv").
			Return(&service.PreviewResult{
				Headers:   []string{"company_name"},
				Rows:      [][]string{{"Acme Corp"}},
				TotalRows: 1,
			}, nil)

		form := importForm{filename: "leads.csv", file: []byte("company_name\nAcme Corp")}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/preview"))

		require.Equal(t, http.StatusOK, w.Code)

		var response service.PreviewResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"company_name"}, response.Headers)
		assert.Equal(t, 1, response.TotalRows)
	})

	t.Run("returns 400 when no file uploaded", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

		form := importForm{}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/preview"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No file uploaded")
	})

	t.Run("returns 400 on decode failure", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

		mockService.EXPECT().
			Preview(mock.Anything, "leads.txt").
			Return(nil, &tabular.DecodeError{Kind: tabular.ErrUnsupportedFormat, Message: "Unsupported file format"})

		form := importForm{filename: "leads.txt", file: []byte("data")}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/preview"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unsupported file format")
	})
}

func TestImportHandler_Run(t *testing.T) {
	mappingsJSON := `[{"csvColumn":"company_name","leadField":"name"}]`

	t.Run("runs an import batch", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockUsers := mocks.NewMockUserRepository(t)
		handler := NewImportHandler(mockService, mockUsers, 20)

		mockUsers.EXPECT().
			FindActiveByEmail(mock.Anything, "tenant-1", "owner@example.com").
			Return(&domain.User{ID: "user-2", Email: "owner@example.com"}, nil)

		mockService.EXPECT().
			Run(mock.Anything, mock.Anything, "leads.csv",
				[]domain.ColumnMapping{{CSVColumn: "company_name", LeadField: "name"}},
				service.ImportTarget{TenantID: "tenant-1", CreatedBy: "user-1", AssignedTo: "user-2"}).
			Return(&domain.ImportReport{
				Message:           "Import completed: 1 successful, 0 failed",
				SuccessfulImports: 1,
				Warnings:          []string{},
				Failures:          []domain.RowFailure{},
			}, nil)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields: map[string]string{
				"assigned_user_email": "owner@example.com",
				"column_mappings":     mappingsJSON,
			},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusOK, w.Code)

		var report domain.ImportReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, 1, report.SuccessfulImports)
		assert.Equal(t, "Import completed: 1 successful, 0 failed", report.Message)
	})

	t.Run("returns 400 when assigned user missing", func(t *testing.T) {
		handler := NewImportHandler(mocks.NewMockImportServiceInterface(t), mocks.NewMockUserRepository(t), 20)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields:   map[string]string{"column_mappings": mappingsJSON},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No assigned user specified")
	})

	t.Run("returns 400 when column mappings missing", func(t *testing.T) {
		handler := NewImportHandler(mocks.NewMockImportServiceInterface(t), mocks.NewMockUserRepository(t), 20)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields:   map[string]string{"assigned_user_email": "owner@example.com"},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No column mappings provided")
	})

	t.Run("returns 400 on malformed mapping JSON", func(t *testing.T) {
		handler := NewImportHandler(mocks.NewMockImportServiceInterface(t), mocks.NewMockUserRepository(t), 20)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields: map[string]string{
				"assigned_user_email": "owner@example.com",
				"column_mappings":     "{not json",
			},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid column mappings format")
	})

	t.Run("returns 400 when the assignee is unknown", func(t *testing.T) {
		mockUsers := mocks.NewMockUserRepository(t)
		handler := NewImportHandler(mocks.NewMockImportServiceInterface(t), mockUsers, 20)

		mockUsers.EXPECT().
			FindActiveByEmail(mock.Anything, "tenant-1", "ghost@example.com").
			Return(nil, nil)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields: map[string]string{
				"assigned_user_email": "ghost@example.com",
				"column_mappings":     mappingsJSON,
			},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "User ghost@example.com not found or inactive")
	})

	t.Run("returns 400 on mapping precondition failures", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockUsers := mocks.NewMockUserRepository(t)
		handler := NewImportHandler(mockService, mockUsers, 20)

		mockUsers.EXPECT().
			FindActiveByEmail(mock.Anything, "tenant-1", "owner@example.com").
			Return(&domain.User{ID: "user-2"}, nil)

		mockService.EXPECT().
			Run(mock.Anything, mock.Anything, "leads.csv", mock.Anything, mock.Anything).
			Return(nil, &service.PreconditionError{
				Kind:   service.PreconditionMissingRequiredField,
				Fields: []string{"name"},
			})

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields: map[string]string{
				"assigned_user_email": "owner@example.com",
				"column_mappings":     `[{"csvColumn":"city","leadField":"city"}]`,
			},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required field mappings: name")
	})

	t.Run("returns 500 on unexpected errors", func(t *testing.T) {
		mockService := mocks.NewMockImportServiceInterface(t)
		mockUsers := mocks.NewMockUserRepository(t)
		handler := NewImportHandler(mockService, mockUsers, 20)

		mockUsers.EXPECT().
			FindActiveByEmail(mock.Anything, "tenant-1", "owner@example.com").
			Return(&domain.User{ID: "user-2"}, nil)

		mockService.EXPECT().
			Run(mock.Anything, mock.Anything, "leads.csv", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		form := importForm{
			filename: "leads.csv",
			file:     []byte("company_name\nAcme Corp"),
			fields: map[string]string{
				"assigned_user_email": "owner@example.com",
				"column_mappings":     mappingsJSON,
			},
		}
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, form.request(t, "/api/import/leads/generic"))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Import failed")
	})

	t.Run("returns 401 without identity headers", func(t *testing.T) {
		handler := NewImportHandler(mocks.NewMockImportServiceInterface(t), mocks.NewMockUserRepository(t), 20)

		req := httptest.NewRequest(http.MethodPost, "/api/import/leads/generic", nil)
		w := httptest.NewRecorder()
		importRouter(handler).ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestImportHandler_FieldDefinitions(t *testing.T) {
	mockService := mocks.NewMockImportServiceInterface(t)
	handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

	mockService.EXPECT().
		FieldDefinitions().
		Return([]service.FieldDefinitionView{
			{Field: "name", Required: true, Type: "string", MaxLength: 100},
		})

	req := authed(httptest.NewRequest(http.MethodGet, "/api/import/leads/field-definitions", nil))
	w := httptest.NewRecorder()
	importRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var defs []service.FieldDefinitionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defs))
	require.Len(t, defs, 1)
	assert.Equal(t, "name", defs[0].Field)
	assert.True(t, defs[0].Required)
}

func TestImportHandler_Template(t *testing.T) {
	mockService := mocks.NewMockImportServiceInterface(t)
	handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

	mockService.EXPECT().
		Template().
		Return([]byte("company_name\nExample Corp\n"), "lead_import_template_generic.csv")

	req := authed(httptest.NewRequest(http.MethodGet, "/api/import/leads/generic-template", nil))
	w := httptest.NewRecorder()
	importRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=lead_import_template_generic.csv", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "company_name\nExample Corp\n", w.Body.String())
}

func TestImportHandler_History(t *testing.T) {
	mockService := mocks.NewMockImportServiceInterface(t)
	handler := NewImportHandler(mockService, mocks.NewMockUserRepository(t), 20)

	mockService.EXPECT().
		RecentRuns(mock.Anything, "tenant-1", 20).
		Return([]domain.ImportRun{{ID: "run-1", Filename: "leads.csv"}}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/api/import/leads/history", nil))
	w := httptest.NewRecorder()
	importRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var runs []domain.ImportRun
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "leads.csv", runs[0].Filename)
}
