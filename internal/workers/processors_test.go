package workers_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/inventory-catalog/internal/adapters/spreadsheet"
	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/core/ports"
	"github.com/ammerola/inventory-catalog/internal/core/services"
	"github.com/ammerola/inventory-catalog/internal/workers"
	"github.com/ammerola/inventory-catalog/test/helpers"
	"github.com/ammerola/inventory-catalog/test/mocks"
)

func newCatalog(t *testing.T) *services.Catalog {
	t.Helper()

	store := helpers.SetupTestStore(t)
	provider := services.NewProvider(store, services.NewNotifier(helpers.TestLogger()),
		domain.DefaultContract, helpers.TestLogger())
	catalog := services.NewCatalog(provider, nil, spreadsheet.NewWorkbook(helpers.TestLogger()), helpers.TestLogger())
	t.Cleanup(catalog.Close)
	return catalog
}

func TestNewTasks(t *testing.T) {
	tests := []struct {
		name          string
		build         func() (*asynq.Task, string, error)
		wantType      string
		wantRemove    bool
		wantError     bool
		errorContains string
	}{
		{
			name:       "import_task",
			build:      func() (*asynq.Task, string, error) { return workers.NewImportTask("/data/in.xlsx", true) },
			wantType:   workers.TypeImport,
			wantRemove: true,
		},
		{
			name:     "export_task",
			build:    func() (*asynq.Task, string, error) { return workers.NewExportTask("/data/out.xlsx") },
			wantType: workers.TypeExport,
		},
		{
			name:          "missing_path",
			build:         func() (*asynq.Task, string, error) { return workers.NewExportTask("") },
			wantError:     true,
			errorContains: "file path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, jobID, err := tt.build()

			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, task.Type())

			var payload workers.JobPayload
			require.NoError(t, json.Unmarshal(task.Payload(), &payload))
			assert.Equal(t, jobID, payload.JobID)
			assert.NotEmpty(t, payload.JobID)
			assert.Equal(t, tt.wantRemove, payload.RemoveAfter)
		})
	}
}

func TestExportThenImport(t *testing.T) {
	ctx := context.Background()
	source := newCatalog(t)
	for _, p := range helpers.CreateTestProducts(3) {
		_, err := source.Save(ctx, 0, p.Payload())
		require.NoError(t, err)
	}

	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	exportTask, _, err := workers.NewExportTask(path)
	require.NoError(t, err)
	require.NoError(t, workers.NewExportProcessor(source, helpers.TestLogger()).ProcessExport(ctx, exportTask))
	require.FileExists(t, path)

	target := newCatalog(t)
	importTask, _, err := workers.NewImportTask(path, true)
	require.NoError(t, err)
	require.NoError(t, workers.NewImportProcessor(target, helpers.TestLogger()).ProcessImport(ctx, importTask))

	assert.NoFileExists(t, path, "imported file should be removed")

	want, err := source.List(ctx)
	require.NoError(t, err)
	got, err := target.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestImportProcessor_Errors(t *testing.T) {
	existing := helpers.CreateTempFile(t, []byte("not a workbook"), ".xlsx")

	tests := []struct {
		name          string
		payload       []byte
		setupMocks    func(*mocks.MockCatalogService)
		wantSkipRetry bool
		errorContains string
	}{
		{
			name:          "malformed_payload",
			payload:       []byte("{"),
			wantSkipRetry: true,
			errorContains: "failed to unmarshal payload",
		},
		{
			name:          "missing_file_path",
			payload:       []byte(`{"job_id":"j1"}`),
			wantSkipRetry: true,
			errorContains: "missing file_path",
		},
		{
			name:          "file_does_not_exist",
			payload:       []byte(`{"job_id":"j1","file_path":"/nonexistent/in.xlsx"}`),
			wantSkipRetry: true,
			errorContains: "failed to open spreadsheet",
		},
		{
			name:    "catalog_import_fails",
			payload: []byte(`{"job_id":"j1","file_path":"` + existing + `"}`),
			setupMocks: func(catalog *mocks.MockCatalogService) {
				catalog.EXPECT().Import(gomock.Any(), gomock.Any(), int64(len("not a workbook"))).
					Return(nil, errors.New("failed to open workbook"))
			},
			errorContains: "failed to import spreadsheet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := mocks.NewMockCatalogService(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(catalog)
			}

			processor := workers.NewImportProcessor(catalog, helpers.TestLogger())
			err := processor.ProcessImport(context.Background(), asynq.NewTask(workers.TypeImport, tt.payload))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Equal(t, tt.wantSkipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestImportProcessor_KeepsFileByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogService(ctrl)
	path := helpers.CreateTempFile(t, []byte("rows"), ".xlsx")

	catalog.EXPECT().Import(gomock.Any(), gomock.Any(), int64(4)).
		Return(&ports.ImportResult{Inserted: 2}, nil)

	task, _, err := workers.NewImportTask(path, false)
	require.NoError(t, err)

	err = workers.NewImportProcessor(catalog, helpers.TestLogger()).ProcessImport(context.Background(), task)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExportProcessor_FailureLeavesNoFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogService(ctrl)
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xlsx")

	catalog.EXPECT().Export(gomock.Any(), gomock.Any()).
		Return(0, errors.New("spreadsheet support is not configured"))

	task, _, err := workers.NewExportTask(path)
	require.NoError(t, err)

	err = workers.NewExportProcessor(catalog, helpers.TestLogger()).ProcessExport(context.Background(), task)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to export catalog")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
