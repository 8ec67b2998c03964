// internal/workers/tasks.go
package workers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeImport = "inventory:import"
	TypeExport = "inventory:export"
)

const taskTimeout = 10 * time.Minute

// JobPayload is the payload of spreadsheet jobs.
type JobPayload struct {
	JobID    string `json:"job_id"`
	FilePath string `json:"file_path"`
	// RemoveAfter deletes an imported file once it has been read.
	RemoveAfter bool `json:"remove_after,omitempty"`
}

// NewImportTask builds a task that imports the spreadsheet at path.
func NewImportTask(path string, removeAfter bool, opts ...asynq.Option) (*asynq.Task, string, error) {
	return newJobTask(TypeImport, JobPayload{FilePath: path, RemoveAfter: removeAfter}, opts)
}

// NewExportTask builds a task that writes the catalog to path.
func NewExportTask(path string, opts ...asynq.Option) (*asynq.Task, string, error) {
	return newJobTask(TypeExport, JobPayload{FilePath: path}, opts)
}

func newJobTask(typename string, payload JobPayload, opts []asynq.Option) (*asynq.Task, string, error) {
	if payload.FilePath == "" {
		return nil, "", fmt.Errorf("%s: file path is required", typename)
	}
	payload.JobID = uuid.NewString()

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	opts = append([]asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(taskTimeout),
		asynq.TaskID(payload.JobID),
	}, opts...)

	return asynq.NewTask(typename, data, opts...), payload.JobID, nil
}

func decodePayload(t *asynq.Task) (JobPayload, error) {
	var payload JobPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}
	if payload.FilePath == "" {
		return payload, fmt.Errorf("missing file_path: %w", asynq.SkipRetry)
	}
	return payload, nil
}

func writeResult(t *asynq.Task, result any) {
	w := t.ResultWriter()
	if w == nil {
		return
	}
	if data, err := json.Marshal(result); err == nil {
		_, _ = w.Write(data)
	}
}
