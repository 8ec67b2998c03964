package main

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"github.com/ammerola/inventory-catalog/internal/workers"
)

func TestExponentialBackoff(t *testing.T) {
	task := asynq.NewTask(workers.TypeImport, nil)

	tests := []struct {
		name    string
		retried int
		want    time.Duration
	}{
		{name: "first_retry", retried: 0, want: time.Second},
		{name: "third_retry", retried: 3, want: 8 * time.Second},
		{name: "capped", retried: 12, want: 10 * time.Minute},
		{name: "overflow_is_capped", retried: 70, want: 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exponentialBackoff(tt.retried, nil, task))
		})
	}
}
