// internal/core/domain/result_set.go
package domain

import (
	"fmt"
	"strconv"
	"sync"
)

// ResultSet is a forward-moving, materialized view over query rows.
// It belongs to the caller, who must Close it.
type ResultSet struct {
	columns []string
	index   map[string]int
	rows    [][]any
	pos     int

	mu         sync.Mutex
	uri        string
	unregister func()
	changed    chan struct{}
	closed     bool
}

// NewResultSet wraps already-read rows. Each row must have len(columns) cells.
func NewResultSet(columns []string, rows [][]any) *ResultSet {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	return &ResultSet{
		columns: columns,
		index:   index,
		rows:    rows,
		pos:     -1,
		changed: make(chan struct{}, 1),
	}
}

// Columns returns the projected column names.
func (rs *ResultSet) Columns() []string {
	out := make([]string, len(rs.columns))
	copy(out, rs.columns)
	return out
}

// ColumnIndex returns the position of name, or -1.
func (rs *ResultSet) ColumnIndex(name string) int {
	if i, ok := rs.index[name]; ok {
		return i
	}
	return -1
}

// Count returns the number of rows.
func (rs *ResultSet) Count() int {
	return len(rs.rows)
}

// Next advances to the next row.
func (rs *ResultSet) Next() bool {
	if rs.pos < len(rs.rows) {
		rs.pos++
	}
	return rs.pos < len(rs.rows)
}

// Position returns the current row index; -1 before the first row.
func (rs *ResultSet) Position() int {
	return rs.pos
}

// MoveToPosition jumps to row i. Out of range positions return false.
func (rs *ResultSet) MoveToPosition(i int) bool {
	if i < -1 || i > len(rs.rows) {
		return false
	}
	rs.pos = i
	return rs.HasRow()
}

// HasRow reports whether the cursor is on a row.
func (rs *ResultSet) HasRow() bool {
	return rs.pos >= 0 && rs.pos < len(rs.rows)
}

// Value returns the raw cell at column i of the current row.
func (rs *ResultSet) Value(i int) any {
	if !rs.HasRow() || i < 0 || i >= len(rs.columns) {
		return nil
	}
	return rs.rows[rs.pos][i]
}

// IsNull reports whether the cell at column i is NULL.
func (rs *ResultSet) IsNull(i int) bool {
	return rs.Value(i) == nil
}

// String returns the cell as text. NULL reads as "".
func (rs *ResultSet) String(i int) string {
	switch v := rs.Value(i).(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// Int64 returns the cell as an integer. NULL reads as 0.
func (rs *ResultSet) Int64(i int) (int64, error) {
	switch v := rs.Value(i).(type) {
	case nil:
		return 0, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", rs.columns[i], err)
		}
		return n, nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", rs.columns[i], err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("column %s: unsupported type %T", rs.columns[i], v)
	}
}

// SetNotificationURI ties the result set to uri. Changes notified on
// registry for that URI are signalled on Changed until Close.
func (rs *ResultSet) SetNotificationURI(registry ChangeRegistry, uri string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.closed {
		return
	}
	if rs.unregister != nil {
		rs.unregister()
		rs.unregister = nil
	}
	rs.uri = uri
	if registry == nil {
		return
	}
	rs.unregister = registry.Register(uri, ObserverFunc(func(string) {
		select {
		case rs.changed <- struct{}{}:
		default:
		}
	}))
}

// NotificationURI returns the URI this result set was produced for.
func (rs *ResultSet) NotificationURI() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.uri
}

// Changed receives a value when the underlying data may be stale.
// Pending signals are coalesced.
func (rs *ResultSet) Changed() <-chan struct{} {
	return rs.changed
}

// Close releases the observer registration. It is safe to call twice.
func (rs *ResultSet) Close() error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.closed {
		return nil
	}
	rs.closed = true
	if rs.unregister != nil {
		rs.unregister()
		rs.unregister = nil
	}
	return nil
}
