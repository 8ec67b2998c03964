package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// fakeRegistry records registrations without any matching rules.
type fakeRegistry struct {
	mu        sync.Mutex
	observers map[string][]domain.Observer
	removed   int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{observers: map[string][]domain.Observer{}}
}

func (r *fakeRegistry) Register(uri string, o domain.Observer) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers[uri] = append(r.observers[uri], o)
	idx := len(r.observers[uri]) - 1
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.observers[uri][idx] = nil
		r.removed++
	}
}

func (r *fakeRegistry) Notify(uri string) {
	r.mu.Lock()
	obs := append([]domain.Observer(nil), r.observers[uri]...)
	r.mu.Unlock()
	for _, o := range obs {
		if o != nil {
			o.OnChange(uri)
		}
	}
}

func TestResultSet_Cursor(t *testing.T) {
	rs := domain.NewResultSet([]string{"_id", "name"}, [][]any{
		{int64(1), "a"},
		{int64(2), nil},
	})

	assert.Equal(t, 2, rs.Count())
	assert.Equal(t, -1, rs.Position())
	assert.False(t, rs.HasRow())
	assert.Equal(t, 1, rs.ColumnIndex("name"))
	assert.Equal(t, -1, rs.ColumnIndex("missing"))

	require.True(t, rs.Next())
	id, err := rs.Int64(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "a", rs.String(1))

	require.True(t, rs.Next())
	assert.True(t, rs.IsNull(1))
	assert.Equal(t, "", rs.String(1))

	assert.False(t, rs.Next())
	assert.False(t, rs.Next())
	assert.Nil(t, rs.Value(0))

	assert.True(t, rs.MoveToPosition(0))
	assert.Equal(t, "a", rs.String(1))
	assert.False(t, rs.MoveToPosition(5))
}

func TestResultSet_Int64Errors(t *testing.T) {
	rs := domain.NewResultSet([]string{"price"}, [][]any{{"not a number"}})
	require.True(t, rs.Next())

	_, err := rs.Int64(0)
	assert.ErrorContains(t, err, "price")
}

func TestResultSet_NotificationURI(t *testing.T) {
	reg := newFakeRegistry()
	uri := domain.DefaultContract.CollectionURI()

	rs := domain.NewResultSet(domain.AllColumns, nil)
	rs.SetNotificationURI(reg, uri)
	assert.Equal(t, uri, rs.NotificationURI())

	reg.Notify(uri)
	reg.Notify(uri)

	select {
	case <-rs.Changed():
	default:
		t.Fatal("expected a change signal")
	}
	select {
	case <-rs.Changed():
		t.Fatal("signals should coalesce")
	default:
	}

	require.NoError(t, rs.Close())
	require.NoError(t, rs.Close())
	assert.Equal(t, 1, reg.removed)

	reg.Notify(uri)
	select {
	case <-rs.Changed():
		t.Fatal("closed result set must not be signalled")
	default:
	}
}

func TestResultSet_RetagReplacesRegistration(t *testing.T) {
	reg := newFakeRegistry()
	c := domain.DefaultContract

	rs := domain.NewResultSet(domain.AllColumns, nil)
	rs.SetNotificationURI(reg, c.ItemURI(1))
	rs.SetNotificationURI(reg, c.ItemURI(2))
	assert.Equal(t, 1, reg.removed)

	reg.Notify(c.ItemURI(1))
	select {
	case <-rs.Changed():
		t.Fatal("old uri must be released")
	default:
	}

	reg.Notify(c.ItemURI(2))
	select {
	case <-rs.Changed():
	default:
		t.Fatal("expected a change signal")
	}
}
