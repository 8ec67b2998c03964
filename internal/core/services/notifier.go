// internal/core/services/notifier.go
package services

import (
	"log/slog"
	"sync"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
)

// Notifier broadcasts "data at URI changed" events.
//
// An event for a URI reaches observers registered on that URI, on any of
// its ancestors and on any of its descendants. Observers are called
// synchronously, without the registry lock held.
type Notifier struct {
	mu        sync.RWMutex
	nextID    uint64
	observers map[string]map[uint64]domain.Observer
	logger    *slog.Logger
}

// Statically assert that *Notifier implements the ChangeRegistry interface.
var _ domain.ChangeRegistry = (*Notifier)(nil)

// NewNotifier creates an empty registry.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		observers: make(map[string]map[uint64]domain.Observer),
		logger:    logger.With(slog.String("component", "notifier")),
	}
}

// Register subscribes o to uri. The returned func removes it and may be
// called more than once.
func (n *Notifier) Register(uri string, o domain.Observer) func() {
	key := domain.NormalizeURI(uri)

	n.mu.Lock()
	n.nextID++
	id := n.nextID
	set, ok := n.observers[key]
	if !ok {
		set = make(map[uint64]domain.Observer)
		n.observers[key] = set
	}
	set[id] = o
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if set, ok := n.observers[key]; ok {
				delete(set, id)
				if len(set) == 0 {
					delete(n.observers, key)
				}
			}
		})
	}
}

// Watch subscribes a single-slot channel to uri. Events arriving while an
// earlier one is pending are dropped. The channel is never closed.
func (n *Notifier) Watch(uri string) (<-chan string, func()) {
	ch := make(chan string, 1)

	cancel := n.Register(uri, domain.ObserverFunc(func(changed string) {
		select {
		case ch <- changed:
		default:
			n.logger.Debug("dropping coalesced change", slog.String("uri", changed))
		}
	}))

	return ch, cancel
}

// Notify wakes every observer interested in uri.
func (n *Notifier) Notify(uri string) {
	key := domain.NormalizeURI(uri)

	n.mu.RLock()
	var targets []domain.Observer
	for registered, set := range n.observers {
		if registered != key &&
			!domain.IsAncestorURI(registered, key) &&
			!domain.IsAncestorURI(key, registered) {
			continue
		}
		for _, o := range set {
			targets = append(targets, o)
		}
	}
	n.mu.RUnlock()

	n.logger.Debug("notifying change",
		slog.String("uri", key),
		slog.Int("observers", len(targets)))

	for _, o := range targets {
		o.OnChange(uri)
	}
}

// ObserverCount returns how many observers are registered exactly on uri.
func (n *Notifier) ObserverCount(uri string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers[domain.NormalizeURI(uri)])
}
