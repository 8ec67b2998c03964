// internal/core/domain/observer.go
package domain

// Observer is told when data behind a URI has changed.
type Observer interface {
	OnChange(uri string)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(uri string)

func (f ObserverFunc) OnChange(uri string) { f(uri) }

// ChangeRegistry maps URIs to observers.
type ChangeRegistry interface {
	Register(uri string, o Observer) (unregister func())
	Notify(uri string)
}
