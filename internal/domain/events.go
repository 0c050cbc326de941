package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCatalogReloaded EventType = "CatalogReloaded"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when the catalog is loaded at startup
type CatalogLoadedEvent struct {
	Catalog Catalog
	Path    string // empty when the built-in catalog was used
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadedEvent is emitted when the catalog file changed on disk
// and was read again mid-session
type CatalogReloadedEvent struct {
	Catalog Catalog
	Path    string
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
