package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted     EventType = "SearchStarted"
	EventPageRequested     EventType = "PageRequested"
	EventSearchCompleted   EventType = "SearchCompleted"
	EventSearchFailed      EventType = "SearchFailed"
	EventResponseDiscarded EventType = "ResponseDiscarded"
	EventConfigLoaded      EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a new search is issued
type SearchStartedEvent struct {
	SessionID string
	Seq       uint64
	Request   PageRequest
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// PageRequestedEvent is emitted when a page change is issued
type PageRequestedEvent struct {
	SessionID string
	Seq       uint64
	Page      int
	Request   PageRequest
}

func (e PageRequestedEvent) Type() EventType { return EventPageRequested }

// SearchCompletedEvent is emitted when a current response has been applied
type SearchCompletedEvent struct {
	SessionID  string
	Seq        uint64
	Page       int
	TotalCount int
	TotalPages int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a fetch failed or returned nothing
type SearchFailedEvent struct {
	SessionID string
	Seq       uint64
	Message   string
	Err       error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ResponseDiscardedEvent is emitted when a superseded response arrives
type ResponseDiscardedEvent struct {
	SessionID string
	Seq       uint64
	Current   uint64
}

func (e ResponseDiscardedEvent) Type() EventType { return EventResponseDiscarded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	BaseURL string
	Region  string
	Limit   int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
