package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventItemsLoaded        EventType = "ItemsLoaded"
	EventItemsLoadFailed    EventType = "ItemsLoadFailed"
	EventResultsShown       EventType = "ResultsShown"
	EventResultsHidden      EventType = "ResultsHidden"
	EventSelectionCommitted EventType = "SelectionCommitted"
	EventItemLookedUp       EventType = "ItemLookedUp"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ItemsLoadedEvent is emitted when the catalogue fetch completes
type ItemsLoadedEvent struct {
	Count int
}

func (e ItemsLoadedEvent) Type() EventType { return EventItemsLoaded }

// ItemsLoadFailedEvent is emitted when the catalogue could not be fetched
type ItemsLoadFailedEvent struct {
	URL string
	Err error
}

func (e ItemsLoadFailedEvent) Type() EventType { return EventItemsLoadFailed }

// ResultsShownEvent is emitted when the suggestion list becomes visible
type ResultsShownEvent struct {
	Query string
	Count int
}

func (e ResultsShownEvent) Type() EventType { return EventResultsShown }

// ResultsHiddenEvent is emitted when the suggestion list is hidden
type ResultsHiddenEvent struct{}

func (e ResultsHiddenEvent) Type() EventType { return EventResultsHidden }

// SelectionCommittedEvent is emitted when a suggestion is copied into the query
type SelectionCommittedEvent struct {
	Query string
}

func (e SelectionCommittedEvent) Type() EventType { return EventSelectionCommitted }

// ItemLookedUpEvent is emitted after a submitted query was resolved
type ItemLookedUpEvent struct {
	Query string
	Found bool
}

func (e ItemLookedUpEvent) Type() EventType { return EventItemLookedUp }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
