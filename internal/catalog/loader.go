package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"tftlookup/internal/domain"
	"tftlookup/internal/eventbus"
)

// FetchFunc produces the catalogue, from the network or a file
type FetchFunc func(ctx context.Context) ([]domain.Item, error)

// FileFetcher adapts LoadFile to a FetchFunc
func FileFetcher(path string) FetchFunc {
	return func(context.Context) ([]domain.Item, error) {
		return LoadFile(path)
	}
}

// Loader fills a Store once and reports the outcome on the bus
type Loader struct {
	fetch  FetchFunc
	origin string
	store  *Store
	bus    eventbus.EventBus
	log    logrus.FieldLogger
}

// NewLoader creates a loader. origin names where items come from, for logs
func NewLoader(fetch FetchFunc, origin string, store *Store, bus eventbus.EventBus, log logrus.FieldLogger) *Loader {
	return &Loader{
		fetch:  fetch,
		origin: origin,
		store:  store,
		bus:    bus,
		log:    log.WithField("component", "loader"),
	}
}

// Load fetches the catalogue. A failure is logged as a warning and leaves
// the store empty; there is no retry
func (l *Loader) Load(ctx context.Context) error {
	items, err := l.fetch(ctx)
	if err != nil {
		l.log.WithError(err).WithField("origin", l.origin).Warn("failed to fetch items")
		if l.bus != nil {
			l.bus.Publish(eventbus.ItemsLoadFailedEvent{URL: l.origin, Err: err})
		}
		return err
	}

	l.store.Replace(items)
	l.log.WithField("origin", l.origin).Infof("loaded %d items", len(items))
	if l.bus != nil {
		l.bus.Publish(eventbus.ItemsLoadedEvent{Count: len(items)})
	}
	return nil
}
