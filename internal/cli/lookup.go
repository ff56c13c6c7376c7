package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"tftlookup/internal/catalog"
	"tftlookup/internal/config"
	"tftlookup/internal/ui/services/autocomplete"
	"tftlookup/internal/ui/views"
)

// SearchParams holds parameters for the search command
type SearchParams struct {
	Config *config.Config
	Prefix string
	Out    io.Writer
	Log    logrus.FieldLogger
}

// ShowParams holds parameters for the show command
type ShowParams struct {
	Config *config.Config
	Name   string
	Out    io.Writer
	Log    logrus.FieldLogger
}

// Search prints the names matching the prefix, one per line. The
// highlighted result is marked with "> "
func Search(ctx context.Context, params SearchParams) error {
	store, err := loadStore(ctx, params.Config, params.Log)
	if err != nil {
		return err
	}

	controller := autocomplete.NewController(catalog.PrefixSearch(store), nil, nil, autocomplete.Options{
		AutoSelect: params.Config.UISettings.AutoSelect,
	})

	results := controller.UpdateResults(params.Prefix)
	if len(results) == 0 {
		params.Log.WithField("prefix", params.Prefix).Info("no items match")
		return nil
	}

	for i, name := range results {
		marker := "  "
		if i == controller.ActiveIndex() {
			marker = "> "
		}
		if _, err := fmt.Fprintf(params.Out, "%s%s\n", marker, name); err != nil {
			return err
		}
	}
	return nil
}

// Show prints the details of one item. A missing item is an error
// wrapping catalog.ErrNotFound
func Show(ctx context.Context, params ShowParams) error {
	if params.Name == "" {
		return errors.New("show needs an item name")
	}

	store, err := loadStore(ctx, params.Config, params.Log)
	if err != nil {
		return err
	}

	item, err := catalog.Lookup(store, params.Name)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(params.Out, views.RenderDetails(item))
	return err
}

// loadStore fetches the catalogue synchronously
func loadStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*catalog.Store, error) {
	store := catalog.NewStore()
	fetch, origin := newFetcher(cfg)
	if err := catalog.NewLoader(fetch, origin, store, nil, log).Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load items from %s: %w", origin, err)
	}
	return store, nil
}
