package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tftlookup/internal/catalog"
	"tftlookup/internal/config"
	"tftlookup/internal/eventbus"
	"tftlookup/internal/logger"
	"tftlookup/internal/ui"
)

// RunTUI runs the interactive lookup until the user quits. Items are
// fetched in the background; the UI starts with an empty catalogue
func RunTUI(ctx context.Context, cfg *config.Config) error {
	log, logFile, err := logger.NewFile(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New(log)
	defer bus.Close()

	store := catalog.NewStore()

	log.Printf("Creating UI model...")
	uiModel := ui.NewModel(cfg, store, bus, log)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		case <-done:
		default:
			log.Warn("Event channel full, dropping event")
		}
	}
	logEvent := func(e eventbus.DomainEvent) {
		log.WithField("event", e.Type()).Debugf("%+v", e)
	}

	unsubscribe := []func(){
		bus.Subscribe(eventbus.EventItemsLoaded, forwardEvent),
		bus.Subscribe(eventbus.EventItemsLoadFailed, forwardEvent),
		bus.Subscribe(eventbus.EventResultsShown, logEvent),
		bus.Subscribe(eventbus.EventResultsHidden, logEvent),
		bus.Subscribe(eventbus.EventSelectionCommitted, logEvent),
		bus.Subscribe(eventbus.EventItemLookedUp, logEvent),
	}
	defer func() {
		for _, u := range unsubscribe {
			u()
		}
	}()

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	fetch, origin := newFetcher(cfg)
	loader := catalog.NewLoader(fetch, origin, store, bus, log)
	go func() {
		// the failure is logged and published by the loader
		_ = loader.Load(ctx)
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.WithError(err).Error("Error running program")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")

	return nil
}
