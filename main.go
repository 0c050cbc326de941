package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cmdpick/internal/catalog"
	"cmdpick/internal/eventbus"
	"cmdpick/internal/ui"
)

// Exit codes: a user cancel is distinct from a startup failure so calling
// shells can branch on them.
const (
	exitSelected = 0
	exitAborted  = 1
	exitStartup  = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var catalogPath string
	var logPath string
	flag.StringVar(&catalogPath, "catalog", "", "catalog file (default ~/.config/cmdpick/catalog.toml)")
	flag.StringVar(&logPath, "log", "", "write a debug log to this file")
	flag.Parse()

	// The UI owns stderr and the result owns stdout, so logging is silent
	// unless a log file was asked for.
	log.SetOutput(io.Discard)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cmdpick: could not open log file: %v\n", err)
		} else {
			defer logFile.Close()
			log.SetOutput(logFile)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load the catalog
	catalogSvc := catalog.NewServiceWithBus(bus)
	watchPath := catalogSvc.Path()

	var cfg *catalog.Config
	var err error
	if catalogPath != "" {
		cfg, err = catalogSvc.LoadFromPath(catalogPath)
		watchPath = catalogPath
	} else {
		cfg, err = catalogSvc.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdpick: %v\n", err)
		return exitStartup
	}

	entries := cfg.Catalog()
	log.Printf("Catalog loaded: %d commands", len(entries))

	// Create the session model; all rendering goes to stderr so stdout
	// stays clean for the selected command.
	model := ui.NewModel(ui.Options{
		Catalog:    entries,
		Prompt:     cfg.Prompt,
		MaxVisible: cfg.MaxVisible,
	})
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))

	// Forward catalog changes into the running session
	bus.Subscribe(eventbus.EventCatalogReloaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogReloadedEvent); ok {
			p.Send(ui.CatalogReloadedMsg{Catalog: event.Catalog})
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("%s: %v", event.Message, event.Err)
			p.Send(ui.NoticeMsg{Text: event.Message})
		}
	})

	// Watch the catalog file when it exists on disk
	if _, statErr := os.Stat(watchPath); statErr == nil {
		watcher := catalog.NewWatcher(bus, catalogSvc, watchPath)
		if err := watcher.Start(ctx); err != nil {
			log.Printf("Catalog watch disabled: %v", err)
		}
	}

	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdpick: %v\n", err)
		return exitStartup
	}

	m, ok := finalModel.(*ui.Model)
	if !ok || m.Outcome() != ui.OutcomeSelected {
		return exitAborted
	}

	// The one and only write to stdout: the selected command text.
	fmt.Println(m.Selection().Text)
	return exitSelected
}
