package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"cmdpick/internal/eventbus"
)

// Watcher watches the catalog file and publishes a CatalogReloadedEvent
// whenever it is rewritten. Reload failures are published as ErrorEvents
// and the previous catalog stays in effect.
type Watcher struct {
	bus     eventbus.EventBus
	service Service
	path    string
}

// NewWatcher creates a watcher for the given catalog file
func NewWatcher(bus eventbus.EventBus, service Service, path string) *Watcher {
	return &Watcher{bus: bus, service: service, path: path}
}

// Start begins watching in a background goroutine until ctx is cancelled.
// The parent directory is watched rather than the file itself so that
// editors which replace the file (write to temp, rename over) are seen.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch catalog directory %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(w.path) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				w.reload()

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Catalog watcher error: %v", err)
			}
		}
	}()

	return nil
}

func (w *Watcher) reload() {
	cfg, err := w.service.LoadFromPath(w.path)
	if err != nil {
		w.bus.Publish(eventbus.ErrorEvent{Message: "catalog reload failed", Err: err})
		return
	}

	log.Printf("Catalog reloaded from %s: %d commands", w.path, len(cfg.Commands))
	w.bus.Publish(eventbus.CatalogReloadedEvent{Catalog: cfg.Catalog(), Path: w.path})
}
