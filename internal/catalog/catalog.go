// Package catalog loads the command catalog and UI settings from a TOML
// file, and watches the file for changes.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"cmdpick/internal/domain"
	"cmdpick/internal/eventbus"
)

// Config represents the catalog file contents
type Config struct {
	Prompt     string        `toml:"prompt"`
	MaxVisible int           `toml:"max_visible"` // 0 means fill the terminal
	Commands   []CommandSpec `toml:"commands"`
}

// CommandSpec is one catalog entry as it appears in the file
type CommandSpec struct {
	Text        string   `toml:"text"`
	Description string   `toml:"description"`
	Tags        []string `toml:"tags"`
}

// Catalog converts the file entries into the domain catalog
func (c *Config) Catalog() domain.Catalog {
	catalog := make(domain.Catalog, 0, len(c.Commands))
	for _, cmd := range c.Commands {
		catalog = append(catalog, domain.Entry{
			Text:        cmd.Text,
			Description: cmd.Description,
			Tags:        cmd.Tags,
		})
	}
	return catalog
}

// Service handles catalog loading
type Service interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a catalog service reading from the default location,
// ~/.config/cmdpick/catalog.toml (or the platform equivalent)
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &service{
		filePath: filepath.Join(configDir, "cmdpick", "catalog.toml"),
	}
}

// NewServiceWithBus creates a catalog service that publishes load events
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Path returns the file path the service reads from
func (s *service) Path() string {
	return s.filePath
}

// Load reads the catalog from the service path, falling back to the
// built-in catalog when no file exists
func (s *service) Load() (*Config, error) {
	cfg, err := s.LoadFromPath(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if s.bus != nil {
			s.bus.Publish(eventbus.CatalogLoadedEvent{Catalog: cfg.Catalog()})
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(eventbus.CatalogLoadedEvent{Catalog: cfg.Catalog(), Path: s.filePath})
	}
	return cfg, nil
}

// LoadFromPath reads and parses a catalog file from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// DefaultConfig returns the built-in catalog used when no file exists
func DefaultConfig() *Config {
	cfg := &Config{
		Commands: []CommandSpec{
			{
				Text:        "git status",
				Description: "Show the working tree status",
				Tags:        []string{"git", "status"},
			},
			{
				Text:        "git stash",
				Description: "Stash uncommitted changes",
				Tags:        []string{"git", "stash"},
			},
			{
				Text:        "docker ps",
				Description: "List running containers",
				Tags:        []string{"docker", "containers"},
			},
			{
				Text:        "du -sh .",
				Description: "Show the size of the current directory",
				Tags:        []string{"disk", "size"},
			},
			{
				Text:        "sudo shutdown -h now",
				Description: "Shut the system down",
				Tags:        []string{"hardware", "shutdown"},
			},
		},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.MaxVisible < 0 {
		cfg.MaxVisible = 0
	}
}
