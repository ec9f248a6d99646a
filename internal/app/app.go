package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/i18n"
	"github.com/atomicstack/weapon-stats/internal/logging/events"
	"github.com/atomicstack/weapon-stats/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Category       string
	Locale         string
	DataPath       string
	DictionaryPath string
	AssetsDir      string
	Width          int
	Height         int
	ShowFooter     bool

	// TerminalWidth and TerminalHeight size the first frame until the
	// program reports the real window size. Zero means unknown.
	TerminalWidth  int
	TerminalHeight int
}

// Session is everything loaded before the program starts.
type Session struct {
	Source     string
	Dataset    *catalog.Dataset
	Dictionary *i18n.Dictionary
	Category   string
	Locale     i18n.Locale
}

// Prepare loads the dataset and dictionary and resolves the starting category
// and locale. A category that matches nothing is kept verbatim; the browser
// shows it as an empty list.
func Prepare(cfg Config) (Session, error) {
	dataset, source, err := loadDataset(cfg.DataPath)
	if err != nil {
		return Session{}, fmt.Errorf("load dataset: %w", err)
	}
	events.Data.Loaded(source, len(dataset.Categories()), dataset.Count())

	dictionary, err := loadDictionary(cfg.DictionaryPath)
	if err != nil {
		return Session{}, fmt.Errorf("load dictionary: %w", err)
	}

	locale, err := i18n.ParseLocale(cfg.Locale)
	if err != nil {
		return Session{}, err
	}
	events.Locale.Resolved(cfg.Locale, locale.String())

	category := dataset.DefaultCategory()
	if cfg.Category != "" {
		category = cfg.Category
		if resolved, ok := dataset.ResolveCategory(cfg.Category); ok {
			category = resolved.ID
		}
	}
	return Session{Source: source, Dataset: dataset, Dictionary: dictionary, Category: category, Locale: locale}, nil
}

// Run executes the Bubble Tea program for a prepared session.
func Run(cfg Config, session Session) error {
	program := tea.NewProgram(NewModel(cfg, session), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel builds the UI model for session.
func NewModel(cfg Config, session Session) *ui.Model {
	return ui.NewModel(ui.Options{
		Dataset:        session.Dataset,
		Dictionary:     session.Dictionary,
		Category:       session.Category,
		Locale:         session.Locale,
		AssetsDir:      cfg.AssetsDir,
		Width:          cfg.Width,
		Height:         cfg.Height,
		TerminalWidth:  cfg.TerminalWidth,
		TerminalHeight: cfg.TerminalHeight,
		ShowFooter:     cfg.ShowFooter,
	})
}

func loadDataset(path string) (*catalog.Dataset, string, error) {
	if path == "" {
		d, err := catalog.Default()
		return d, catalog.DefaultSource, err
	}
	d, err := catalog.LoadFile(path)
	return d, path, err
}

func loadDictionary(path string) (*i18n.Dictionary, error) {
	base := i18n.DefaultDictionary()
	if path == "" {
		events.Data.DictionaryLoaded(catalog.DefaultSource, base.Len())
		return base, nil
	}
	overlay, err := i18n.LoadDictionaryFile(path)
	if err != nil {
		return nil, err
	}
	merged, err := base.Merge(overlay)
	if err != nil {
		return nil, err
	}
	events.Data.DictionaryLoaded(path, merged.Len())
	return merged, nil
}
