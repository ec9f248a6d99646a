package ui

import (
	"reflect"

	"github.com/atomicstack/weapon-stats/internal/browser"
	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/i18n"
	"github.com/atomicstack/weapon-stats/internal/theme"
	uistate "github.com/atomicstack/weapon-stats/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Dataset    *catalog.Dataset
	Dictionary *i18n.Dictionary
	Category   string
	Locale     i18n.Locale
	AssetsDir  string
	Width      int
	Height     int
	ShowFooter bool

	// TerminalWidth and TerminalHeight seed the layout until the first
	// window size message arrives. Width and Height take precedence.
	TerminalWidth  int
	TerminalHeight int
}

// Model implements the Bubble Tea model for the weapon browser.
type Model struct {
	machine  *browser.Machine
	snapshot browser.Snapshot
	dict     *i18n.Dictionary
	sidebar  *uistate.Sidebar
	search   uistate.Search
	images   *imageResolver
	keys     keyMap
	help     help.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	quitting    bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the UI around a fresh browser session.
func NewModel(opts Options) *Model {
	var source browser.Source
	items := []uistate.Item{}
	category := opts.Category
	if opts.Dataset != nil {
		source = opts.Dataset
		for _, c := range opts.Dataset.Categories() {
			items = append(items, uistate.Item{ID: c.ID, Label: c.Label, Icon: c.Icon})
		}
		if category == "" {
			category = opts.Dataset.DefaultCategory()
		}
	}
	dict := opts.Dictionary
	if dict == nil {
		dict = i18n.DefaultDictionary()
	}
	locale := opts.Locale
	if !locale.Valid() {
		locale = i18n.Default()
	}
	m := &Model{
		machine:    browser.New(source, category, locale),
		dict:       dict,
		sidebar:    uistate.NewSidebar(items),
		images:     newImageResolver(opts.AssetsDir),
		help:       help.New(),
		showFooter: opts.ShowFooter,
	}
	m.width, m.height = opts.TerminalWidth, opts.TerminalHeight
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.width < 0 {
		m.width = 0
	}
	if m.height < 0 {
		m.height = 0
	}
	m.help.Width = m.width
	m.applySnapshot(m.machine.Snapshot())
	m.machine.Subscribe(m.applySnapshot)

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Snapshot returns the state the view is currently rendering.
func (m *Model) Snapshot() browser.Snapshot {
	return m.snapshot
}

// applySnapshot keeps the prompt, sidebar and key help in step with the
// browser state after every transition.
func (m *Model) applySnapshot(snap browser.Snapshot) {
	localeChanged := snap.Locale() != m.snapshot.Locale() || m.keys.Quit.Keys() == nil
	m.snapshot = snap
	m.sidebar.Select(snap.Category())
	if term := snap.SearchTerm(); term != m.search.Value {
		before := m.search.CursorPos()
		m.search.Set(term, len([]rune(term)))
		if before != m.search.CursorPos() {
			m.filterCursorDirty = true
		}
	}
	if localeChanged {
		m.keys = newKeyMap(m.dict, snap.Locale())
	}
}

// T translates a canonical source string for the active locale.
func (m *Model) T(source string) string {
	return m.dict.T(source, m.snapshot.Locale())
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
