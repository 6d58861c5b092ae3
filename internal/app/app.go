// Package app contains the root bubbletea model tying the country list, the
// index bar and the scrub gesture together.
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/atlas/internal/config"
	"github.com/llehouerou/atlas/internal/directory"
	"github.com/llehouerou/atlas/internal/gesture"
	"github.com/llehouerou/atlas/internal/keymap"
	"github.com/llehouerou/atlas/internal/scrub"
	"github.com/llehouerou/atlas/internal/section"
	"github.com/llehouerou/atlas/internal/ui/countrylist"
	"github.com/llehouerou/atlas/internal/ui/indexbar"
	"github.com/llehouerou/atlas/internal/ui/layout"
	"github.com/llehouerou/atlas/internal/ui/textinput"
)

// Title is shown at the left of the header bar.
const Title = "atlas"

// Model is the root application model containing all state.
type Model struct {
	Config    *config.Config
	Directory directory.Directory // full list
	Shown     directory.Directory // after the active filter
	Logger    zerolog.Logger

	List    countrylist.Model
	Bar     indexbar.Model
	Mapper  *scrub.Mapper
	Tracker gesture.Tracker

	Keys   *keymap.Resolver
	Help   help.Model
	Filter textinput.Model

	FilterText string // active filter pattern, "" for none

	ShowHelp       bool
	PendingKeys    string // "'" while waiting for the section letter
	DragByKey      bool   // the active drag was started from the keyboard
	KeyDragVersion int
	StatusMsg      string
	StatusIsError  bool
	Width          int
	Height         int
	ListRect       layout.Rect
	BarRect        layout.Rect
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates the application model. It fails when the scrub settings in
// cfg are invalid.
func New(cfg *config.Config, dir directory.Directory, logger zerolog.Logger) (Model, error) {
	sections, mapper, err := build(cfg, dir)
	if err != nil {
		return Model{}, err
	}

	list := countrylist.New(cfg.List.ScrollMargin)
	list.SetSections(sections)
	list.SetFocused(true)

	bar := indexbar.New()
	bar.SetSections(section.Keys(sections), mapper)

	logger.Debug().
		Int("countries", dir.Len()).
		Int("sections", len(sections)).
		Str("curve", string(mapper.Config().Curve)).
		Msg("directory ready")

	return Model{
		Config:    cfg,
		Directory: dir,
		Shown:     dir,
		Logger:    logger,
		List:      list,
		Bar:       bar,
		Mapper:    mapper,
		Tracker:   gesture.New(mapper),
		Keys:      keymap.NewResolver(keymap.Bindings),
		Help:      help.New(),
		Filter:    textinput.New(),
	}, nil
}

// build groups the directory and creates the mapper for its sections.
func build(cfg *config.Config, dir directory.Directory) ([]section.Section[directory.Country], *scrub.Mapper, error) {
	scfg, err := cfg.ScrubSettings()
	if err != nil {
		return nil, nil, err
	}
	sections := dir.Sections(cfg.KeyFunc())
	mapper, err := scrub.New(scfg, len(sections))
	if err != nil {
		return nil, nil, err
	}
	return sections, mapper, nil
}

// setSections swaps in new sections and their mapper, keeping the list on
// the section with the same key when it still exists.
func (m *Model) setSections(sections []section.Section[directory.Country], mapper *scrub.Mapper) {
	currentKey := m.keyAt(m.List.CurrentSection())

	m.Mapper = mapper
	m.Tracker.SetMapper(mapper)
	m.DragByKey = false
	m.List.SetSections(sections)
	m.Bar.SetSections(section.Keys(sections), mapper)
	m.layout()

	if i, ok := m.List.Index().Lookup(currentKey); ok && m.List.IsSized() {
		m.scrollTo(i)
	}
	m.syncHandle()
}
