package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/config"
	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
	"github.com/alexisbeaulieu97/borderkit/internal/logger"
	"github.com/alexisbeaulieu97/borderkit/internal/surface"
)

// DefaultOutPath is where the snippet is written when no path is configured.
const DefaultOutPath = "borderkit.html"

// Options configures a new editor.
type Options struct {
	Catalog   *config.Catalog
	Preset    string
	Loader    *imagesource.Loader
	ImagePath string
	DarkMode  bool
	OutPath   string
	Logger    *logger.Logger
}

// session holds the editor state shared by every copy of the Model.
type session struct {
	ctrl    *border.Controller
	doc     *surface.Document
	picker  *Picker
	catalog *config.Catalog
	loader  *imagesource.Loader
	log     *logger.Logger
	image   *imagesource.Image
	preset  string
	outPath string
	dark    bool
	snippet viewport.Model
}

// Model is the Bubbletea model of the interactive editor.
type Model struct {
	s *session

	keys    keyMap
	help    help.Model
	input   textinput.Model
	spinner spinner.Model

	focus    int
	editing  bool
	loading  bool
	pending  string
	status   string
	statusOK bool
	showHelp bool

	width  int
	height int
}

// NewModel builds the editor, applies the initial preset and synchronises
// the surface. The colour picker is themed after start-up by Init.
func NewModel(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = config.NewCatalog(nil)
	}
	loader := opts.Loader
	if loader == nil {
		loader = imagesource.NewLoader()
	}
	outPath := opts.OutPath
	if outPath == "" {
		outPath = DefaultOutPath
	}

	preset := border.DefaultPreset()
	if opts.Preset != "" {
		p, ok := catalog.Lookup(opts.Preset)
		if !ok {
			return Model{}, &UnknownPresetError{Name: opts.Preset}
		}
		preset = p
	}

	s := &session{
		doc:     surface.NewStandardDocument(),
		picker:  NewPicker(),
		catalog: catalog,
		loader:  loader,
		log:     log,
		preset:  preset.Name,
		outPath: outPath,
		dark:    opts.DarkMode,
		snippet: viewport.New(80, 12),
	}
	s.ctrl = border.NewController(border.NewState(), s.doc,
		border.WithThemeApplier(s.picker),
		border.WithLogger(log),
		border.WithDarkMode(opts.DarkMode),
		border.WithSnippetSink(func(snippet string) { s.snippet.SetContent(snippet) }),
	)
	s.ctrl.Sync()
	if preset.Name != border.DefaultPresetName {
		s.ctrl.ApplyPreset(preset)
	}

	input := textinput.New()
	input.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		s:       s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   input,
		spinner: sp,
		pending: opts.ImagePath,
		width:   100,
		height:  40,
	}
	return m, nil
}

// Init schedules the deferred picker theming and any initial image load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{themeTickCmd()}
	if m.pending != "" {
		cmds = append(cmds, loadImageCmd(m.s.loader, m.pending), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Controller exposes the editor's controller.
func (m Model) Controller() *border.Controller {
	return m.s.ctrl
}

// Document exposes the surface the editor renders.
func (m Model) Document() *surface.Document {
	return m.s.doc
}

// Picker exposes the colour picker.
func (m Model) Picker() *Picker {
	return m.s.picker
}

// Preset names the preset last applied.
func (m Model) Preset() string {
	return m.s.preset
}

// Status returns the status line and whether it reports success.
func (m Model) Status() (string, bool) {
	return m.status, m.statusOK
}

// Focused returns the focused control's element id.
func (m Model) Focused() border.ElementID {
	return controls[m.focus].id
}

// Editing reports whether a text field is open.
func (m Model) Editing() bool {
	return m.editing
}

// UnknownPresetError is returned when the requested preset does not exist.
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return "unknown preset: " + e.Name
}
