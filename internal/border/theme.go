package border

// ThemeMode is the colour picker's light or dark appearance.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ThemeField is one colour input the picker attaches to.
type ThemeField struct {
	Element ElementID
	Alpha   bool
}

// ThemeConfig is handed to the picker collaborator whenever it is (re)themed.
type ThemeConfig struct {
	Theme    string
	Mode     ThemeMode
	Format   string
	Swatches []string
	Fields   []ThemeField
}

// ThemeApplier is the optional colour-picker collaborator. Implementations
// must tolerate being configured any number of times.
type ThemeApplier interface {
	ApplyTheme(cfg ThemeConfig)
}

var colorFields = []ThemeField{
	{Element: SolidColorInput, Alpha: false},
	{Element: GradientStartInput, Alpha: true},
	{Element: GradientEndInput, Alpha: true},
}

// NewThemeConfig builds the picker configuration for the given appearance.
func NewThemeConfig(dark bool) ThemeConfig {
	mode := ThemeLight
	if dark {
		mode = ThemeDark
	}
	fields := make([]ThemeField, len(colorFields))
	copy(fields, colorFields)
	return ThemeConfig{
		Theme:    "default",
		Mode:     mode,
		Format:   "hex",
		Swatches: []string{},
		Fields:   fields,
	}
}
