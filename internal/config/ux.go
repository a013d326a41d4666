package config

// Theme names accepted in the config file and by --theme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// UIConfig holds dashboard appearance settings.
type UIConfig struct {
	Title    string       `yaml:"title"`
	Subtitle string       `yaml:"subtitle"`
	Theme    string       `yaml:"theme"` // light, dark, auto
	Labels   LabelsConfig `yaml:"labels"`
}

// LabelsConfig names the two vote cards.
type LabelsConfig struct {
	Positive string `yaml:"positive"`
	Negative string `yaml:"negative"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Title:    "Voting Dashboard",
		Subtitle: "Real-time voting system",
		Theme:    ThemeAuto,
		Labels: LabelsConfig{
			Positive: "Positive Votes",
			Negative: "Negative Votes",
		},
	}
}
