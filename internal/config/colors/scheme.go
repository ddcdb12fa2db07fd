// Package colors holds the terminal color presets used to render boards.
package colors

// ColorScheme defines the colors used when printing a board
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" json:"preset"`

	// Primary accent color (board heading, column titles)
	Accent string `yaml:"accent" json:"accent"`

	// Semantic colors
	Success string `yaml:"success" json:"success"` // Confirmation messages
	Warning string `yaml:"warning" json:"warning"` // Recovered storage failures
	Error   string `yaml:"error" json:"error"`     // Rejected commands

	// Text colors
	Subtle string `yaml:"subtle" json:"subtle"` // Empty columns, counts
	Normal string `yaml:"normal" json:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Success == "" {
		c.Success = preset.Success
	}
	if c.Warning == "" {
		c.Warning = preset.Warning
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
}

// MergeFrom overrides c with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Success != "" {
		c.Success = other.Success
	}
	if other.Warning != "" {
		c.Warning = other.Warning
	}
	if other.Error != "" {
		c.Error = other.Error
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
}
