package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:  "monochrome",
		Accent:  "#FFFFFF",
		Success: "#FFFFFF",
		Warning: "#FFFFFF",
		Error:   "#FFFFFF",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
	}
}
