package colors

// Default returns the default color scheme (purple accent)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:  "default",
		Accent:  "#874BFD",
		Success: "#5FD75F",
		Warning: "#FFD700",
		Error:   "#FF0000",
		Subtle:  "#585858",
		Normal:  "#D0D0D0",
	}
}
