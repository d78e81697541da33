package theme

// NewCatppuccinMocha creates the dark palette.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue

		BgBase:     "#1e1e2e",
		BgMantle:   "#181825",
		BgCrust:    "#11111b",
		BgSurface0: "#313244",
		BgSurface1: "#45475a",

		FgMuted:  "#6c7086",
		FgSubtle: "#a6adc8",
		FgBase:   "#cdd6f4",
		FgBright: "#f5e0dc",

		Success: "#a6e3a1",
		Error:   "#f38ba8",
	}
}

// NewCatppuccinLatte creates the light palette.
func NewCatppuccinLatte() *Theme {
	return &Theme{
		Name:   "catppuccin-latte",
		IsDark: false,

		Primary:   "#8839ef", // Mauve
		Secondary: "#1e66f5", // Blue

		BgBase:     "#eff1f5",
		BgMantle:   "#e6e9ef",
		BgCrust:    "#dce0e8",
		BgSurface0: "#ccd0da",
		BgSurface1: "#bcc0cc",

		FgMuted:  "#9ca0b0",
		FgSubtle: "#6c6f85",
		FgBase:   "#4c4f69",
		FgBright: "#dc8a78",

		Success: "#40a02b",
		Error:   "#d20f39",
	}
}
