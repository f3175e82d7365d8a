package theme

// thRegisterBuiltins installs the built-in palettes.
func thRegisterBuiltins() {
	thRegister(Theme{
		Name:      "default",
		Logo:      []string{"#7aa2f7", "#7dcfff", "#bb9af7"},
		Key:       "#7aa2f7",
		Value:     "#c0caf5",
		Separator: "#565f89",
		Title:     "#bb9af7",
	})
	thRegister(Theme{
		Name:      "gruvbox",
		Logo:      []string{"#fb4934", "#fabd2f", "#b8bb26"},
		Key:       "#fabd2f",
		Value:     "#ebdbb2",
		Separator: "#928374",
		Title:     "#fb4934",
	})
	thRegister(Theme{
		Name:      "nord",
		Logo:      []string{"#88c0d0", "#81a1c1", "#5e81ac"},
		Key:       "#88c0d0",
		Value:     "#eceff4",
		Separator: "#4c566a",
		Title:     "#81a1c1",
	})
	thRegister(Theme{
		Name:      "mono",
		Logo:      []string{"#ffffff"},
		Key:       "#ffffff",
		Value:     "#ffffff",
		Separator: "#ffffff",
		Title:     "#ffffff",
	})
}
