package app

// WindowTitle names the viewer window after the strategy shown.
func WindowTitle(strategy string) string {
	if strategy == "" {
		return "mad-maze"
	}
	return "mad-maze: " + strategy
}
