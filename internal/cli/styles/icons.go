package styles

const (
	cursorEmpty    = "  "
	cursorSelected = "\u25b8 " // ▸ Black right-pointing small triangle

	iconCheck   = "✓"
	iconCross   = "✗"
	iconUnbound = "·"
)
