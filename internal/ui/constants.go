package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSearch = "🔍"
	IconFolder = "📁"
	IconError  = "❌"
	IconDone   = "✔"
	IconPlay   = "▶"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	LineBreak          = "\n"
)

// Layout sizing (result rows)
const (
	RowMinWidth  float32 = 480
	RowMinHeight float32 = 32
)
