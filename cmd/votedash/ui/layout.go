package ui

// Layout constants for consistent spacing and dimensions
const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// Content never grows past this, however wide the terminal.
	MaxContentWidth = 76

	// App padding on each side
	AppPaddingH = 2

	// Card border plus horizontal padding on each side
	CardChrome = 2 + 4

	// Gap between the two vote cards
	CardGap = 2

	// Below this content width the vote cards stack vertically
	CompactModeWidth = 50
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	IsCompact      bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int) LayoutConfig {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	l := LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
	}
	l.IsCompact = l.ContentWidth() < CompactModeWidth
	return l
}

// ContentWidth returns the usable width inside the app padding.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - AppPaddingH*2
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 0 {
		return 0
	}
	return w
}

// CardWidth returns the outer width of one vote card.
func (l LayoutConfig) CardWidth() int {
	if l.IsCompact {
		return l.ContentWidth()
	}
	return (l.ContentWidth() - CardGap) / 2
}

// BarWidth returns the width of the proportional bar inside the total card.
func (l LayoutConfig) BarWidth() int {
	w := l.ContentWidth() - CardChrome
	if w < 0 {
		return 0
	}
	return w
}
