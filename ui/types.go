// Package ui provides the operator control panel (sliders and buttons that
// emit typed input events) and the MID panel renderer. Widgets never mutate
// vehicle state; they only report what the operator changed.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Background    rl.Color
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	ToggleOff     rl.Color
	ToggleOn      rl.Color
	IndicatorOn   rl.Color

	// MID colour zones: header in a confirming green, warnings in orange-red
	MIDBg      rl.Color
	MIDHeader  rl.Color
	MIDWarning rl.Color

	Padding    int32
	LineHeight int32
	FontSize   int32
	HeaderFont int32
	SliderH    int32
	ButtonW    int32
	ButtonH    int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    rl.Color{R: 32, G: 36, B: 40, A: 255},
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		ToggleOff:     rl.Color{R: 80, G: 80, B: 80, A: 255},
		ToggleOn:      rl.Color{R: 100, G: 200, B: 100, A: 255},
		IndicatorOn:   rl.Color{R: 120, G: 220, B: 120, A: 255},

		MIDBg:      rl.Color{R: 10, G: 10, B: 10, A: 255},
		MIDHeader:  rl.Color{R: 0, G: 255, B: 0, A: 255},
		MIDWarning: rl.Color{R: 255, G: 80, B: 0, A: 255},

		Padding:    10,
		LineHeight: 22,
		FontSize:   14,
		HeaderFont: 16,
		SliderH:    20,
		ButtonW:    140,
		ButtonH:    36,
	}
}

// Renderer handles shared panel drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFont, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}
