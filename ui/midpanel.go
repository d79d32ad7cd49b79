package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ORKTech/ADAS-Level-1-Simulation/mid"
)

// MIDPanel renders the Multi-Information Display text model: the header block
// in the confirming colour zone, the warnings block below it in the warning
// colour zone. It draws exactly the lines of the model.
type MIDPanel struct {
	renderer      *Renderer
	x, y          int32
	width, height int32
}

// NewMIDPanel creates the display panel at the given position.
func NewMIDPanel(x, y, width, height int32) *MIDPanel {
	return &MIDPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		height:   height,
	}
}

// Draw paints the MID model.
func (m *MIDPanel) Draw(model mid.Model) {
	th := m.renderer.Theme

	rl.DrawRectangle(m.x, m.y, m.width, m.height, th.MIDBg)
	rl.DrawRectangleLines(m.x, m.y, m.width, m.height, th.PanelBorder)

	x := m.x + th.Padding
	y := m.y + th.Padding

	for _, line := range model.HeaderLines {
		rl.DrawText(line, x, y, th.HeaderFont, th.MIDHeader)
		y += th.LineHeight
	}

	y += th.LineHeight / 2

	for _, line := range model.WarningLines {
		rl.DrawText(line, x, y, th.HeaderFont, th.MIDWarning)
		y += th.LineHeight
	}
}
