package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
)

// blinkPeriodMs is the indicator blink cadence (500 ms on, 500 ms off).
const blinkPeriodMs = 500

// ControlsPanel renders the operator input surface: sliders for the analog
// inputs and buttons for the toggles, lane change, and doors. Draw compares
// widget values against the current snapshot and returns typed events for
// anything the operator changed this frame.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates the panel at the given position.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders all widgets and returns the input events they produced.
func (p *ControlsPanel) Draw(s *vehicle.State, now int64) []vehicle.Event {
	cfg := config.Cfg().Vehicle
	th := p.renderer.Theme
	var events []vehicle.Event

	p.renderer.DrawPanel(p.x, p.y, p.width, 700)

	sliderX := p.x + th.Padding
	sliderW := int32(260)
	y := p.renderer.DrawSectionHeader(sliderX, p.y+th.Padding, "Vehicle Inputs")

	// Analog inputs
	var v int
	v, y = p.slider(sliderX, y, sliderW, "Speed (km/h)", s.SpeedKmh, 0, cfg.SpeedMaxKmh)
	if v != s.SpeedKmh {
		events = append(events, vehicle.Event{Type: vehicle.EventSetSpeed, Value: v})
	}
	v, y = p.slider(sliderX, y, sliderW, "Front Distance (m)", s.FrontDistM, 0, cfg.FrontDistMaxM)
	if v != s.FrontDistM {
		events = append(events, vehicle.Event{Type: vehicle.EventSetFrontDistance, Value: v})
	}
	v, y = p.slider(sliderX, y, sliderW, "Base Tyre Pressure (PSI)", s.BasePressurePSI, cfg.PressureMinPSI, cfg.PressureMaxPSI)
	if v != s.BasePressurePSI {
		events = append(events, vehicle.Event{Type: vehicle.EventSetBasePressure, Value: v})
	}
	for c := vehicle.FrontLeft; c < vehicle.NumCorners; c++ {
		label := fmt.Sprintf("Tyre %d (%s)", int(c)+1, c)
		v, y = p.slider(sliderX, y, sliderW, label, s.TyrePSI[c], cfg.PressureMinPSI, cfg.PressureMaxPSI)
		if v != s.TyrePSI[c] {
			events = append(events, vehicle.Event{Type: vehicle.EventSetTyrePressure, Value: v, Corner: c})
		}
	}

	// Door buttons, 2x2 grid under the tyre sliders
	y = p.renderer.DrawSectionHeader(sliderX, y+6, "Doors")
	doorLabels := [vehicle.NumCorners]string{"Front Left", "Front Right", "Rear Left", "Rear Right"}
	for c := vehicle.FrontLeft; c < vehicle.NumCorners; c++ {
		col := int32(int(c) % 2)
		row := int32(int(c) / 2)
		bx := sliderX + col*(th.ButtonW+10)
		by := y + row*(th.ButtonH+10)
		if gui.Button(rl.Rectangle{X: float32(bx), Y: float32(by), Width: float32(th.ButtonW), Height: float32(th.ButtonH)}, doorLabels[c]) {
			events = append(events, vehicle.Event{Type: vehicle.EventRequestDoorToggle, Corner: c})
		}
		p.statusDot(bx+th.ButtonW-12, by+4, s.DoorOpen[c])
	}

	// Toggle column on the right side of the panel
	bx := p.x + p.width - th.ButtonW - th.Padding
	by := p.y + th.Padding + th.LineHeight

	blinkOn := (now/blinkPeriodMs)%2 == 0

	type toggle struct {
		label string
		on    bool
		typ   vehicle.EventType
		blink bool
	}
	toggles := []toggle{
		{"Headlights", s.HeadlightsOn, vehicle.EventToggleHeadlights, false},
		{"Day / Night", s.NightMode, vehicle.EventToggleNightMode, false},
		{"Hands On Steering", s.HandsOnWheel, vehicle.EventToggleHands, false},
		{"Left Indicator", s.LeftIndicator, vehicle.EventToggleLeftIndicator, true},
		{"Right Indicator", s.RightIndicator, vehicle.EventToggleRightIndicator, true},
		{"Lane Change", false, vehicle.EventRequestLaneChange, false},
		{"Door Obstacle", s.DoorObstacle, vehicle.EventToggleObstacle, false},
	}

	for _, t := range toggles {
		if gui.Button(rl.Rectangle{X: float32(bx), Y: float32(by), Width: float32(th.ButtonW), Height: float32(th.ButtonH)}, t.label) {
			events = append(events, vehicle.Event{Type: t.typ})
		}
		if t.blink {
			// Latched indicators blink at the standard cadence; presentation only
			if t.on && blinkOn {
				rl.DrawRectangle(bx-16, by+th.ButtonH/2-5, 10, 10, th.IndicatorOn)
			}
		} else if t.typ != vehicle.EventRequestLaneChange {
			p.statusDot(bx+th.ButtonW-12, by+4, t.on)
		}
		by += th.ButtonH + 10
	}

	return events
}

// slider draws one labeled integer slider and returns its rounded value and
// the next row's Y position.
func (p *ControlsPanel) slider(x, y, width int32, label string, value, minVal, maxVal int) (int, int32) {
	th := p.renderer.Theme

	rl.DrawText(label, x, y, th.FontSize, th.LabelColor)
	y += 18

	newVal := gui.SliderBar(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(th.SliderH)},
		fmt.Sprintf("%d", minVal), fmt.Sprintf("%d", maxVal),
		float32(value), float32(minVal), float32(maxVal),
	)
	rl.DrawText(fmt.Sprintf("%d", value), x+width+34, y+2, th.HeaderFont, th.ValueColor)

	return int(math.Round(float64(newVal))), y + th.SliderH + 12
}

// statusDot draws the small on/off square shown on stateful buttons.
func (p *ControlsPanel) statusDot(x, y int32, on bool) {
	color := p.renderer.Theme.ToggleOff
	if on {
		color = p.renderer.Theme.ToggleOn
	}
	rl.DrawRectangle(x, y, 8, 8, color)
}
