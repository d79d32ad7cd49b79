// Package mid builds the Multi-Information Display text model. The builder is
// a pure function of the vehicle snapshot and the frame's warning report; the
// renderer applies font, colour, and layout but never invents text.
package mid

import (
	"fmt"
	"strings"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
	"github.com/ORKTech/ADAS-Level-1-Simulation/vehicle"
	"github.com/ORKTech/ADAS-Level-1-Simulation/warnings"
)

// Model is the two-block text model handed to the renderer: the header block
// in the confirming colour zone and the warnings block in the warning zone.
type Model struct {
	HeaderLines  []string
	WarningLines []string
}

// WarningsHeader opens the warnings block.
const WarningsHeader = "--- WARNINGS ---"

const title = "              ADAS"

// Build composes the MID model for one frame.
func Build(s *vehicle.State, rep warnings.Report) Model {
	cfg := config.Cfg().Warnings

	header := []string{
		title,
		strings.Repeat("-", 40),
		"",
		fmt.Sprintf("Speed: %d km/h", s.SpeedKmh),
		fmt.Sprintf("Front: %d m", s.FrontDistM),
		"",
		fmt.Sprintf("TPMS Base: %d PSI", s.BasePressurePSI),
		fmt.Sprintf("T1:%d  T2:%d  T3:%d  T4:%d",
			s.TyrePSI[vehicle.FrontLeft], s.TyrePSI[vehicle.FrontRight],
			s.TyrePSI[vehicle.RearLeft], s.TyrePSI[vehicle.RearRight]),
		"",
		fmt.Sprintf("Headlights: %s | Mode: %s", onOff(s.HeadlightsOn), mode(s.NightMode)),
		fmt.Sprintf("Hands On Steering: %s", yesNo(s.HandsOnWheel)),
		"",
		fmt.Sprintf("FCW Threshold: %d m (capped at %d m)",
			warnings.FCWThresholdM(s.SpeedKmh), cfg.FCWMaxThresholdM),
		"",
		fmt.Sprintf("Obstacles near Door: %s", onOff(s.DoorObstacle)),
		fmt.Sprintf("Doors: FL:%s FR:%s RL:%s RR:%s",
			openClosed(s.DoorOpen[vehicle.FrontLeft]), openClosed(s.DoorOpen[vehicle.FrontRight]),
			openClosed(s.DoorOpen[vehicle.RearLeft]), openClosed(s.DoorOpen[vehicle.RearRight])),
		fmt.Sprintf("Indicators: %s %s", indicator(s.LeftIndicator, "LEFT"), indicator(s.RightIndicator, "RIGHT")),
	}

	warningLines := append([]string{WarningsHeader}, rep.Texts()...)

	return Model{HeaderLines: header, WarningLines: warningLines}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

func mode(night bool) string {
	if night {
		return "NIGHT"
	}
	return "DAY"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func openClosed(open bool) string {
	if open {
		return "OPEN"
	}
	return "CLOSED"
}

func indicator(on bool, label string) string {
	if on {
		return label
	}
	return "-"
}
