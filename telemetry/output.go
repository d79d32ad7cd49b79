package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/ORKTech/ADAS-Level-1-Simulation/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	frameFile *os.File
	statsFile *os.File

	frameHeaderWritten bool
	statsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled); all methods are
// safe on a nil receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.frameFile = f

	f, err = os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		om.frameFile.Close()
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrame appends a frame record to frames.csv.
func (om *OutputManager) WriteFrame(rec FrameRecord) error {
	if om == nil {
		return nil
	}

	records := []FrameRecord{rec}

	if !om.frameHeaderWritten {
		if err := gocsv.Marshal(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame record: %w", err)
		}
		om.frameHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.frameFile); err != nil {
			return fmt.Errorf("writing frame record: %w", err)
		}
	}

	return nil
}

// WriteStats appends a window stats record to stats.csv.
func (om *OutputManager) WriteStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.statsHeaderWritten {
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		om.statsHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.frameFile != nil {
		if err := om.frameFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.statsFile != nil {
		if err := om.statsFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
