package tables

import (
	"github.com/tsawler/pdflayout/model"
)

// Detector is the interface for table detection algorithms.
type Detector interface {
	// Detect finds tables on a page. Warnings report non-fatal oddities
	// (a page with no rulings, rulings that never cross, crossings that
	// close no cell) that explain an empty or partial result.
	Detect(page *model.Page) ([]*model.Table, []Warning, error)

	// Name returns the detector name.
	Name() string

	// Configure sets detector parameters.
	Configure(config Config) error
}

// Config holds detector configuration.
type Config struct {
	// Scale applied to the page's mode glyph width/height below which a
	// filled rectangle counts as a thin bar and reduces to its centerline.
	ThinBarScale float64

	// How far each extracted ruling is extended at both ends, closing
	// small rendering gaps at would-be crossings.
	ExtensionLength float64

	// Tolerance for treating two rulings as collinear during the merge
	// phase (points).
	AlignmentTolerance float64

	// Maximum distance between two cell corners for the cells to belong
	// to the same table (points).
	CornerDistanceThreshold float64

	// Minimum cells for a valid candidate table.
	MinCells int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		ThinBarScale:            0.7,
		ExtensionLength:         2.0,
		AlignmentTolerance:      0.5,
		CornerDistanceThreshold: 1.0,
		MinCells:                1,
	}
}

// Warning describes a non-fatal issue found during detection.
type Warning struct {
	Detector string
	Message  string
}

func (w Warning) String() string {
	return w.Detector + ": " + w.Message
}

// DetectorRegistry holds registered detectors.
type DetectorRegistry struct {
	detectors map[string]Detector
}

// NewRegistry creates a new detector registry.
func NewRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]Detector),
	}
}

// Register registers a detector.
func (r *DetectorRegistry) Register(detector Detector) {
	r.detectors[detector.Name()] = detector
}

// Get retrieves a detector by name, or nil if not registered.
func (r *DetectorRegistry) Get(name string) Detector {
	return r.detectors[name]
}

// Names returns the registered detector names.
func (r *DetectorRegistry) Names() []string {
	names := make([]string, 0, len(r.detectors))
	for name := range r.detectors {
		names = append(names, name)
	}
	return names
}

var globalRegistry = NewRegistry()

// RegisterDetector registers a detector globally.
func RegisterDetector(detector Detector) {
	globalRegistry.Register(detector)
}

// GetDetector retrieves a globally registered detector by name.
func GetDetector(name string) Detector {
	return globalRegistry.Get(name)
}

func init() {
	RegisterDetector(NewRulingsDetector())
}
