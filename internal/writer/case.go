package writer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Validation errors for case definitions
var (
	ErrNoName            = errors.New("case has no name")
	ErrNoGeometry        = errors.New("case references no geometry file")
	ErrNoMaterial        = errors.New("no material was selected")
	ErrNoFixedConstraint = errors.New("missing a fixed boundary condition; at least one is required")
)

// Vector is a cartesian triple used for volume loads and tractions
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Material holds the linear-elastic properties of the single body material
type Material struct {
	Name         string  `json:"name"`
	YoungModulus float64 `json:"young_modulus"` // MPa
	PoissonRatio float64 `json:"poisson_ratio"`
	Density      float64 `json:"density"` // t/mm^3
}

// Constraint names the geometry faces a fixed boundary condition applies to
type Constraint struct {
	Label    string `json:"label"`
	FaceTags []int  `json:"face_tags"`
}

// Load is a Neumann boundary condition: either a traction vector or a
// scalar pressure over the named faces.
type Load struct {
	Label      string  `json:"label"`
	FaceTags   []int   `json:"face_tags"`
	Traction   Vector  `json:"traction"` // N/mm^2, ignored for pressure loads
	Pressure   float64 `json:"pressure"` // MPa, used when IsPressure
	IsPressure bool    `json:"is_pressure"`
}

// Case is one complete analysis definition, the unit the input writer
// translates into solver files.
type Case struct {
	Name         string `json:"name"`
	BodyLabel    string `json:"body_label"`
	GeometryFile string `json:"geometry_file"` // .brep/.step next to the case file

	SolidTags  []int    `json:"solid_tags"`
	Material   Material `json:"material"`
	VolumeLoad Vector   `json:"volume_load"` // gravity-style body force, N/mm^3

	Fixed []Constraint `json:"fixed"`
	Loads []Load       `json:"loads"`

	ErrorThreshold  float64 `json:"error_threshold"` // percent
	Threads         int     `json:"threads"`
	RefinementSteps int     `json:"refinement_steps"`
}

// Solver defaults applied when a case definition leaves them out
const (
	DefaultThreads         = 4
	DefaultRefinementSteps = 7
	DefaultErrorThreshold  = 20.0
)

// Validate checks the case for the conditions the cluster would reject
func (c *Case) Validate() error {
	if c.Name == "" {
		return ErrNoName
	}
	if c.GeometryFile == "" {
		return ErrNoGeometry
	}
	if c.Material.YoungModulus <= 0 {
		return ErrNoMaterial
	}
	if len(c.Fixed) == 0 {
		return ErrNoFixedConstraint
	}
	return nil
}

// applyDefaults fills solver parameters a case definition may omit
func (c *Case) applyDefaults() {
	if c.Threads <= 0 {
		c.Threads = DefaultThreads
	}
	if c.RefinementSteps <= 0 {
		c.RefinementSteps = DefaultRefinementSteps
	}
	if c.ErrorThreshold <= 0 {
		c.ErrorThreshold = DefaultErrorThreshold
	}
	if len(c.SolidTags) == 0 {
		c.SolidTags = []int{1}
	}
	if c.BodyLabel == "" {
		c.BodyLabel = c.Name
	}
}

// LoadCase reads a case definition file and validates it
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case definition: %w", err)
	}

	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse case definition %s: %w", path, err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}
