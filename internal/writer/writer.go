// Package writer translates a case definition into the input file set the
// Suqaba preprocessor consumes: a parameter/boundary-condition file and a
// gmsh geometry script. Comment emission in both files follows the
// write-comments preference.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// InputWriter writes solver input files for one job directory
type InputWriter struct {
	dir           string
	writeComments bool
	status        func(string) // progress sink, may be nil
}

// NewInputWriter creates a writer targeting dir. When writeComments is true
// the generated files carry explanatory comment lines.
func NewInputWriter(dir string, writeComments bool, status func(string)) *InputWriter {
	return &InputWriter{dir: dir, writeComments: writeComments, status: status}
}

// WriteCase writes <name>.json and <name>.geo for the case and returns the
// written paths. The case must already be validated.
func (w *InputWriter) WriteCase(c *Case) ([]string, error) {
	start := time.Now()

	jsonName := c.Name + ".json"
	geoName := c.Name + ".geo"

	w.print(fmt.Sprintf("Input filename: %s\n", jsonName))
	w.print(fmt.Sprintf("Writing Suqaba input files to: %s\n", w.dir))

	jsonPath := filepath.Join(w.dir, jsonName)
	if err := os.WriteFile(jsonPath, []byte(w.renderParameters(c)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", jsonName, err)
	}

	geoPath := filepath.Join(w.dir, geoName)
	if err := os.WriteFile(geoPath, []byte(w.renderGeo(c)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", geoName, err)
	}

	w.print(fmt.Sprintf("Writing time input file: %.2f seconds\n\n", time.Since(start).Seconds()))
	return []string{jsonPath, geoPath}, nil
}

// renderParameters builds the solver parameter file. The layout mirrors what
// the solver parses, so it is assembled literally rather than marshalled.
func (w *InputWriter) renderParameters(c *Case) string {
	var b strings.Builder

	b.WriteString("{\n")

	w.comment(&b, "    // Solver parameters: thread count, target error, refinement budget\n")
	fmt.Fprintf(&b, "    \"OMP\"           : %d,\n", c.Threads)
	fmt.Fprintf(&b, "    \"ERROR\"         : %s,\n", formatFloat(c.ErrorThreshold/100))
	fmt.Fprintf(&b, "    \"REFI_STEPS\"    : %d,\n", c.RefinementSteps)
	fmt.Fprintf(&b, "    \"JOBNAME\"       : %q,\n", c.Name)

	w.comment(&b, "    // Unique 3D physical group: linear-elastic material and volume load\n")
	b.WriteString("    \"PHYSICAL_GROUPS_3D\": [\n")
	b.WriteString("        {\n")
	fmt.Fprintf(&b, "           \"name\"   : %q,\n", c.BodyLabel)
	fmt.Fprintf(&b, "           \"young_modulus\": %s,\n", formatFloat(c.Material.YoungModulus))
	fmt.Fprintf(&b, "           \"poisson_ratio\": %s,\n", formatFloat(c.Material.PoissonRatio))
	b.WriteString("           \"load_fx\": {\n")
	fmt.Fprintf(&b, "                \"x\": \"%s\",\n", formatFloat(c.VolumeLoad.X))
	fmt.Fprintf(&b, "                \"y\": \"%s\",\n", formatFloat(c.VolumeLoad.Y))
	fmt.Fprintf(&b, "                \"z\": \"%s\"\n", formatFloat(c.VolumeLoad.Z))
	b.WriteString("           }\n")
	b.WriteString("        }\n")
	b.WriteString("    ],\n")

	if len(c.Fixed) > 0 {
		w.comment(&b, "    // Dirichlet groups: faces held fixed\n")
		b.WriteString("    \"DIRICHLET\": [\n")
		labels := make([]string, 0, len(c.Fixed))
		for _, fixed := range c.Fixed {
			labels = append(labels, fmt.Sprintf("        %q", fixed.Label))
		}
		b.WriteString(strings.Join(labels, ",\n"))
		b.WriteString("\n    ],\n")
	}

	w.comment(&b, "    // Neumann groups: surface tractions and pressures\n")
	b.WriteString("    \"NEUMANN\": [\n")
	loads := make([]string, 0, len(c.Loads))
	for _, load := range c.Loads {
		loads = append(loads, renderLoad(load))
	}
	b.WriteString(strings.Join(loads, ",\n"))
	b.WriteString("\n    ]\n")

	b.WriteString("}\n\n")
	return b.String()
}

// renderLoad formats one Neumann entry: a pressure or a traction vector
func renderLoad(load Load) string {
	var b strings.Builder
	b.WriteString("        {\n")
	fmt.Fprintf(&b, "            \"name\"   : %q,\n", load.Label)
	b.WriteString("            \"load_fx\": {\n")
	if load.IsPressure {
		fmt.Fprintf(&b, "                \"p\": \"%s\"\n", formatFloat(load.Pressure))
	} else {
		fmt.Fprintf(&b, "                \"x\": \"%s\",\n", formatFloat(load.Traction.X))
		fmt.Fprintf(&b, "                \"y\": \"%s\",\n", formatFloat(load.Traction.Y))
		fmt.Fprintf(&b, "                \"z\": \"%s\"\n", formatFloat(load.Traction.Z))
	}
	b.WriteString("            }\n")
	b.WriteString("        }")
	return b.String()
}

// renderGeo builds the gmsh geometry script naming the physical groups the
// parameter file refers to.
func (w *InputWriter) renderGeo(c *Case) string {
	var b strings.Builder

	w.comment(&b, "// Import the body geometry\n")
	fmt.Fprintf(&b, "Merge %q;\n", c.GeometryFile)

	w.comment(&b, "// Volume group carrying the material\n")
	fmt.Fprintf(&b, "Physical Volume(%q) = {%s};\n", c.BodyLabel, joinTags(c.SolidTags))

	if len(c.Fixed) > 0 || len(c.Loads) > 0 {
		w.comment(&b, "// Surface groups referenced by the boundary conditions\n")
	}
	for _, fixed := range c.Fixed {
		fmt.Fprintf(&b, "Physical Surface(%q) = {%s};\n", fixed.Label, joinTags(fixed.FaceTags))
	}
	for _, load := range c.Loads {
		fmt.Fprintf(&b, "Physical Surface(%q) = {%s};\n", load.Label, joinTags(load.FaceTags))
	}

	b.WriteString("\n")
	return b.String()
}

// comment appends line only when comment emission is enabled
func (w *InputWriter) comment(b *strings.Builder, line string) {
	if w.writeComments {
		b.WriteString(line)
	}
}

// print forwards a progress line to the status sink
func (w *InputWriter) print(line string) {
	if w.status != nil {
		w.status(line)
	}
}

// formatFloat renders a float the shortest way that round-trips
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// joinTags renders face/solid tags as a comma-separated list
func joinTags(tags []int) string {
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = strconv.Itoa(tag)
	}
	return strings.Join(parts, ", ")
}
