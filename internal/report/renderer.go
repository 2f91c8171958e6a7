// Package report renders the framework comparison as formatted text:
// per-category listings, fixed-width tables, the scenario guide, and
// the ecosystem layer diagram. Output is deterministic; rendering the
// same catalog twice produces byte-identical text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/roguetrainer/qec-frameworks/internal/catalog"
)

const (
	defaultWidth = 100

	// Column layout. Values longer than their column are padded, not
	// truncated or wrapped; an over-long value extends its own row.
	nameColWidth    = 15
	featureColWidth = 30
	valueColWidth   = 40

	scenarioRuleWidth = 47
)

// Renderer writes report sections to Out. The zero value is not
// usable; set Out. Width controls rule and banner width only, never
// data columns. Color styles chrome (banners, headings, rules) and
// leaves data lines plain.
type Renderer struct {
	Out   io.Writer
	Width int
	Color bool
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return defaultWidth
	}
	return r.Width
}

// errWriter latches the first write failure so each operation can
// write linearly and report the error once at the end.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) line(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s+"\n")
}

func (ew *errWriter) printf(format string, a ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, a...)
}

func (r *Renderer) writer() *errWriter {
	return &errWriter{w: r.Out}
}

func (r *Renderer) rule(ch string) string {
	line := strings.Repeat(ch, r.width())
	if r.Color {
		return ruleStyle.Render(line)
	}
	return line
}

func (r *Renderer) heading(text string) string {
	if r.Color {
		return headingStyle.Render(text)
	}
	return text
}

// ByCategory prints, for each field in order, a banner followed by
// one line per profile in catalog order:
//
//	Loom            | Full-stack QEC toolkit
//
// The framework name column is 15 wide, left-justified. Requesting a
// category a profile cannot answer is an error, never a blank cell.
func (r *Renderer) ByCategory(profiles []catalog.Profile, fields []catalog.Field) error {
	ew := r.writer()
	for _, f := range fields {
		ew.line("")
		ew.line(r.rule("="))
		ew.line(r.heading(strings.ToUpper(f.Label())))
		ew.line(r.rule("="))
		for _, p := range profiles {
			v, err := p.Value(f)
			if err != nil {
				return err
			}
			ew.printf("%-*s | %s\n", nameColWidth, p.Name, v)
		}
	}
	return ew.err
}

// Table prints one header line and one row per profile, columns in
// the given field order. An empty profile list prints the header and
// nothing else.
func (r *Renderer) Table(profiles []catalog.Profile, fields []catalog.Field) error {
	ew := r.writer()
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", nameColWidth, "Framework")
	for _, f := range fields {
		fmt.Fprintf(&b, " | %-*s", featureColWidth, f.Label())
	}
	ew.line(strings.TrimRight(b.String(), " "))
	for _, p := range profiles {
		b.Reset()
		fmt.Fprintf(&b, "%-*s", nameColWidth, p.Name)
		for _, f := range fields {
			v, err := p.Value(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, " | %-*s", featureColWidth, v)
		}
		ew.line(strings.TrimRight(b.String(), " "))
	}
	return ew.err
}

// FeatureMatrix is the transposed deep-dive: one column per profile,
// one row per field. Intended for small profile sets (the headline
// pairwise comparison); wide catalogs belong in Table or ByCategory.
func (r *Renderer) FeatureMatrix(profiles []catalog.Profile, fields []catalog.Field) error {
	ew := r.writer()
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", featureColWidth, "Feature")
	for _, p := range profiles {
		fmt.Fprintf(&b, " | %-*s", valueColWidth, p.Name)
	}
	header := strings.TrimRight(b.String(), " ")
	ew.line(header)
	ew.line(strings.Repeat("-", featureColWidth+len(profiles)*(valueColWidth+3)))
	for _, f := range fields {
		b.Reset()
		fmt.Fprintf(&b, "%-*s", featureColWidth, f.Label())
		for _, p := range profiles {
			v, err := p.Value(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, " | %-*s", valueColWidth, v)
		}
		ew.line(strings.TrimRight(b.String(), " "))
	}
	return ew.err
}

// ScenarioGuide prints each scenario's recommendation. Purely
// data-driven; no logic beyond iteration.
func (r *Renderer) ScenarioGuide(scenarios []catalog.Scenario) error {
	ew := r.writer()
	for i, s := range scenarios {
		ew.line("")
		ew.printf("SCENARIO %d: %q\n", i+1, s.Description)
		ew.line(strings.Repeat("━", scenarioRuleWidth))
		best := s.BestLabel
		if best == "" {
			best = "BEST CHOICE"
		}
		ew.printf("%s: %s\n", r.label(best), s.Best)
		for _, n := range s.BestNotes {
			ew.line("- " + n)
		}
		if s.Alternative == "" && len(s.AltNotes) == 0 {
			continue
		}
		alt := s.AltLabel
		if alt == "" {
			alt = "ALSO CONSIDER"
		}
		ew.line("")
		if s.Alternative != "" {
			ew.printf("%s: %s\n", r.label(alt), s.Alternative)
		} else {
			ew.printf("%s:\n", r.label(alt))
		}
		for _, n := range s.AltNotes {
			ew.line("- " + n)
		}
	}
	return ew.err
}

func (r *Renderer) label(text string) string {
	if r.Color {
		return labelStyle.Render(text)
	}
	return text
}

const (
	diagramIndent = "    "
	diagramInner  = 65
	diagramJoint  = 24 // column of the inter-layer connector
)

// LayerDiagram prints the boxed ecosystem tiers, top layer first,
// joined by a vertical connector.
func (r *Renderer) LayerDiagram(layers []catalog.Layer) error {
	ew := r.writer()
	for i, l := range layers {
		top := strings.Repeat("─", diagramInner)
		if i > 0 {
			top = top[:runeOffset(top, diagramJoint)] + "┴" + top[runeOffset(top, diagramJoint+1):]
		}
		ew.line(diagramIndent + "┌" + top + "┐")
		ew.line(diagramIndent + "│" + padRight("  "+l.Title, diagramInner) + "│")
		for _, e := range l.Entries {
			ew.line(diagramIndent + "│" + padRight("  • "+e, diagramInner) + "│")
		}
		bottom := strings.Repeat("─", diagramInner)
		if i < len(layers)-1 {
			bottom = bottom[:runeOffset(bottom, diagramJoint)] + "┬" + bottom[runeOffset(bottom, diagramJoint+1):]
		}
		ew.line(diagramIndent + "└" + bottom + "┘")
		if i < len(layers)-1 {
			ew.line(diagramIndent + strings.Repeat(" ", diagramJoint+1) + "│")
		}
	}
	return ew.err
}

// Banner prints the boxed report title.
func (r *Renderer) Banner(title, subtitle string) error {
	ew := r.writer()
	inner := r.width() - 2
	style := func(s string) string {
		if r.Color {
			return bannerStyle.Render(s)
		}
		return s
	}
	ew.line(style("╔" + strings.Repeat("═", inner) + "╗"))
	ew.line(style("║" + strings.Repeat(" ", inner) + "║"))
	ew.line(style("║" + center(title, inner) + "║"))
	if subtitle != "" {
		ew.line(style("║" + center(subtitle, inner) + "║"))
	}
	ew.line(style("║" + strings.Repeat(" ", inner) + "║"))
	ew.line(style("╚" + strings.Repeat("═", inner) + "╝"))
	return ew.err
}

// SectionHeading prints a ruled section title.
func (r *Renderer) SectionHeading(title string) error {
	ew := r.writer()
	ew.line("")
	ew.line(r.rule("="))
	ew.line(r.heading(title))
	ew.line(r.rule("="))
	return ew.err
}

// ProfileDetail prints every field of one profile.
func (r *Renderer) ProfileDetail(p catalog.Profile) error {
	if err := r.SectionHeading(strings.ToUpper(p.Name)); err != nil {
		return err
	}
	ew := r.writer()
	for _, f := range catalog.AllFields() {
		v, err := p.Value(f)
		if err != nil {
			return err
		}
		ew.printf("%-*s | %s\n", nameColWidth, f.Label(), v)
	}
	return ew.err
}

// Full renders the complete report in the comparison's canonical
// order: banner, per-category listing, ecosystem layers, the headline
// pairwise feature matrix, scenario guide, and the curated prose
// sections.
func (r *Renderer) Full(c *catalog.Catalog) error {
	if err := r.Banner("QUANTUM ERROR CORRECTION FRAMEWORK COMPARISON", "The open QEC tooling ecosystem at a glance"); err != nil {
		return err
	}
	profiles := c.Profiles()
	if err := r.ByCategory(profiles, catalog.CompareFields()); err != nil {
		return err
	}
	if err := r.SectionHeading("ECOSYSTEM LAYERS AND RELATIONSHIPS"); err != nil {
		return err
	}
	if err := r.LayerDiagram(c.Layers()); err != nil {
		return err
	}
	// The deep-dive matrix is a head-to-head: the first two profiles
	// are the headline pair.
	if len(profiles) >= 2 {
		if err := r.SectionHeading("FEATURE COMPARISON: " + strings.ToUpper(profiles[0].Name) + " VS " + strings.ToUpper(profiles[1].Name)); err != nil {
			return err
		}
		if err := r.FeatureMatrix(profiles[:2], catalog.AllFields()); err != nil {
			return err
		}
	}
	if err := r.SectionHeading("USAGE RECOMMENDATIONS BY SCENARIO"); err != nil {
		return err
	}
	if err := r.ScenarioGuide(c.Scenarios()); err != nil {
		return err
	}
	for _, s := range StaticSections() {
		if err := r.SectionHeading(s.Title); err != nil {
			return err
		}
		ew := r.writer()
		ew.line(s.Body)
		if ew.err != nil {
			return ew.err
		}
	}
	return nil
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// center pads s on both sides to the given display width.
func center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

// runeOffset converts a rune index into a byte offset within s.
func runeOffset(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}
