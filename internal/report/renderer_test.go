package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/roguetrainer/qec-frameworks/internal/catalog"
)

func headlineProfiles(t *testing.T) []catalog.Profile {
	t.Helper()
	profiles := catalog.Default().Profiles()
	if len(profiles) < 3 {
		t.Fatalf("built-in dataset too small: %d profiles", len(profiles))
	}
	return profiles[:3]
}

func TestByCategoryExactLines(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ByCategory(headlineProfiles(t), []catalog.Field{catalog.FieldType}); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}

	rule := strings.Repeat("=", 100)
	want := "\n" + rule + "\nTYPE\n" + rule + "\n" +
		"Loom            | Full-stack QEC toolkit\n" +
		"Deltakit        | SDK + Learning platform\n" +
		"Stim            | Stabilizer circuit simulator\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\ngot:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestByCategoryOneLinePerProfilePerField(t *testing.T) {
	profiles := catalog.Default().Profiles()
	fields := catalog.CompareFields()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ByCategory(profiles, fields); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}

	dataLines := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, " | ") {
			dataLines++
		}
	}
	if want := len(profiles) * len(fields); dataLines != want {
		t.Fatalf("data lines = %d, want %d", dataLines, want)
	}
}

func TestByCategoryValueVerbatimInProfileOrder(t *testing.T) {
	profiles := catalog.Default().Profiles()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ByCategory(profiles, []catalog.Field{catalog.FieldLicense}); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}

	var rows []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, " | ") {
			rows = append(rows, line)
		}
	}
	if len(rows) != len(profiles) {
		t.Fatalf("rows = %d, want %d", len(rows), len(profiles))
	}
	for i, p := range profiles {
		if !strings.HasPrefix(rows[i], p.Name) {
			t.Fatalf("row %d: expected profile %q, got %q", i, p.Name, rows[i])
		}
		if got := strings.SplitN(rows[i], " | ", 2)[1]; got != p.License {
			t.Fatalf("row %d: value %q, want %q", i, got, p.License)
		}
	}
}

func TestByCategoryEmptyProfiles(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ByCategory(nil, []catalog.Field{catalog.FieldType}); err != nil {
		t.Fatalf("ByCategory: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, " | ") {
			t.Fatalf("unexpected data row: %q", line)
		}
	}
	if !strings.Contains(buf.String(), "TYPE") {
		t.Fatal("banner missing for empty profile list")
	}
}

func TestByCategoryRejectsUnknownField(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	err := r.ByCategory(headlineProfiles(t), []catalog.Field{catalog.Field(99)})
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.Contains(err.Error(), "unknown category") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTableHeaderAndRowCount(t *testing.T) {
	profiles := catalog.Default().Profiles()
	fields := catalog.CompareFields()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.Table(profiles, fields); err != nil {
		t.Fatalf("Table: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1+len(profiles) {
		t.Fatalf("lines = %d, want header + %d rows", len(lines), len(profiles))
	}
	if !strings.HasPrefix(lines[0], "Framework") {
		t.Fatalf("header = %q", lines[0])
	}
	for i, p := range profiles {
		row := lines[1+i]
		if !strings.HasPrefix(row, p.Name) {
			t.Fatalf("row %d: expected %q first, got %q", i, p.Name, row)
		}
		cols := strings.Split(row, " | ")
		if len(cols) != 1+len(fields) {
			t.Fatalf("row %d: %d columns, want %d", i, len(cols), 1+len(fields))
		}
		for j, f := range fields {
			want, err := p.Value(f)
			if err != nil {
				t.Fatalf("value: %v", err)
			}
			if got := strings.TrimRight(cols[1+j], " "); got != want {
				t.Fatalf("row %d col %d: %q, want %q", i, j, got, want)
			}
		}
	}
}

func TestTableEmptyProfiles(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.Table(nil, catalog.CompareFields()); err != nil {
		t.Fatalf("Table: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestFeatureMatrixShape(t *testing.T) {
	profiles := headlineProfiles(t)[:2]
	fields := catalog.AllFields()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.FeatureMatrix(profiles, fields); err != nil {
		t.Fatalf("FeatureMatrix: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2+len(fields) {
		t.Fatalf("lines = %d, want header + rule + %d rows", len(lines), len(fields))
	}
	if !strings.HasPrefix(lines[0], "Feature") || !strings.Contains(lines[0], "Loom") {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Trim(lines[1], "-") != "" {
		t.Fatalf("expected dash rule, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Developer") {
		t.Fatalf("first row = %q", lines[2])
	}
}

func TestScenarioGuideContent(t *testing.T) {
	scenarios := catalog.Default().Scenarios()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ScenarioGuide(scenarios); err != nil {
		t.Fatalf("ScenarioGuide: %v", err)
	}
	out := buf.String()

	for i := range scenarios {
		marker := fmt.Sprintf("SCENARIO %d:", i+1)
		if !strings.Contains(out, marker) {
			t.Fatalf("missing %q", marker)
		}
	}
	if !strings.Contains(out, "BEST CHOICE: Deltakit") {
		t.Fatal("missing best choice line")
	}
	if !strings.Contains(out, "ALSO CONSIDER: Qiskit tutorials") {
		t.Fatal("missing alternative line")
	}
	if !strings.Contains(out, "NO ALTERNATIVE:") {
		t.Fatal("missing no-alternative label")
	}
	if !strings.Contains(out, "- This is Loom's unique feature") {
		t.Fatal("missing no-alternative note")
	}
}

func TestScenarioGuideEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ScenarioGuide(nil); err != nil {
		t.Fatalf("ScenarioGuide: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestLayerDiagramBoxesAlignAndConnect(t *testing.T) {
	layers := catalog.Default().Layers()

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.LayerDiagram(layers); err != nil {
		t.Fatalf("LayerDiagram: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	wantLines := len(layers) - 1 // connectors
	for _, l := range layers {
		wantLines += 3 + len(l.Entries) // top, title, entries, bottom
	}
	if len(lines) != wantLines {
		t.Fatalf("lines = %d, want %d", len(lines), wantLines)
	}

	boxWidth := 0
	connectors := 0
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		switch {
		case strings.Contains(trimmed, "│") && !strings.HasPrefix(strings.TrimSpace(trimmed), "│"):
			t.Fatalf("unexpected line shape: %q", trimmed)
		case strings.TrimSpace(trimmed) == "│":
			connectors++
		default:
			if boxWidth == 0 {
				boxWidth = len([]rune(trimmed))
			}
			if got := len([]rune(trimmed)); got != boxWidth {
				t.Fatalf("box line width %d, want %d: %q", got, boxWidth, trimmed)
			}
		}
	}
	if connectors != len(layers)-1 {
		t.Fatalf("connectors = %d, want %d", connectors, len(layers)-1)
	}
	if !strings.Contains(lines[0], "HIGH-LEVEL DESIGN & LEARNING") {
		if !strings.Contains(lines[1], "HIGH-LEVEL DESIGN & LEARNING") {
			t.Fatal("top layer title missing")
		}
	}
}

func TestBannerLinesShareWidth(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Out: &buf, Width: 80}
	if err := r.Banner("TITLE", "subtitle"); err != nil {
		t.Fatalf("Banner: %v", err)
	}
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if got := len([]rune(line)); got != 80 {
			t.Fatalf("banner line width %d, want 80: %q", got, line)
		}
	}
}

func TestProfileDetailListsEveryField(t *testing.T) {
	p := headlineProfiles(t)[0]

	var buf bytes.Buffer
	r := &Renderer{Out: &buf}
	if err := r.ProfileDetail(p); err != nil {
		t.Fatalf("ProfileDetail: %v", err)
	}
	out := buf.String()
	for _, f := range catalog.AllFields() {
		if !strings.Contains(out, f.Label()) {
			t.Fatalf("missing field %q", f.Label())
		}
	}
	if !strings.Contains(out, "LOOM") {
		t.Fatal("missing profile heading")
	}
}

func TestFullReportIsIdempotent(t *testing.T) {
	cat := catalog.Default()

	var first, second bytes.Buffer
	r := &Renderer{Out: &first}
	if err := r.Full(cat); err != nil {
		t.Fatalf("Full: %v", err)
	}
	r.Out = &second
	if err := r.Full(cat); err != nil {
		t.Fatalf("Full (second): %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Fatal("two renders of the same catalog differ")
	}
	if !strings.Contains(first.String(), "USAGE RECOMMENDATIONS BY SCENARIO") {
		t.Fatal("scenario section missing from full report")
	}
	if !strings.Contains(first.String(), "KEY DISTINCTIONS") {
		t.Fatal("static sections missing from full report")
	}
}

func TestColorStylesChromeOnly(t *testing.T) {
	profiles := headlineProfiles(t)

	var plain, colored bytes.Buffer
	if err := (&Renderer{Out: &plain}).ByCategory(profiles, []catalog.Field{catalog.FieldType}); err != nil {
		t.Fatalf("plain: %v", err)
	}
	if err := (&Renderer{Out: &colored, Color: true}).ByCategory(profiles, []catalog.Field{catalog.FieldType}); err != nil {
		t.Fatalf("colored: %v", err)
	}
	if got := ansi.Strip(colored.String()); got != plain.String() {
		t.Fatalf("stripped colored output differs from plain:\ngot:\n%q\nwant:\n%q", got, plain.String())
	}
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriteFailurePropagates(t *testing.T) {
	wantErr := errors.New("stream closed")
	r := &Renderer{Out: failWriter{err: wantErr}}
	err := r.ByCategory(headlineProfiles(t), []catalog.Field{catalog.FieldType})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected write error, got %v", err)
	}
	if err := (&Renderer{Out: failWriter{err: wantErr}}).Full(catalog.Default()); !errors.Is(err, wantErr) {
		t.Fatalf("Full: expected write error, got %v", err)
	}
}
