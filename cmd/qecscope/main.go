package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roguetrainer/qec-frameworks/internal/catalog"
	"github.com/roguetrainer/qec-frameworks/internal/config"
	"github.com/roguetrainer/qec-frameworks/internal/report"
	"github.com/roguetrainer/qec-frameworks/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	r := &report.Renderer{
		Out:   os.Stdout,
		Width: cfg.Output.Width,
		Color: colorEnabled(cfg.Output.Color),
	}

	if err := run(r, cat, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildCatalog returns the built-in dataset, or the configured YAML
// override validated through the same fail-fast path.
func buildCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Catalog.Path)
}

func run(r *report.Renderer, cat *catalog.Catalog, args []string) error {
	if len(args) == 0 {
		return r.Full(cat)
	}
	switch args[0] {
	case "report":
		return r.Full(cat)
	case "table":
		return r.Table(cat.Profiles(), catalog.CompareFields())
	case "categories":
		fields := catalog.CompareFields()
		if len(args) > 1 {
			fields = fields[:0]
			for _, label := range args[1:] {
				f, err := catalog.ParseField(label)
				if err != nil {
					return err
				}
				fields = append(fields, f)
			}
		}
		return r.ByCategory(cat.Profiles(), fields)
	case "scenarios":
		return r.ScenarioGuide(cat.Scenarios())
	case "layers":
		return r.LayerDiagram(cat.Layers())
	case "show":
		if len(args) < 2 {
			return fmt.Errorf("show: framework name required")
		}
		name := strings.Join(args[1:], " ")
		p, ok := cat.Lookup(name)
		if !ok {
			if near, dist, found := cat.Nearest(name); found && dist <= len(near.Name) {
				return fmt.Errorf("unknown framework %q (did you mean %q?)", name, near.Name)
			}
			return fmt.Errorf("unknown framework %q", name)
		}
		return r.ProfileDetail(p)
	case "browse":
		m, err := tui.New(cat)
		if err != nil {
			return err
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err = p.Run()
		return err
	case "validate":
		return runValidation(cat)
	default:
		return fmt.Errorf("unknown command %q (try: report, table, categories, scenarios, layers, show, browse, validate)", args[0])
	}
}

// colorEnabled maps the output.color setting onto the renderer. Auto
// means color only when stdout is a terminal.
func colorEnabled(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		info, err := os.Stdout.Stat()
		if err != nil {
			return false
		}
		return info.Mode()&os.ModeCharDevice != 0
	}
}
