package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/roguetrainer/qec-frameworks/internal/catalog"
	"github.com/roguetrainer/qec-frameworks/internal/config"
	"github.com/roguetrainer/qec-frameworks/internal/report"
)

func testRenderer(buf *bytes.Buffer) *report.Renderer {
	return &report.Renderer{Out: buf}
}

func TestRunNoArgsPrintsFullReport(t *testing.T) {
	var buf bytes.Buffer
	if err := run(testRenderer(&buf), catalog.Default(), nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"QUANTUM ERROR CORRECTION FRAMEWORK COMPARISON",
		"ECOSYSTEM LAYERS AND RELATIONSHIPS",
		"USAGE RECOMMENDATIONS BY SCENARIO",
		"THE VERDICT: WHAT SHOULD YOU COMPARE?",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("full report missing %q", want)
		}
	}
}

func TestRunSectionCommands(t *testing.T) {
	cases := map[string]string{
		"table":      "Framework",
		"categories": "Loom            | Full-stack QEC toolkit",
		"scenarios":  "SCENARIO 1:",
		"layers":     "HIGH-LEVEL DESIGN & LEARNING",
	}
	for cmd, want := range cases {
		var buf bytes.Buffer
		if err := run(testRenderer(&buf), catalog.Default(), []string{cmd}); err != nil {
			t.Fatalf("run %s: %v", cmd, err)
		}
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("%s output missing %q", cmd, want)
		}
	}
}

func TestRunCategoriesWithExplicitFields(t *testing.T) {
	var buf bytes.Buffer
	if err := run(testRenderer(&buf), catalog.Default(), []string{"categories", "License"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "LICENSE") {
		t.Fatal("missing requested category banner")
	}
	if strings.Contains(buf.String(), "PRIMARY FOCUS") {
		t.Fatal("unrequested category rendered")
	}

	err := run(testRenderer(&buf), catalog.Default(), []string{"categories", "Velocity"})
	if err == nil || !strings.Contains(err.Error(), `unknown category "Velocity"`) {
		t.Fatalf("expected unknown category error, got %v", err)
	}
}

func TestRunShow(t *testing.T) {
	var buf bytes.Buffer
	if err := run(testRenderer(&buf), catalog.Default(), []string{"show", "stim"}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "Stabilizer circuit simulator") {
		t.Fatal("profile detail missing")
	}

	err := run(testRenderer(&buf), catalog.Default(), []string{"show", "Stm"})
	if err == nil || !strings.Contains(err.Error(), `did you mean "Stim"?`) {
		t.Fatalf("expected suggestion, got %v", err)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	var buf bytes.Buffer
	err := run(testRenderer(&buf), catalog.Default(), []string{"simulate"})
	if err == nil || !strings.Contains(err.Error(), `unknown command "simulate"`) {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRunValidation(t *testing.T) {
	if err := runValidation(catalog.Default()); err != nil {
		t.Fatalf("runValidation: %v", err)
	}
}

func TestBuildCatalogDefault(t *testing.T) {
	cat, err := buildCatalog(config.Config{})
	if err != nil {
		t.Fatalf("buildCatalog: %v", err)
	}
	if len(cat.Profiles()) != 7 {
		t.Fatalf("profiles = %d, want 7", len(cat.Profiles()))
	}
}

func TestColorEnabled(t *testing.T) {
	if !colorEnabled("always") {
		t.Fatal("always should enable color")
	}
	if colorEnabled("never") {
		t.Fatal("never should disable color")
	}
}
