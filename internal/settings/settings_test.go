package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Questions.Fever != "Do you have a fever?" {
		t.Fatalf("unexpected fever question: %q", s.Questions.Fever)
	}
	if s.Questions.ContactWithCase != "Have you been in close contact with a confirmed case?" {
		t.Fatalf("unexpected contact question: %q", s.Questions.ContactWithCase)
	}
	if s.Output.Format != "text" {
		t.Fatalf("expected text format default, got %q", s.Output.Format)
	}
	if s.Output.HideSignals {
		t.Fatal("expected signals shown by default")
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	content := "questions:\n  fever: \"Any fever today?\"\noutput:\n  format: json\n  hide_signals: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Questions.Fever != "Any fever today?" {
		t.Fatalf("override not applied: %q", s.Questions.Fever)
	}
	// Untouched questions keep their default wording.
	if s.Questions.Cough != "Do you have a persistent cough?" {
		t.Fatalf("default lost: %q", s.Questions.Cough)
	}
	if s.Output.Format != "json" {
		t.Fatalf("expected json format, got %q", s.Output.Format)
	}
	if !s.Output.HideSignals {
		t.Fatal("expected hide_signals override")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("questions: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaultYAMLParses(t *testing.T) {
	if _, err := parse([]byte(DefaultYAML())); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
}
