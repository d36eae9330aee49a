package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"covtriage/internal/triage"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// Answers mirrors the record for machine-readable output.
type Answers struct {
	Fever           bool `json:"fever" yaml:"fever"`
	Cough           bool `json:"cough" yaml:"cough"`
	LossOfSmell     bool `json:"loss_of_smell" yaml:"loss_of_smell"`
	ContactWithCase bool `json:"contact_with_case" yaml:"contact_with_case"`
}

// Report wraps one diagnosis for display. It exists only for the duration of
// the run and is never written to disk.
type Report struct {
	ID          string       `json:"id" yaml:"id"`
	GeneratedAt time.Time    `json:"generated_at" yaml:"generated_at"`
	Answers     Answers      `json:"answers" yaml:"answers"`
	Level       triage.Level `json:"level" yaml:"level"`
	Message     string       `json:"message" yaml:"message"`
	Signals     []string     `json:"signals,omitempty" yaml:"signals,omitempty"`
}

// New builds a report for the record and its diagnosis.
func New(rec triage.Record, d triage.Diagnosis) Report {
	return Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Answers: Answers{
			Fever:           rec.Fever,
			Cough:           rec.Cough,
			LossOfSmell:     rec.LossOfSmell,
			ContactWithCase: rec.ContactWithCase,
		},
		Level:   d.Level,
		Message: d.Message,
		Signals: d.Signals,
	}
}

// Render writes the report in the requested format. Text output shows the
// canonical message verbatim, the way the original result label does.
func (r Report) Render(w io.Writer, f Format, showSignals bool) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		out, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		fmt.Fprintln(w, r.Message)
		if showSignals {
			for _, s := range r.Signals {
				fmt.Fprintln(w, "- reported:", s)
			}
		}
		return nil
	}
}
