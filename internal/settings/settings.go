package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default_settings.yaml
var defaultData []byte

// FileName is the user settings file looked up in the working directory and
// under ~/.covtriage.
const FileName = "covtriage.yaml"

// Questions holds the questionnaire wording. The set of questions is fixed;
// a user file may reword or translate them but never add or remove any.
type Questions struct {
	Fever           string `yaml:"fever"`
	Cough           string `yaml:"cough"`
	LossOfSmell     string `yaml:"loss_of_smell"`
	ContactWithCase string `yaml:"contact_with_case"`
}

// Output controls report rendering.
type Output struct {
	Format      string `yaml:"format"`
	HideSignals bool   `yaml:"hide_signals"`
}

// Settings represents the effective presentation settings. The triage rules
// themselves are compiled in and are not configurable.
type Settings struct {
	Questions Questions `yaml:"questions"`
	Output    Output    `yaml:"output"`
}

// Load returns the effective settings, merging the embedded defaults with a
// user file if one is present. An empty path triggers the standard lookup.
func Load(path string) (Settings, error) {
	base, err := parse(defaultData)
	if err != nil {
		return Settings{}, fmt.Errorf("parse default settings: %w", err)
	}

	if path == "" {
		path = Locate()
	}
	if path == "" {
		return base, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("stat settings: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read settings: %w", err)
	}
	user, err := parse(data)
	if err != nil {
		return base, fmt.Errorf("parse settings: %w", err)
	}

	merge(&base, user)
	return base, nil
}

// Locate returns the first user settings file that exists, or "".
func Locate() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidate := filepath.Join(home, ".covtriage", FileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

func parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func merge(base *Settings, override Settings) {
	if override.Questions.Fever != "" {
		base.Questions.Fever = override.Questions.Fever
	}
	if override.Questions.Cough != "" {
		base.Questions.Cough = override.Questions.Cough
	}
	if override.Questions.LossOfSmell != "" {
		base.Questions.LossOfSmell = override.Questions.LossOfSmell
	}
	if override.Questions.ContactWithCase != "" {
		base.Questions.ContactWithCase = override.Questions.ContactWithCase
	}

	if override.Output.Format != "" {
		base.Output.Format = override.Output.Format
	}
	base.Output.HideSignals = base.Output.HideSignals || override.Output.HideSignals
}

// ToYAML renders the settings to YAML.
func (s Settings) ToYAML() (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultYAML returns the embedded default settings YAML.
func DefaultYAML() string {
	return string(defaultData)
}
