package triage

// Level enumerates risk tiers.
type Level string

const (
	LevelHigh     Level = "high"
	LevelModerate Level = "moderate"
	LevelLow      Level = "low"
)

// Canonical messages for each tier. The wording is fixed.
const (
	MessageHigh     = "Diagnosis: High Risk for COVID-19. Please get tested immediately and isolate."
	MessageModerate = "Diagnosis: Moderate Risk for COVID-19. Monitor symptoms closely and consider testing."
	MessageLow      = "Diagnosis: Low Risk. Symptoms may be due to other causes. Monitor your health."
)

// Record holds one person's answers. The zero value answers "no" to
// everything, matching an untouched questionnaire.
type Record struct {
	Fever           bool
	Cough           bool
	LossOfSmell     bool
	ContactWithCase bool
}

// Diagnosis captures triage output.
type Diagnosis struct {
	Level   Level
	Message string
	Signals []string
}

// Evaluate applies the triage ladder to the record. Tiers are checked in
// priority order and the first match wins; the low tier is an unconditional
// fallback, so every record yields exactly one diagnosis.
func Evaluate(r Record) Diagnosis {
	if r.Fever && r.LossOfSmell {
		return Diagnosis{Level: LevelHigh, Message: MessageHigh, Signals: signals(r)}
	}

	if r.Fever && r.Cough && r.ContactWithCase {
		return Diagnosis{Level: LevelModerate, Message: MessageModerate, Signals: signals(r)}
	}

	return Diagnosis{Level: LevelLow, Message: MessageLow, Signals: signals(r)}
}

func signals(r Record) []string {
	s := []string{}
	if r.Fever {
		s = append(s, "fever")
	}
	if r.Cough {
		s = append(s, "persistent cough")
	}
	if r.LossOfSmell {
		s = append(s, "loss of taste or smell")
	}
	if r.ContactWithCase {
		s = append(s, "contact with a confirmed case")
	}
	if len(s) == 0 {
		return nil
	}
	return s
}

// Rule describes one ladder entry for display purposes.
type Rule struct {
	Level   Level
	When    string
	Message string
}

// Rules returns the ladder in evaluation order. The set is fixed and cannot
// be changed at runtime.
func Rules() []Rule {
	return []Rule{
		{Level: LevelHigh, When: "fever and loss of taste or smell", Message: MessageHigh},
		{Level: LevelModerate, When: "fever, persistent cough, and contact with a confirmed case", Message: MessageModerate},
		{Level: LevelLow, When: "any other combination of answers", Message: MessageLow},
	}
}
