package triage

import "testing"

func allRecords() []Record {
	records := make([]Record, 0, 16)
	for i := 0; i < 16; i++ {
		records = append(records, Record{
			Fever:           i&8 != 0,
			Cough:           i&4 != 0,
			LossOfSmell:     i&2 != 0,
			ContactWithCase: i&1 != 0,
		})
	}
	return records
}

func TestEvaluateTotality(t *testing.T) {
	for _, rec := range allRecords() {
		d := Evaluate(rec)
		switch d.Level {
		case LevelHigh, LevelModerate, LevelLow:
		default:
			t.Fatalf("record %+v produced unknown level %q", rec, d.Level)
		}
		if d.Message != MessageHigh && d.Message != MessageModerate && d.Message != MessageLow {
			t.Fatalf("record %+v produced unknown message %q", rec, d.Message)
		}
	}
}

func TestHighRiskPrecedence(t *testing.T) {
	// Fever plus loss of smell is high risk regardless of the other answers.
	for _, rec := range allRecords() {
		if !(rec.Fever && rec.LossOfSmell) {
			continue
		}
		d := Evaluate(rec)
		if d.Level != LevelHigh {
			t.Fatalf("record %+v: expected high, got %s", rec, d.Level)
		}
		if d.Message != MessageHigh {
			t.Fatalf("record %+v: wrong message %q", rec, d.Message)
		}
	}
}

func TestModerateRisk(t *testing.T) {
	for _, rec := range allRecords() {
		if !(rec.Fever && rec.Cough && rec.ContactWithCase) {
			continue
		}
		if rec.Fever && rec.LossOfSmell {
			continue
		}
		d := Evaluate(rec)
		if d.Level != LevelModerate {
			t.Fatalf("record %+v: expected moderate, got %s", rec, d.Level)
		}
	}
}

func TestLowRiskFallback(t *testing.T) {
	d := Evaluate(Record{})
	if d.Level != LevelLow {
		t.Fatalf("expected low for empty record, got %s", d.Level)
	}
	if d.Message != MessageLow {
		t.Fatalf("wrong message %q", d.Message)
	}
	if d.Signals != nil {
		t.Fatalf("expected no signals for empty record, got %v", d.Signals)
	}
}

func TestEvaluateScenarios(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want Level
	}{
		{"fever and smell", Record{Fever: true, LossOfSmell: true}, LevelHigh},
		{"fever cough contact", Record{Fever: true, Cough: true, ContactWithCase: true}, LevelModerate},
		{"cough only", Record{Cough: true}, LevelLow},
		{"everything", Record{Fever: true, Cough: true, LossOfSmell: true, ContactWithCase: true}, LevelHigh},
	}
	for _, tc := range cases {
		d := Evaluate(tc.rec)
		if d.Level != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, d.Level)
		}
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	for _, rec := range allRecords() {
		first := Evaluate(rec)
		second := Evaluate(rec)
		if first.Level != second.Level || first.Message != second.Message {
			t.Fatalf("record %+v: non-deterministic result", rec)
		}
		if len(first.Signals) != len(second.Signals) {
			t.Fatalf("record %+v: non-deterministic signals", rec)
		}
		for i := range first.Signals {
			if first.Signals[i] != second.Signals[i] {
				t.Fatalf("record %+v: non-deterministic signal order", rec)
			}
		}
	}
}

func TestSignalsReflectAnswers(t *testing.T) {
	d := Evaluate(Record{Fever: true, ContactWithCase: true})
	if len(d.Signals) != 2 {
		t.Fatalf("expected 2 signals, got %v", d.Signals)
	}
	if d.Signals[0] != "fever" || d.Signals[1] != "contact with a confirmed case" {
		t.Fatalf("unexpected signals %v", d.Signals)
	}
}

func TestRulesOrder(t *testing.T) {
	rules := Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	if rules[0].Level != LevelHigh || rules[1].Level != LevelModerate || rules[2].Level != LevelLow {
		t.Fatalf("rules out of evaluation order: %v", rules)
	}
}
