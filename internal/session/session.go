package session

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"covtriage/internal/report"
	"covtriage/internal/settings"
	"covtriage/internal/triage"
	"covtriage/internal/ui"
)

// Options controls an assessment session.
type Options struct {
	SettingsPath string
	Record       *triage.Record // nil means ask the questionnaire
	Format       string         // overrides the settings default when set
	Verbose      bool

	// In and Out default to stdin and stdout.
	In  io.Reader
	Out io.Writer
}

// Run performs one assessment, or a questionnaire loop when no record was
// supplied up front. Results only ever go to Out; nothing is stored.
func Run(opts Options) error {
	cfg, err := settings.Load(opts.SettingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if opts.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	name := cfg.Output.Format
	if opts.Format != "" {
		name = opts.Format
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return err
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if opts.Record != nil {
		return assess(*opts.Record, format, cfg, out)
	}

	prompter := ui.New(in, out)
	for {
		rec := collect(prompter, cfg.Questions)
		if err := assess(rec, format, cfg, out); err != nil {
			return err
		}
		if !prompter.AskYesNo("Assess another person?") {
			return nil
		}
		fmt.Fprintln(out)
	}
}

func collect(p *ui.Prompter, q settings.Questions) triage.Record {
	return triage.Record{
		Fever:           p.AskYesNo(q.Fever),
		Cough:           p.AskYesNo(q.Cough),
		LossOfSmell:     p.AskYesNo(q.LossOfSmell),
		ContactWithCase: p.AskYesNo(q.ContactWithCase),
	}
}

func assess(rec triage.Record, format report.Format, cfg settings.Settings, out io.Writer) error {
	logrus.WithFields(logrus.Fields{
		"fever":             rec.Fever,
		"cough":             rec.Cough,
		"loss_of_smell":     rec.LossOfSmell,
		"contact_with_case": rec.ContactWithCase,
	}).Debug("evaluating record")

	d := triage.Evaluate(rec)
	logrus.WithField("level", d.Level).Debug("tier matched")

	return report.New(rec, d).Render(out, format, !cfg.Output.HideSignals)
}
