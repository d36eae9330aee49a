package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"covtriage/internal/session"
	"covtriage/internal/settings"
	"covtriage/internal/triage"
)

var (
	flagSettingsPath string
	flagOutput       string
	flagVerbose      bool

	flagFever       bool
	flagCough       bool
	flagLossOfSmell bool
	flagContact     bool
	flagNoInput     bool
)

func main() {
	root := newRootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = false
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covtriage",
		Short: "COVID-19 symptom triage questionnaire",
		Long:  "covtriage asks four yes/no symptom questions and reports one of three fixed risk tiers.",
	}

	cmd.PersistentFlags().StringVar(&flagSettingsPath, "settings", "", "path to covtriage.yaml (defaults to cwd or ~/.covtriage if present)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log tier evaluation to stderr")

	cmd.AddCommand(assessCmd())
	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(matrixCmd())
	cmd.AddCommand(initCmd())
	cmd.AddCommand(settingsCmd())

	return cmd
}

func assessCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "assess",
		Short: "Answer the questionnaire and get a risk tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := session.Options{
				SettingsPath: flagSettingsPath,
				Format:       flagOutput,
				Verbose:      flagVerbose,
			}
			// Any symptom flag switches to non-interactive mode; unset flags
			// keep their "no" default, like untouched checkboxes.
			if flagNoInput || anyAnswerFlagSet(cmd) {
				opts.Record = &triage.Record{
					Fever:           flagFever,
					Cough:           flagCough,
					LossOfSmell:     flagLossOfSmell,
					ContactWithCase: flagContact,
				}
			}
			return session.Run(opts)
		},
	}

	c.Flags().BoolVar(&flagFever, "fever", false, "answer yes to the fever question")
	c.Flags().BoolVar(&flagCough, "cough", false, "answer yes to the cough question")
	c.Flags().BoolVar(&flagLossOfSmell, "loss-of-smell", false, "answer yes to the loss of taste or smell question")
	c.Flags().BoolVar(&flagContact, "contact", false, "answer yes to the confirmed-case contact question")
	c.Flags().BoolVar(&flagNoInput, "no-input", false, "never prompt; treat unset answers as no")
	c.Flags().StringVarP(&flagOutput, "output", "o", "", "output format: text, json or yaml")

	return c
}

func anyAnswerFlagSet(cmd *cobra.Command) bool {
	for _, name := range []string{"fever", "cough", "loss-of-smell", "contact"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the fixed triage rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, r := range triage.Rules() {
				fmt.Fprintf(out, "%d. %s -> %s\n", i+1, r.When, r.Level)
				fmt.Fprintf(out, "   %s\n", r.Message)
			}
			fmt.Fprintln(out, "Earlier rules pre-empt later ones; the last rule always matches.")
			return nil
		},
	}
}

func matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the risk tier for every answer combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-6s %-14s %-8s %s\n", "fever", "cough", "loss_of_smell", "contact", "tier")
			for i := 0; i < 16; i++ {
				rec := triage.Record{
					Fever:           i&8 != 0,
					Cough:           i&4 != 0,
					LossOfSmell:     i&2 != 0,
					ContactWithCase: i&1 != 0,
				}
				d := triage.Evaluate(rec)
				fmt.Fprintf(out, "%-6s %-6s %-14s %-8s %s\n",
					yn(rec.Fever), yn(rec.Cough), yn(rec.LossOfSmell), yn(rec.ContactWithCase), d.Level)
			}
			return nil
		},
	}
}

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default covtriage.yaml in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := settings.FileName
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists", target)
			}
			if err := os.WriteFile(target, []byte(settings.DefaultYAML()), 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created", target)
			return nil
		},
	}
}

func settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the effective presentation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load(flagSettingsPath)
			if err != nil {
				return err
			}
			yamlStr, err := cfg.ToYAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), yamlStr)
			return nil
		},
	}
}
