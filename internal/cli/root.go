// Package cli implements the widgetctl command line front-end.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"schoolwidget/internal/config"
	"schoolwidget/internal/responder"
	"schoolwidget/internal/validation"
	"schoolwidget/internal/widget"
)

// NewRootCommand returns the widgetctl command tree. School rules and dates are
// read from the --config YAML file when it exists.
func NewRootCommand() *cobra.Command {
	var w *widget.Widget

	root := &cobra.Command{
		Use:           "widgetctl",
		Short:         "School study widget from the terminal",
		Long:          "widgetctl answers study questions and builds study plans, like the widget on the school website.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			yamlCfg, err := config.LoadYAMLConfig(path)
			if err != nil {
				return err
			}
			school := yamlCfg.SchoolInfo()
			w = widget.New(responder.New(responder.DefaultTable(school)), school)
			return nil
		},
	}
	root.PersistentFlags().String("config", "config.yaml", "Path to the school YAML config file")

	root.AddCommand(
		askCommand(&w),
		planCommand(&w),
		rulesCommand(&w),
		datesCommand(&w),
	)
	return root
}

func askCommand(w **widget.Widget) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the widget a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			res := (*w).Ask(strings.Join(args, " "))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return err
		},
	}
}

func planCommand(w **widget.Widget) *cobra.Command {
	var difficulties, hours, days string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a round-robin study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, text := (*w).Plan(difficulties, validation.ParseHours(hours), validation.ParseDeadline(days))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVarP(&difficulties, "difficulties", "d", "", "Comma-separated subjects, e.g. \"Matemática, Física\"")
	cmd.Flags().StringVar(&hours, "hours", "2", "Study hours per day")
	cmd.Flags().StringVar(&days, "days", "7", "Days until the deadline")
	return cmd
}

func rulesCommand(w **widget.Widget) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show the school rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), (*w).RulesText())
			return err
		},
	}
}

func datesCommand(w **widget.Widget) *cobra.Command {
	return &cobra.Command{
		Use:   "dates",
		Short: "Show important school dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), (*w).DatesText())
			return err
		},
	}
}
