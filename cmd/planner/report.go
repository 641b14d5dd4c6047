package main

import (
	"fmt"

	"github.com/rpgo/portfolio-planner/internal/config"
	"github.com/rpgo/portfolio-planner/internal/domain"
	"github.com/rpgo/portfolio-planner/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) reportCmd() *cobra.Command {
	var configPath, format string
	var growth bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a full plan and render or export the report",
		Long:  "Run every calculation for a plan file (or the defaults) and print it, or export it as csv, json or an xlsx workbook.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := domain.DefaultPlan()
			if configPath != "" {
				loaded, err := config.NewInputParser().LoadFromFile(configPath)
				if err != nil {
					return err
				}
				plan = loaded
			}
			if growth {
				plan.Contribution.IncludeGrowth = true
			}

			report, err := a.engine().RunPlan(cmd.Context(), plan)
			if err != nil {
				return err
			}

			if output.NormalizeFormatName(format) == "console" {
				data, err := output.ConsoleFormatter{}.Format(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			files, err := output.GenerateReport(report, format, a.settings.OutputDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Plan YAML file (defaults are used when empty)")
	cmd.Flags().StringVarP(&format, "format", "f", a.settings.Format, "Output format: console, csv, growth-csv, json, xlsx or all (env PLANNER_FORMAT)")
	cmd.Flags().BoolVar(&growth, "growth", false, "Include the year-by-year growth series")
	return cmd
}

func (a *app) initConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default plan as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "plan.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.SavePlan(domain.DefaultPlan(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}
