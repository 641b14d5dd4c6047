package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rpgo/portfolio-planner/internal/calculation"
	"github.com/rpgo/portfolio-planner/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// app carries the settings shared by every sub-command.
type app struct {
	settings config.Settings
	logger   calculation.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: calculation.NopLogger{}}
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		settings = config.Settings{OutputDir: ".", Format: "console", Addr: ":8080"}
	}
	a.settings = settings

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Retirement portfolio planner",
		Long:          "Estimate retirement savings outcomes: allocation, growth, SIP, tax benefit and post-retirement income.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.settings.Debug {
				level = slog.LevelDebug
			}
			a.logger = calculation.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&a.settings.Debug, "debug", a.settings.Debug, "Enable debug logging (env PLANNER_DEBUG)")
	root.PersistentFlags().StringVarP(&a.settings.OutputDir, "output-dir", "o", a.settings.OutputDir, "Directory for report files (env PLANNER_OUTPUT_DIR)")

	root.AddCommand(
		a.allocationCmd(),
		a.projectCmd(),
		a.growthCmd(),
		a.sipCmd(),
		a.incomeCmd(),
		a.taxCmd(),
		a.compareCmd(),
		a.historyCmd(),
		a.reportCmd(),
		a.initConfigCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) engine() *calculation.PlanEngine {
	e := calculation.NewPlanEngine()
	e.SetLogger(a.logger)
	return e
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
