package cmd

import (
	"encoding/json"
	"fmt"

	memoryrender "github.com/bnema/void-bridge/internal/adapters/render/memory"
	"github.com/bnema/void-bridge/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type inspectReport struct {
	Stats domain.Stats         `json:"stats"`
	Top   []domain.RankedEntry `json:"top"`
}

const (
	inspectFormatJSON = "json"
	inspectFormatText = "text"
)

func newInspectCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	var format string

	inspectCmd := &cobra.Command{
		Use:   "inspect [state-path]",
		Short: "Print stats and top entries of the persisted state",
		Long:  "inspect loads the persisted manager state read-only and prints its stats and highest ranked entries as JSON or a styled text view.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != inspectFormatJSON && format != inspectFormatText {
				return fmt.Errorf("format must be %q or %q, got %q", inspectFormatJSON, inspectFormatText, format)
			}

			app, err := wireApp(cmd, v, opts, args)
			if err != nil {
				return err
			}
			defer app.close()

			ctx := app.context(cmd.Context())
			path := app.settings.State.Path

			manager, err := app.store.Load(ctx, path)
			if err != nil {
				return fmt.Errorf("load persisted state: %w", err)
			}
			if manager == nil {
				return fmt.Errorf("%w at %s", domain.ErrNoPersistedState, path)
			}

			report := inspectReport{
				Stats: manager.Stats(),
				Top:   manager.Top(app.settings.Response.Top),
			}
			if report.Top == nil {
				report.Top = []domain.RankedEntry{}
			}

			output, err := renderReport(report, format)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	inspectCmd.Flags().StringVar(&format, "format", inspectFormatJSON, "output format: json or text")

	return inspectCmd
}

func renderReport(report inspectReport, format string) (string, error) {
	if format == inspectFormatText {
		output, err := memoryrender.Render(memoryrender.Snapshot{Stats: report.Stats, Top: report.Top})
		if err != nil {
			return "", fmt.Errorf("render report: %w", err)
		}
		return output, nil
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	return string(data), nil
}
