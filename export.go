package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/features/surveys/reports/model"
)

func exportCmd() *cobra.Command {
	var (
		school string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a school's report to a file",
		Long: `Builds the same document served by /api/reports/:school/{pdf,xlsx}
and writes it to disk. Leave --school empty for the all-schools report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFormat(format)
			if err != nil {
				return err
			}
			if out == "" {
				out = model.FileName(school, f)
			}
			return runExport(cmd.Context(), school, f, out)
		},
	}

	cmd.Flags().StringVarP(&school, "school", "s", "", "School name (institucion_educativa)")
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "Output format (pdf, xlsx)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default informe_<school>.<format>)")
	return cmd
}

func runExport(ctx context.Context, school string, f model.Format, out string) error {
	a, err := newApplication()
	if err != nil {
		return err
	}
	defer a.close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancel()

	if err := a.ping(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	data, err := a.exporter.Export(ctx, school, f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	a.log.Info("report written", zap.String("file", out), zap.Int("bytes", len(data)))
	return nil
}
