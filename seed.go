package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/seeds"
)

func seedCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo survey submissions into a local database",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApplication()
			if err != nil {
				return err
			}
			defer a.close()

			if err := seeds.RunAllSeeds(a.db, a.cat, dir, a.log); err != nil {
				return err
			}
			a.log.Info("seed finished", zap.String("dir", dir))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "internals/seeds", "Seed data directory")
	return cmd
}
