package main

import (
	"github.com/23CSE311-SeeFood/seeFood-Backend/configs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd(v *viper.Viper) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configs.LoadConfig(v)
			if err != nil {
				return err
			}
			log := configs.NewLogger(cfg.LogLevel, cfg.LogFormat)

			db, err := configs.ConnectDB(cfg, log)
			if err != nil {
				return err
			}
			defer configs.CloseDB(db)

			if err := configs.SetupDatabase(db); err != nil {
				return err
			}
			log.Info("schema migrated")

			if seed {
				return configs.SeedDemoData(db, log)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "insert demo canteens and items into an empty database")
	return cmd
}
