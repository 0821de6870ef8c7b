package main

import (
	"fmt"
	"os"

	"vaccinehub.app/configs"
	"vaccinehub.app/configs/configsdatabase"
	"vaccinehub.app/configs/configslog"
	"vaccinehub.app/database"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate, seed bool

	cmd := &cobra.Command{
		Use:           "dbinit",
		Short:         "Veritabanı başlatma işlemini çalıştırır (migrasyon ve/veya seed)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := configs.Load(); err != nil {
				return err
			}
			configslog.InitLogger()
			defer configslog.SyncLogger()

			configsdatabase.InitDB()
			defer configsdatabase.CloseDB()

			configslog.SLog.Info("Veritabanı başlatma işlemi çalıştırılıyor...")
			if err := database.Initialize(configsdatabase.GetDB(), migrate, seed); err != nil {
				return err
			}
			configslog.SLog.Info("Veritabanı başlatma işlemi tamamlandı.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "Migrasyonları çalıştır")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seeder'ları çalıştır")
	return cmd
}
