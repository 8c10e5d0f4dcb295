package main

import (
	"fmt"

	"dareme/internal/app"

	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if err := app.Migrate(cfg); err != nil {
			return err
		}
		fmt.Println("Database is up to date.")
		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if err := app.MigrationStatus(cfg); err != nil {
			return err
		}
		fmt.Println("Database is up to date.")
		return nil
	},
}

var dbKeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Create the backup encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("db-keygen", func(a *app.DareApp) error {
			passphrase, err := readSecret("DAREME_PASSPHRASE", "Passphrase")
			if err != nil {
				return err
			}
			if err := a.SetupBackupKeys(passphrase); err != nil {
				return err
			}
			fmt.Println("Backup keys created.")
			return nil
		})
	},
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Store an encrypted snapshot of the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("db-backup", func(a *app.DareApp) error {
			key, err := a.Backup()
			if err != nil {
				return err
			}
			fmt.Printf("Backup stored as %s\n", key)
			return nil
		})
	},
}

var dbFetchCmd = &cobra.Command{
	Use:   "fetch KEY DEST",
	Short: "Download and decrypt a backup",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp("db-fetch", func(a *app.DareApp) error {
			passphrase, err := readSecret("DAREME_PASSPHRASE", "Passphrase")
			if err != nil {
				return err
			}
			if err := a.FetchBackup(args[0], passphrase, args[1]); err != nil {
				return err
			}
			fmt.Printf("Restored database written to %s\n", args[1])
			return nil
		})
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbKeygenCmd)
	dbCmd.AddCommand(dbBackupCmd)
	dbCmd.AddCommand(dbFetchCmd)
	rootCmd.AddCommand(dbCmd)
}
