package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationDir = "migrations"

func newMigrate(rootDir string, dsn string) (*migrate.Migrate, error) {
	source := "file://" + path.Join(rootDir, migrationDir)
	return migrate.New(source, "mysql://"+dsn)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand creates the root command with up, down and force subcommands
func MigrateCommand(dsn string) *cobra.Command {
	root := &cobra.Command{
		Use:   "migrate",
		Short: "database migration",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all up migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "revert the last migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return ignoreNoChange(m.Steps(-1))
			},
		},
		&cobra.Command{
			Use:   "force [version]",
			Short: "force the migration version",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %w", err)
				}
				m, err := newMigrate(".", dsn)
				if err != nil {
					return err
				}
				return m.Force(version)
			},
		},
	)
	return root
}

// MigrateUpForTesting drops everything then applies all migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}
	if err := m.Drop(); err != nil {
		panic(err)
	}

	m, err = newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}
	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}
