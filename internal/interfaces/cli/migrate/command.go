package migrate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"demandsurvey/internal/infrastructure/config"
	"demandsurvey/internal/infrastructure/database"
	"demandsurvey/internal/infrastructure/migration"
	"demandsurvey/internal/infrastructure/repository"
	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/logger"
)

const gooseDialect = "mysql"

var (
	env      string
	steps    int
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and seeding the location catalog.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedLocationsCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newSeedLocationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-locations",
		Short: "Load locations from a YAML file",
		Long:  `Create every location listed in the file. Names already in the catalog are skipped.`,
		RunE:  runSeedLocations,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to the locations YAML file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}

// gooseStrategy returns the versioned strategy, which only exists for MySQL.
func gooseStrategy(cfg *config.Config, log logger.Interface) (*migration.GooseStrategy, error) {
	if cfg.Database.Driver != database.DriverMySQL {
		return nil, fmt.Errorf("versioned migrations require the %s driver, got %q", database.DriverMySQL, cfg.Database.Driver)
	}
	return migration.NewGooseStrategy(nil, "", gooseDialect, log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	manager := migration.NewManager(cfg.Database.Driver, log)
	log.Infow("running up migrations",
		"environment", env,
		"strategy", manager.GetStrategy().GetName(),
	)

	if err := manager.Migrate(database.Get()); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	strategy, err := gooseStrategy(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("checking migration status", "environment", env)

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runSeedLocations(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	seeds, err := migration.LoadLocationSeeds(seedFile)
	if err != nil {
		return err
	}

	repo := repository.NewLocationRepository(database.Get(), log)
	result, err := migration.SeedLocations(context.Background(), repo, seeds, log)
	if err != nil {
		log.Errorw("location seeding failed", "error", err, "created", result.Created)
		return fmt.Errorf("location seeding failed: %w", err)
	}

	fmt.Printf("Locations created: %d, skipped: %d\n", result.Created, result.Skipped)
	return nil
}
