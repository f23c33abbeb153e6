package main

import (
	"os"

	"github.com/spf13/cobra"

	"demandsurvey/internal/interfaces/cli/migrate"
	"demandsurvey/internal/interfaces/cli/server"
)

// @title Demand Survey API
// @version 1.0
// @description Customer product demand survey intake and reporting.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "demandsurvey",
		Short: "Demand survey service",
		Long:  `Collects customer product demand surveys and reports aggregated demand per location.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
