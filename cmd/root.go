package cmd

import (
	"errors"
	"fmt"
	"os"

	"pricecat/cmd/catalog"
	"pricecat/cmd/list"
	"pricecat/cmd/version"
	"pricecat/internal/config"
	"pricecat/internal/logging"
	"pricecat/internal/output"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	var configFile string

	// Initialize config
	if err := config.InitConfig(); err != nil {
		return err
	}

	rootCmd := &cobra.Command{
		Use:   "pricecat",
		Short: "Query the AWS pricing catalog",
		Long: `pricecat is a command-line tool for querying the AWS Pricing API.
It lists priceable services, their attributes and attribute values, and
looks up product pricing records by exact-match filters. Every command
prints a single JSON document to stdout; failures are reported as
{"error": message} on the same stream.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set config file if specified
			if configFile != "" {
				if err := config.SetConfigFile(configFile); err != nil {
					return err
				}
			}
			config.Apply()

			// Configure logging based on resolved config
			logFormat := logging.Text
			if config.Config.LogFormat == "json" {
				logFormat = logging.JSON
			}
			logging.Configure(logging.LogConfig{
				Level:  logging.ParseLevel(viper.GetString("app.log_level")),
				Format: logFormat,
			})
			return nil
		},
		// Fallback for bare and unrecognized invocations. Both keep the
		// JSON error contract instead of cobra's usage error.
		RunE: func(cmd *cobra.Command, args []string) error {
			emitter := output.NewEmitter(os.Stdout, config.Config.Pretty, config.Config.StrictExit)
			if len(args) == 0 {
				return emitter.Fail("Missing command")
			}
			return emitter.Fail("Unknown command")
		},
	}

	// Add global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to config file")
	flags.StringP("profile", "p", "", "AWS profile to use (empty for the default credential chain)")
	flags.String("region", "us-east-1", "Region the Pricing API endpoint is addressed in")
	flags.String("log-format", "text", "Log output format (text or json)")
	flags.String("log-level", "INFO", "Set logging level (DEBUG, INFO, WARN, ERROR)")
	flags.Bool("pretty", false, "Indent JSON output with two spaces")
	flags.Bool("strict-exit", false, "Exit nonzero when an error body is emitted")

	for key, flag := range map[string]string{
		"aws.profile":        "profile",
		"aws.region":         "region",
		"app.log_format":     "log-format",
		"app.log_level":      "log-level",
		"output.pretty":      "pretty",
		"output.strict_exit": "strict-exit",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	// Add commands
	rootCmd.AddCommand(catalog.NewServicesCmd())
	rootCmd.AddCommand(catalog.NewServiceAttributesCmd())
	rootCmd.AddCommand(catalog.NewAttributeValuesCmd())
	rootCmd.AddCommand(catalog.NewProductsCmd())
	rootCmd.AddCommand(list.NewProfilesCmd())
	rootCmd.AddCommand(version.NewVersionCmd())

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, output.ErrReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
