package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/Taichi-iskw/tv-guide/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `Manage configuration settings for tvguide.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init [API_URL]",
	Short: "Initialize configuration file",
	Long:  `Create a new configuration file with the channel directory endpoint and favorites store settings.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var apiURL string
		if len(args) > 0 {
			apiURL = args[0]
		}

		if err := config.InitConfig(apiURL); err != nil {
			return err
		}

		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created configuration file: %s\n", configPath)
		fmt.Fprintln(out, "Edit store and database_url or redis_url in this file to keep favorites outside the local file.")

		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the configuration file path and the effective settings, environment overrides included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration file: %s\n\n", configPath)
		fmt.Fprintf(out, "API_URL: %s\n", cfg.APIURL)
		fmt.Fprintf(out, "REQUEST_TIMEOUT: %s\n", cfg.RequestTimeout)
		fmt.Fprintf(out, "COLLATION_LANGUAGE: %s\n", cfg.CollationLanguage)
		fmt.Fprintf(out, "STORE: %s\n", cfg.Store)
		fmt.Fprintf(out, "FAVORITES_PATH: %s\n", cfg.FavoritesPath)
		fmt.Fprintf(out, "DATABASE_URL: %s\n", redact(cfg.DatabaseURL))
		fmt.Fprintf(out, "REDIS_URL: %s\n", redact(cfg.RedisURL))

		return nil
	},
}

// configMigrateCmd represents the config migrate command
var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the favorites table in PostgreSQL",
	Long:  `Apply the database migrations needed by the postgres favorites store.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database_url is not set")
		}

		if err := config.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
		return nil
	},
}

// redact hides the password of a connection URL
func redact(rawURL string) string {
	if rawURL == "" {
		return "(not set)"
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "(invalid)"
	}
	return u.Redacted()
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configMigrateCmd)
}
