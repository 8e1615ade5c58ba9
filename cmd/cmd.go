package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/helpdeskhq/portal-core/internal"
	"github.com/helpdeskhq/portal-core/internal/catalog"
	"github.com/helpdeskhq/portal-core/internal/directory"
	"github.com/helpdeskhq/portal-core/internal/storage"
	"github.com/helpdeskhq/portal-core/pkg/logger"
)

var (
	clearData bool
)

var rootCmd = &cobra.Command{
	Use:   "portal-core",
	Short: "Knowledge-base portal core",
	Long:  `Content catalog, role directory, and permission core of the knowledge-base portal.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if appErr, ok := internal.IsAppError(err); ok {
			fmt.Println(appErr.GetDetailedMessage())
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

// Dependencies bundles the singletons every subcommand drives. The
// directory and catalog services are the single logical writer over the
// store; subcommands never mutate state any other way.
type Dependencies struct {
	Config    *internal.Config
	Store     *storage.Store
	Catalog   *catalog.Service
	Directory *directory.Service
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	log := logger.L()

	store, err := storage.Open(cfg.Storage.Path, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return &Dependencies{
		Config:    cfg,
		Store:     store,
		Catalog:   catalog.NewService(store, log),
		Directory: directory.NewService(store, cfg.Directory.ViewerRoleID, log),
	}, nil
}

func init() {
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(searchCmd)
}
