package main

import (
	"context"
	"os"

	"inspoboard/internal/config"
	"inspoboard/internal/logging"
	"inspoboard/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// @title           Inspiration Board API
// @version         1.0
// @description     API for managing boards and the cards pinned to them.

// @host      localhost:8080
// @BasePath  /

// @schemes http

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "inspoboard",
		Short:        "Boards and cards REST API",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}

	setupFlags(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func setupFlags(cmd *cobra.Command) {
	config.ApplyDefaults(viper.GetViper())
	defaults := config.NewViper()
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to configuration file")
	cmd.PersistentFlags().String("port", defaults.GetString("http.port"), "HTTP listen port")
	cmd.PersistentFlags().String("database-driver", defaults.GetString("database.driver"), "Datastore driver (postgres, sqlite)")
	cmd.PersistentFlags().String("database-path", defaults.GetString("database.path"), "SQLite database path")
	cmd.PersistentFlags().String("log-level", defaults.GetString("log.level"), "Log level (debug, info, warn, error)")

	bindFlag(cmd, "http.port", "port")
	bindFlag(cmd, "database.driver", "database-driver")
	bindFlag(cmd, "database.path", "database-path")
	bindFlag(cmd, "log.level", "log-level")
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

func initConfig() error {
	config.LoadDotEnv()

	if cfgFile == "" {
		return nil
	}
	viper.SetConfigFile(cfgFile)
	return viper.ReadInConfig()
}

func run(ctx context.Context) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	s, err := server.Init(cfg, logger)
	if err != nil {
		logger.Error("❌ Server initialization failed", zap.Error(err))
		return err
	}

	return s.Run(ctx)
}
