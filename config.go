package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the runtime configuration of the serve command.
type Config struct {
	Port     string
	DiagAddr string
	TestMode bool
	DataFile string
	LogLevel string
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// PersistenceEnabled reports whether the store is loaded from and saved to DataFile.
func (c Config) PersistenceEnabled() bool {
	return !c.TestMode && c.DataFile != ""
}

// initConfig loads .env files and binds environment variables. PORT and
// IS_TEST_MODE keep their historical names; everything else uses FORUM_.
func initConfig() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	viper.SetEnvPrefix(ServiceName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("port", "PORT", "FORUM_PORT")
	_ = viper.BindEnv("test-mode", "IS_TEST_MODE", "FORUM_TEST_MODE")
}

func addServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("port", "4000", "port the API listens on")
	flags.String("diag-addr", ":9999", "address of the diagnostics listener serving /metrics")
	flags.Bool("test-mode", false, "disable loading and saving the database file")
	flags.String("data-file", "database.json", "file the store is persisted to; empty disables persistence")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:     viper.GetString("port"),
		DiagAddr: viper.GetString("diag-addr"),
		TestMode: testMode(cmd),
		DataFile: viper.GetString("data-file"),
		LogLevel: viper.GetString("log-level"),
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("port is required")
	}

	return cfg, nil
}

// testMode follows the --test-mode flag when it is given. Otherwise any
// non-empty IS_TEST_MODE enables test mode, whatever its value.
func testMode(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("test-mode") {
		return viper.GetBool("test-mode")
	}
	if os.Getenv("IS_TEST_MODE") != "" {
		return true
	}

	return viper.GetBool("test-mode")
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}
