// Package cmd implements the audioreg command line.
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/audioreg/internal/audio"
	"github.com/zjrosen/audioreg/internal/audio/sim"
	"github.com/zjrosen/audioreg/internal/config"
	"github.com/zjrosen/audioreg/internal/log"
	"github.com/zjrosen/audioreg/internal/telemetry"
)

var (
	cfgFile string
	cfg     config.Config

	closeLog          func() error
	shutdownTelemetry telemetry.ShutdownFunc
)

var rootCmd = &cobra.Command{
	Use:   "audioreg",
	Short: "Audio event instance registry driven by Lua scripts",
	Long: `audioreg keeps track of audio event instances attached to world elements
(and ownerless ambient events) and exposes their playback controls to Lua.

Scripts run against a simulated engine serving the events of a bank manifest.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/audioreg/config.yaml)")
	rootCmd.PersistentFlags().String("bank", "", "bank manifest (overrides bank.path)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := v.BindPFlag("bank.path", cmd.Flags().Lookup("bank")); err != nil {
		return err
	}
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}

	loaded, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	closeLog, err = log.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	log.Debug(log.CatConfig, "Configuration loaded", "file", v.ConfigFileUsed(), "bank", cfg.Bank.Path)

	shutdownTelemetry, err = telemetry.Setup(cmd.Context(), cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if shutdownTelemetry != nil {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.ErrorErr(log.CatTelemetry, "Flushing spans failed", err)
		}
	}
	if closeLog != nil {
		return closeLog()
	}
	return nil
}

// newEngine builds the simulated engine for the configured bank and the
// description cache in front of it.
func newEngine(c config.Config) (*sim.Engine, *audio.CachingEngine, error) {
	bank, err := sim.LoadBankFile(c.Bank.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading bank: %w", err)
	}
	engine := sim.NewEngine(bank)
	return engine, audio.NewCachingEngine(engine, c.Bank.DescriptionCacheTTL), nil
}
