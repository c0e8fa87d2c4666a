// Package cmd 实现 miniDS 的命令行入口
package cmd

import (
	"fmt"
	"os"

	"miniDS/config"
	"miniDS/lib/logger"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.PersistentFlags().String(config.KeyConfig, "", "Path to a config file (toml, yaml or json)")
	lo.Must0(viper.BindPFlag(config.KeyConfig, rootCmd.PersistentFlags().Lookup(config.KeyConfig)))

	rootCmd.Flags().IntP(config.KeyCapacity, "c", config.Properties.Capacity, "Initial capacity of the array list")
	lo.Must0(viper.BindPFlag(config.KeyCapacity, rootCmd.Flags().Lookup(config.KeyCapacity)))

	rootCmd.Flags().IntP(config.KeyElements, "n", config.Properties.Elements, "Number of elements pushed into each structure")
	lo.Must0(viper.BindPFlag(config.KeyElements, rootCmd.Flags().Lookup(config.KeyElements)))

	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.Properties.LogLevel, "Log level (trace, debug, info, warn, error)")
	lo.Must0(viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup(config.KeyLogLevel)))

	rootCmd.PersistentFlags().Bool(config.KeyLogJSON, config.Properties.LogJSON, "Write logs as JSON")
	lo.Must0(viper.BindPFlag(config.KeyLogJSON, rootCmd.PersistentFlags().Lookup(config.KeyLogJSON)))
}

var rootCmd = &cobra.Command{
	Use:   "miniDS",
	Short: "Walk through the linear data structures and log every step",
	Args:  cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Setup(); err != nil {
			return err
		}
		return logger.Setup(config.Properties.LogLevel, config.Properties.LogJSON)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return Walkthrough(config.Properties)
	},
	SilenceUsage: true,
}

// Execute 解析命令行并运行
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
