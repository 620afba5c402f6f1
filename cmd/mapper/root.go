package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mapper",
	Short: "Map regulatory filing tables onto a canonical fact vocabulary",
	Long: `mapper standardizes extracted financial statement tables.

Each source row (an XBRL concept plus its human label and values) is
matched against a fixed per-statement vocabulary using taxonomy and label
patterns, then validated against historical filings and summation
structure. Ambiguous rows go to a local LLM for tie-break. The output is
a fixed-shape table, one row per canonical fact.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./finmap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("finmap")
	}
	viper.SetEnvPrefix("FINMAP")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
