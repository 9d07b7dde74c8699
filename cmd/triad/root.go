package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "triad",
	Short: "triad fans one question out to several LLM providers and merges their answers",
	Long: `triad is a backend service that sends a single user query to multiple
LLM providers, collects their independent answers, and returns one
synthesized answer alongside the raw per-provider output.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.SetDefault("listen_addr", ":8080")
		viper.SetDefault("default_summarizer", "openai")

		// Provider credentials and overrides come from the environment.
		viper.BindEnv("openai_api_key", "OPENAI_API_KEY")
		viper.BindEnv("deepseek_api_key", "DEEPSEEK_API_KEY")
		viper.BindEnv("gemini_api_key", "GEMINI_API_KEY")
		viper.BindEnv("openai_model", "OPENAI_MODEL")
		viper.BindEnv("deepseek_model", "DEEPSEEK_MODEL")
		viper.BindEnv("gemini_model", "GEMINI_MODEL")
		viper.BindEnv("openai_base_url", "OPENAI_BASE_URL")
		viper.BindEnv("deepseek_base_url", "DEEPSEEK_BASE_URL")
		viper.BindEnv("gemini_base_url", "GEMINI_BASE_URL")
		viper.BindEnv("listen_addr", "TRIAD_LISTEN_ADDR")
		viper.BindEnv("default_summarizer", "TRIAD_SUMMARIZER")
		viper.BindEnv("static_dir", "TRIAD_STATIC_DIR")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.triad.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".triad")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of triad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("triad v0.1.0")
	},
}
