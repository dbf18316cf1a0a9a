package cmd

import (
	"fmt"
	"os"

	"github.com/dinesim/dinesim/internal/logger"
	"github.com/dinesim/dinesim/internal/models"
	"github.com/dinesim/dinesim/internal/sim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dinesim",
	Short: "Generates synthetic restaurant directory and table availability data",
	Long: `dinesim is a CLI tool that generates a synthetic restaurant directory with
per-slot table availability over a booking horizon, replays booking demand
against it, and streams the results to console, JSON files, Kafka, Postgres
or Parquet. Subcommands query, book against and recommend from previously
generated snapshots.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		simulator := sim.NewSimulator(cfg)
		if err := simulator.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("restaurants-file", "restaurants.json", "Restaurant directory snapshot path")
	rootCmd.PersistentFlags().String("availability-file", "availability.json", "Availability snapshot path")

	rootCmd.Flags().Int("seed", 0, "Random seed (0 picks one from the clock)")
	rootCmd.Flags().Int("initial-restaurants", 20, "Number of restaurants to generate")
	rootCmd.Flags().Int("days-ahead", 14, "Availability horizon in days, starting today")
	rootCmd.Flags().Int("simulated-bookings", 0, "Number of booking requests to replay after generation")
	rootCmd.Flags().String("output-format", "console", "Output destination: console, json, kafka, postgres or parquet")
	rootCmd.Flags().String("output-path", "output", "Base directory for file outputs")
	rootCmd.Flags().String("output-folder", "data", "Folder under the base directory")
	rootCmd.Flags().String("output-destination", "local", "Where parquet files land: local or s3")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("restaurants_file", rootCmd.PersistentFlags().Lookup("restaurants-file"))
	viper.BindPFlag("availability_file", rootCmd.PersistentFlags().Lookup("availability-file"))
	viper.BindPFlag("seed", rootCmd.Flags().Lookup("seed"))
	viper.BindPFlag("initial_restaurants", rootCmd.Flags().Lookup("initial-restaurants"))
	viper.BindPFlag("days_ahead", rootCmd.Flags().Lookup("days-ahead"))
	viper.BindPFlag("simulated_bookings", rootCmd.Flags().Lookup("simulated-bookings"))
	viper.BindPFlag("output_format", rootCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_path", rootCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("output_folder", rootCmd.Flags().Lookup("output-folder"))
	viper.BindPFlag("output_destination", rootCmd.Flags().Lookup("output-destination"))
	viper.BindPFlag("kafka_broker_list", rootCmd.Flags().Lookup("kafka-broker-list"))
}

func initConfig() {
	viper.AutomaticEnv()
}

// mustLoadConfig loads the config, binds flag overrides and initializes the
// logger; config problems are fatal for every command.
func mustLoadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Initialize(cfg.Verbose)
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
