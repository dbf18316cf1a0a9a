package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Config struct {
	Seed               int           `mapstructure:"seed"`
	InitialRestaurants int           `mapstructure:"initial_restaurants"`
	DaysAhead          int           `mapstructure:"days_ahead"`
	SimulatedBookings  int           `mapstructure:"simulated_bookings"`
	RestaurantsFile    string        `mapstructure:"restaurants_file"`
	AvailabilityFile   string        `mapstructure:"availability_file"`
	OutputFormat       string        `mapstructure:"output_format"`
	OutputPath         string        `mapstructure:"output_path"`
	OutputFolder       string        `mapstructure:"output_folder"`
	OutputDestination  string        `mapstructure:"output_destination"`
	KafkaBrokerList    string        `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs   int           `mapstructure:"session_timeout_ms"`
	QueryTimeout       time.Duration `mapstructure:"query_timeout"`
	KnowledgeBaseID    string        `mapstructure:"knowledge_base_id"`
	AWSRegion          string        `mapstructure:"aws_region"`
	Verbose            bool          `mapstructure:"verbose"`

	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
	Database     DatabaseConfig     `mapstructure:"database"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()

	viper.SetDefault("initial_restaurants", 20)
	viper.SetDefault("days_ahead", 14)
	viper.SetDefault("simulated_bookings", 0)
	viper.SetDefault("restaurants_file", "restaurants.json")
	viper.SetDefault("availability_file", "availability.json")
	viper.SetDefault("output_format", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("query_timeout", "30s")

	if err := viper.ReadInConfig(); err != nil {
		// a missing config file is fine, flags and defaults cover everything;
		// a file that exists but fails to parse is not
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
