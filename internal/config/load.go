package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults for the genome parsing benchmark.
const (
	DefaultGenomeFile  = "./.data/GCA_025448055.1_ASM2544805v1_genomic.fna.gz"
	DefaultIterations  = 10
	DefaultRecordLimit = 20000
)

// Config is the typed view of the loaded settings.
type Config struct {
	GenomeFile  string
	Iterations  int
	RecordLimit int
	Verbose     bool
	LogFile     string
	MetricsFile string
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("genome_file", DefaultGenomeFile)
	viper.SetDefault("iterations", DefaultIterations)
	viper.SetDefault("record_limit", DefaultRecordLimit)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")
	viper.SetDefault("metrics_file", "")
}

// Load initializes the configuration from file and environment variables.
// A missing config file is not an error; an unreadable one is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("FASTABENCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// FromViper returns the current settings.
func FromViper() Config {
	return Config{
		GenomeFile:  viper.GetString("genome_file"),
		Iterations:  viper.GetInt("iterations"),
		RecordLimit: viper.GetInt("record_limit"),
		Verbose:     viper.GetBool("verbose"),
		LogFile:     viper.GetString("log_file"),
		MetricsFile: viper.GetString("metrics_file"),
	}
}
