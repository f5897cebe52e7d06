package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "job-hunter"
)

type Config struct {
	Resume     *ResumeConfig     `mapstructure:"resume"`
	Search     *SearchConfig     `mapstructure:"search"`
	Sources    *SourcesConfig    `mapstructure:"sources"`
	Relaxation *RelaxationConfig `mapstructure:"relaxation"`
	Materials  *MaterialsConfig  `mapstructure:"materials"`
	AI         *AIConfig         `mapstructure:"ai"`
}

type ResumeConfig struct {
	File string `mapstructure:"file"`
}

type SearchConfig struct {
	Keywords             []string `mapstructure:"keywords"`
	ExcludeTitleKeywords []string `mapstructure:"exclude-title-keywords"`
	MinScore             float64  `mapstructure:"min-score"`
	MaxAgeDays           int      `mapstructure:"max-age-days"`
	RemoteScope          string   `mapstructure:"remote-scope"`
}

type SourcesConfig struct {
	TimeoutSeconds int `mapstructure:"timeout-seconds"`
	Concurrency    int `mapstructure:"concurrency"`
	PerSourceLimit int `mapstructure:"per-source-limit"`
}

type RelaxationConfig struct {
	RecencyFallbackDays int     `mapstructure:"recency-fallback-days"`
	RecencyMinResults   int     `mapstructure:"recency-min-results"`
	MinResults          int     `mapstructure:"min-results"`
	ScoreStep           float64 `mapstructure:"score-step"`
	ScoreStepFloor      float64 `mapstructure:"score-step-floor"`
	ScoreFloor          float64 `mapstructure:"score-floor"`
	TopN                int     `mapstructure:"top-n"`
}

type MaterialsConfig struct {
	ApplicantName string `mapstructure:"applicant-name"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKey       string `mapstructure:"api-key"`
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "job-hunter is a cli that aggregates remote job boards, ranks listings against your resume and drafts application materials",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is job-hunter.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// flags and defaults can carry a run without a config file, but a
		// present-and-broken one must not be ignored silently
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// nil sections become empty ones so the run command can rely on them
	if config.Resume == nil {
		config.Resume = &ResumeConfig{}
	}
	if config.Search == nil {
		config.Search = &SearchConfig{}
	}
	if config.Sources == nil {
		config.Sources = &SourcesConfig{}
	}
	if config.Relaxation == nil {
		config.Relaxation = &RelaxationConfig{}
	}
	if config.Materials == nil {
		config.Materials = &MaterialsConfig{}
	}

	return &config, nil
}
