package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tallgrass-systems/jobfunnel/internal/recommend"
)

// Config is the top-level jobfunnel configuration.
type Config struct {
	Pipeline  string    `mapstructure:"pipeline"`
	DataDir   string    `mapstructure:"data_dir"`
	Chart     Chart     `mapstructure:"chart"`
	Recommend Recommend `mapstructure:"recommend"`
	Output    Output    `mapstructure:"output"`
}

// Chart defines chart rendering options.
type Chart struct {
	// MaxLabel bounds resume-name labels; longer names are truncated
	// with an ellipsis.
	MaxLabel int `mapstructure:"max_label"`

	// Width is the bar width in characters.
	Width int `mapstructure:"width"`
}

// Recommend defines the recommendation-rule cutoffs.
type Recommend struct {
	LowInterviewRate float64 `mapstructure:"low_interview_rate"`
	LowSuccessRate   float64 `mapstructure:"low_success_rate"`
	MinApplications  int     `mapstructure:"min_applications"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("pipeline", DefaultPipeline)
	v.SetDefault("data_dir", DefaultConfigDir)
	v.SetDefault("chart.max_label", DefaultChart.MaxLabel)
	v.SetDefault("chart.width", DefaultChart.Width)
	v.SetDefault("recommend.low_interview_rate", DefaultRecommend.LowInterviewRate)
	v.SetDefault("recommend.low_success_rate", DefaultRecommend.LowSuccessRate)
	v.SetDefault("recommend.min_applications", DefaultRecommend.MinApplications)
	v.SetDefault("output.color", DefaultOutput.Color)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.DataDir = expandPath(cfg.DataDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite database.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DefaultDBName)
}

// Thresholds converts the configured cutoffs into the recommendation
// engine's threshold set.
func (c *Config) Thresholds() recommend.Thresholds {
	return recommend.Thresholds{
		LowInterviewRate:        c.Recommend.LowInterviewRate,
		LowSuccessRate:          c.Recommend.LowSuccessRate,
		MinApplicationsForStale: c.Recommend.MinApplications,
	}
}
