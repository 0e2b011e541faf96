// Package config provides configuration loading and defaults for jobfunnel.
package config

// DefaultPipeline is the pipeline variant used when none is configured.
const DefaultPipeline = "industry"

// DefaultConfigDir is the default location for jobfunnel configuration
// and data.
const DefaultConfigDir = "~/.config/jobfunnel"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "jobfunnel.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultChart holds the default chart rendering options.
var DefaultChart = Chart{
	MaxLabel: 18,
	Width:    30,
}

// DefaultRecommend holds the default recommendation-rule cutoffs.
var DefaultRecommend = Recommend{
	LowInterviewRate: 20,
	LowSuccessRate:   5,
	MinApplications:  5,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
}
