package app

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"
)

type PaperStat struct {
	Year  string `toml:"year" json:"year"`
	Count int    `toml:"count" json:"count"`
}

type ResearchArea struct {
	Area       string `toml:"area" json:"area"`
	Percentage int    `toml:"percentage" json:"percentage"`
}

type Config struct {
	Server struct {
		Port        string   `toml:"port"`
		CORSOrigins []string `toml:"cors_origins"`
	} `toml:"server"`

	Database struct {
		DSN           string `toml:"dsn"`
		MigrationsDir string `toml:"migrations_dir"`
	} `toml:"database"`

	Display struct {
		TimestampFormat string `toml:"timestamp_format"`
		EventDateFormat string `toml:"event_date_format"`
	} `toml:"display"`

	Cache struct {
		RedisURL   string `toml:"redis_url"`
		StatsKey   string `toml:"stats_key"`
		TTLSeconds int    `toml:"ttl_seconds"`
	} `toml:"cache"`

	Stats struct {
		PaperStats    []PaperStat    `toml:"paper_stats"`
		ResearchAreas []ResearchArea `toml:"research_areas"`
	} `toml:"stats"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}

	// DATABASE_URL wins over the config file, same as the website deploys
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		config.Database.DSN = dsn
	}

	config.applyDefaults()

	logger.Debug.Printf("Loaded stats config: %+v", config.Stats)

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Database.MigrationsDir == "" {
		c.Database.MigrationsDir = "./migrations"
	}
	if c.Display.TimestampFormat == "" {
		c.Display.TimestampFormat = "2006-01-02 15:04:05"
	}
	if c.Display.EventDateFormat == "" {
		c.Display.EventDateFormat = "2006-01-02 15:04"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Cache.StatsKey == "" {
		c.Cache.StatsKey = "clubdesk:stats"
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 60
	}
	if len(c.Stats.PaperStats) == 0 {
		c.Stats.PaperStats = []PaperStat{
			{Year: "2020", Count: 2},
			{Year: "2021", Count: 3},
			{Year: "2022", Count: 4},
			{Year: "2025", Count: 12},
		}
	}
	if len(c.Stats.ResearchAreas) == 0 {
		c.Stats.ResearchAreas = []ResearchArea{
			{Area: "Brain-computer interfaces", Percentage: 35},
			{Area: "Artificial intelligence", Percentage: 25},
			{Area: "Neuroscience", Percentage: 20},
			{Area: "Medical applications", Percentage: 15},
			{Area: "Other", Percentage: 5},
		}
	}
}
