package config

import (
	"fmt"
	"math"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jaky1206/renko-chart-demo/pkg/envvar"
	"github.com/jaky1206/renko-chart-demo/pkg/service"
)

const DefaultConfigFile = "renkochart.yaml"

type SourceType string

const (
	SourceTypeFile     SourceType = "file"
	SourceTypeDatabase SourceType = "database"
)

var ErrInvalidConfig = errors.New("invalid config")

type FileConfig struct {
	// Dir is scanned for .csv files when Paths is empty.
	Dir   string      `json:"dir" yaml:"dir"`
	Paths StringSlice `json:"paths,omitempty" yaml:"paths,omitempty"`

	// Format is one of renko, orion and candlestick.
	Format       string `json:"format" yaml:"format"`
	PriorityYear string `json:"priorityYear" yaml:"priorityYear"`
}

type DatabaseConfig struct {
	Driver string `json:"driver" yaml:"driver"`
	DSN    string `json:"dsn" yaml:"dsn"`
	Table  string `json:"table" yaml:"table"`

	// SQLServer builds the dsn of the sqlserver driver when DSN is empty.
	SQLServer *service.SQLServerOptions `json:"sqlserver,omitempty" yaml:"sqlserver,omitempty"`
}

// ConnectionString returns the configured dsn, or the one built from the sqlserver options.
func (c DatabaseConfig) ConnectionString() string {
	if len(c.DSN) == 0 && c.SQLServer != nil {
		return c.SQLServer.DSN()
	}

	return c.DSN
}

type ChartConfig struct {
	Width      int  `json:"width" yaml:"width"`
	Height     int  `json:"height" yaml:"height"`
	ShowLegend bool `json:"showLegend" yaml:"showLegend"`
	ShowVolume bool `json:"showVolume" yaml:"showVolume"`

	// Window is the number of visible slots, 0 shows every slot.
	Window int `json:"window" yaml:"window"`
}

type IndicatorConfig struct {
	Window int `json:"window" yaml:"window"`
}

type ServerConfig struct {
	Bind string `json:"bind" yaml:"bind"`

	// Week starts the server in week mode on this week number. Week mode navigates week
	// numbers of a database source instead of the listed datasets.
	Week int `json:"week,omitempty" yaml:"week,omitempty"`
}

type Config struct {
	BrickSize float64    `json:"brickSize" yaml:"brickSize"`
	Source    SourceType `json:"source" yaml:"source"`

	Files     FileConfig      `json:"files" yaml:"files"`
	Database  DatabaseConfig  `json:"database" yaml:"database"`
	Chart     ChartConfig     `json:"chart" yaml:"chart"`
	Indicator IndicatorConfig `json:"indicator" yaml:"indicator"`
	Server    ServerConfig    `json:"server" yaml:"server"`

	// Persistence is the store of the dataset cache of the web server.
	Persistence *service.PersistenceConfig `json:"persistence,omitempty" yaml:"persistence,omitempty"`
}

func Default() *Config {
	return &Config{
		BrickSize: 10.0,
		Source:    SourceTypeFile,
		Files: FileConfig{
			Dir:          "./data/custom-format/renko-parsed",
			Format:       "renko",
			PriorityYear: "2023",
		},
		Database: DatabaseConfig{
			Driver: "sqlserver",
			Table:  service.DefaultWeeklyTable,
		},
		Chart: ChartConfig{
			Width:      1280,
			Height:     720,
			ShowLegend: false,
			Window:     10,
		},
		Indicator: IndicatorConfig{
			Window: 5,
		},
		Server: ServerConfig{
			Bind: ":8080",
		},
	}
}

// Load reads the yaml config file over the default config.
func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	return LoadBytes(data)
}

func LoadBytes(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadDotenv loads the given dotenv files, missing files are skipped.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "load dotenv file %s", f)
		}

		log.Debugf("loaded dotenv file %s", f)
	}

	return nil
}

// OverrideFromEnv applies the RENKOCHART_* environment variables.
func (c *Config) OverrideFromEnv() {
	if v, ok := envvar.String("RENKOCHART_SOURCE"); ok {
		c.Source = SourceType(v)
	}

	if v, ok := envvar.Float64("RENKOCHART_BRICK_SIZE"); ok {
		c.BrickSize = v
	}

	envvar.SetString("RENKOCHART_DATA_DIR", &c.Files.Dir)
	envvar.SetString("RENKOCHART_FORMAT", &c.Files.Format)
	envvar.SetString("RENKOCHART_DB_DRIVER", &c.Database.Driver)
	envvar.SetString("RENKOCHART_DB_DSN", &c.Database.DSN)
	envvar.SetString("RENKOCHART_DB_TABLE", &c.Database.Table)
	envvar.SetString("RENKOCHART_BIND", &c.Server.Bind)
	envvar.SetBool("RENKOCHART_SHOW_VOLUME", &c.Chart.ShowVolume)
	envvar.SetBool("RENKOCHART_SHOW_LEGEND", &c.Chart.ShowLegend)

	if v, ok := envvar.Int("RENKOCHART_WINDOW"); ok {
		c.Chart.Window = v
	}

	if v, ok := envvar.Int("RENKOCHART_WEEK"); ok {
		c.Server.Week = v
	}
}

func (c *Config) Validate() error {
	if c.BrickSize <= 0 || math.IsNaN(c.BrickSize) || math.IsInf(c.BrickSize, 0) {
		return fmt.Errorf("%w: brickSize must be a positive number, got %v", ErrInvalidConfig, c.BrickSize)
	}

	switch c.Source {
	case SourceTypeFile:
		if len(c.Files.Dir) == 0 && len(c.Files.Paths) == 0 {
			return fmt.Errorf("%w: files.dir or files.paths is required", ErrInvalidConfig)
		}

	case SourceTypeDatabase:
		if len(c.Database.Driver) == 0 {
			return fmt.Errorf("%w: database.driver is required", ErrInvalidConfig)
		}

	default:
		return fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, c.Source)
	}

	if c.Chart.Window < 0 {
		return fmt.Errorf("%w: chart.window can not be negative", ErrInvalidConfig)
	}

	if c.Indicator.Window <= 0 {
		return fmt.Errorf("%w: indicator.window must be positive", ErrInvalidConfig)
	}

	if c.Server.Week < 0 {
		return fmt.Errorf("%w: server.week can not be negative", ErrInvalidConfig)
	}

	if c.Server.Week > 0 && c.Source != SourceTypeDatabase {
		return fmt.Errorf("%w: server.week requires the database source", ErrInvalidConfig)
	}

	return nil
}
