package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type EpgConfig struct {
	FeedURL             string        `yaml:"feedUrl" validate:"required|fullUrl"`
	RawPath             string        `yaml:"rawPath" validate:"required|unixPath"`
	RawMaxAge           time.Duration `yaml:"rawMaxAge" validate:"required|min:1"`
	FetchTimeout        time.Duration `yaml:"fetchTimeout" validate:"required|min:1"`
	UserAgent           string        `yaml:"userAgent"`
	RefreshTimeout      time.Duration `yaml:"refreshTimeout" validate:"required|min:1"`
	AutoRefreshInterval time.Duration `yaml:"autoRefreshInterval"`
}

type SnapshotConfig struct {
	FilePath  string        `yaml:"filePath" validate:"required|unixPath"`
	Freshness time.Duration `yaml:"freshness" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Epg       EpgConfig      `yaml:"epg"`
	Snapshot  SnapshotConfig `yaml:"snapshot"`
	WebServer Server         `yaml:"webServer"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
