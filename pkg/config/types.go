package config

// Config is the root service configuration. The same struct serves both
// runtimes: Lambda fills it from environment variables via the env tags,
// the local server parses it from a YAML file and validates the tags.
type Config struct {
	TableName string      `yaml:"table_name" env:"BOOKS_TABLE_NAME,required" validate:"required"`
	Stage     string      `yaml:"stage" env:"STAGE" envDefault:"dev" validate:"required"`
	Server    ServerConf  `yaml:"server"`
	Logging   LoggingConf `yaml:"logging"`
	Metrics   MetricsConf `yaml:"metrics"`
}

type ServerConf struct {
	Port int `yaml:"port" env:"PORT" envDefault:"8080" validate:"gte=1,lte=65535"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"omitempty,oneof=trace debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"books_api"`
}
