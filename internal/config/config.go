package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Alerts    AlertsConfig    `mapstructure:"alerts"`
	Batch     BatchConfig     `mapstructure:"batch"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
}

type ServerConfig struct {
	Port         int             `mapstructure:"port"`
	ReadTimeout  time.Duration   `mapstructure:"readTimeout"`
	WriteTimeout time.Duration   `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration   `mapstructure:"idleTimeout"`
	RateLimit    RateLimitConfig `mapstructure:"rateLimit"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type MetricsConfig struct {
	Path string `mapstructure:"path"`
}

// GeneratorConfig controls the synthetic dataset. The seed pins the whole
// population; changing it changes every figure on the dashboard.
type GeneratorConfig struct {
	Seed      int64 `mapstructure:"seed"`
	LoanCount int   `mapstructure:"loanCount"`
}

// AlertsConfig holds the delinquency-rate thresholds, in percent.
type AlertsConfig struct {
	WarningThreshold  float64 `mapstructure:"warningThreshold"`
	CriticalThreshold float64 `mapstructure:"criticalThreshold"`
}

type BatchConfig struct {
	RefreshSchedule string        `mapstructure:"refreshSchedule"`
	RefreshTimeout  time.Duration `mapstructure:"refreshTimeout"`
}

type RabbitMQConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	ExchangeName string `mapstructure:"exchangeName"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 15*time.Second)
	viper.SetDefault("server.writeTimeout", 15*time.Second)
	viper.SetDefault("server.idleTimeout", 60*time.Second)
	viper.SetDefault("server.rateLimit.enabled", true)
	viper.SetDefault("server.rateLimit.rps", 10)
	viper.SetDefault("server.rateLimit.burst", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("metrics.path", "/metrics")
	viper.SetDefault("generator.seed", 42)
	viper.SetDefault("generator.loanCount", 200)
	viper.SetDefault("alerts.warningThreshold", 5.0)
	viper.SetDefault("alerts.criticalThreshold", 10.0)
	viper.SetDefault("batch.refreshSchedule", "0 6 * * *")
	viper.SetDefault("batch.refreshTimeout", 5*time.Minute)
	viper.SetDefault("rabbitmq.exchangeName", "credit-dashboard")

	if err := viper.ReadInConfig(); err != nil {
		// Running on defaults and environment alone is fine; only a malformed
		// config file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
