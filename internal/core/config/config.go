package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the entity store and pub/sub connection.
	Redis RedisConfig `mapstructure:",squash"`

	// Events holds the event publisher settings.
	Events EventsConfig `mapstructure:",squash"`

	// Proxy holds the optional egress proxy used for webhook deliveries.
	Proxy ProxyConfig `mapstructure:",squash"`

	// Custody holds the transition rule switches.
	Custody CustodyConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" required:"true"`
}

// EventsConfig selects where emitted events are delivered.
type EventsConfig struct {
	// Channel is the Redis pub/sub channel events are published on.
	Channel string `mapstructure:"EVENTS_CHANNEL" default:"custody.events"`
	// KafkaBrokers is a comma separated broker list. Empty disables Kafka.
	KafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// KafkaTopic is the topic events are written to.
	KafkaTopic string `mapstructure:"KAFKA_TOPIC" default:"shipment-custody-events"`
	// WebhookURL receives every event as a JSON POST. Empty disables webhooks.
	WebhookURL string `mapstructure:"WEBHOOK_URL"`
	// WebhookTimeoutSeconds bounds each webhook delivery.
	WebhookTimeoutSeconds int `mapstructure:"WEBHOOK_TIMEOUT_SECONDS" default:"5"`
}

// ProxyConfig holds the egress proxy credentials.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOST"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// CustodyConfig holds the switches for the custody transition rules.
type CustodyConfig struct {
	// StrictReceive admits receive only for shipments in transit.
	StrictReceive bool `mapstructure:"STRICT_RECEIVE" default:"false"`
	// SeedDemo runs the demo setup transaction on startup.
	SeedDemo bool `mapstructure:"SEED_DEMO" default:"false"`
}

// KafkaBrokerList splits KafkaBrokers into its non-empty entries.
func (e EventsConfig) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(e.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// walkFields calls fn for every leaf field of the struct pointed to by config,
// descending into nested (squashed) structs.
func walkFields(config interface{}, fn func(field reflect.StructField, value reflect.Value) error) error {
	val := reflect.Indirect(reflect.ValueOf(config))
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field, value := t.Field(i), val.Field(i)
		if field.Type.Kind() == reflect.Struct {
			if err := walkFields(value.Addr().Interface(), fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(field, value); err != nil {
			return err
		}
	}
	return nil
}

// processTags binds every mapstructure key to the environment and registers its default.
func processTags(v *viper.Viper, config interface{}) error {
	return walkFields(config, func(field reflect.StructField, _ reflect.Value) error {
		key := field.Tag.Get("mapstructure")
		if key == "" {
			return nil
		}
		_ = v.BindEnv(key)
		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
		return nil
	})
}

// validateRequired rejects zero values in fields tagged required:"true".
func validateRequired(config interface{}) error {
	return walkFields(config, func(field reflect.StructField, value reflect.Value) error {
		if field.Tag.Get("required") == "true" && value.IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
		return nil
	})
}
