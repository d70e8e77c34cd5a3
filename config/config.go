package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "ECOM_ADMIN_CONFIG_FILE"

type admin struct {
	Token string `mapstructure:"token"`
}

type backend struct {
	BaseURL     string        `mapstructure:"base_url"`
	Token       string        `mapstructure:"token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type consumers struct {
	FilterProductGroup string `mapstructure:"filter_product_group"`
}

type topics struct {
	AdminEvents         string `mapstructure:"admin_events"`
	FilterProductStream string `mapstructure:"filter_product_stream"`
}

type brokerTLS struct {
	CAFile   string `mapstructure:"ca_file"`
	CertFile string `mapstructure:"cert_file"`
	KeyFile  string `mapstructure:"key_file"`
}

// Enabled reports whether all the files of the mutual TLS are set.
func (t brokerTLS) Enabled() bool {
	return t.CAFile != "" && t.CertFile != "" && t.KeyFile != ""
}

type brokerSASL struct {
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
}

type broker struct {
	SeedBrokers        []string   `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string   `mapstructure:"schema_registry_urls"`
	Topics             topics     `mapstructure:"topics"`
	Consumers          consumers  `mapstructure:"consumers"`
	TLS                brokerTLS  `mapstructure:"tls"`
	SASL               brokerSASL `mapstructure:"sasl"`
}

type archive struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

type uploads struct {
	MaxImageBytes int64 `mapstructure:"max_image_bytes"`
}

type Config struct {
	LogLevel           slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr     string        `mapstructure:"http_server_addr"`
	HTTPRequestTimeout time.Duration `mapstructure:"http_request_timeout"`
	SQLDB              string        `mapstructure:"sql_db"`
	Admin              admin         `mapstructure:"admin"`
	Backend            backend       `mapstructure:"backend"`
	Broker             broker        `mapstructure:"broker"`
	Archive            archive       `mapstructure:"archive"`
	Uploads            uploads       `mapstructure:"uploads"`
}

func Load() Config {
	cfg, err := LoadFile(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

// LoadFile reads the config file at path. Keys missing from the file keep
// their defaults, unknown keys are an error.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "INFO")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("http_request_timeout", "30s")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.max_attempts", 1)
	v.SetDefault("broker.topics.admin_events", "admin-events")
	v.SetDefault("broker.topics.filter_product_stream", "filter-product-stream")
	v.SetDefault("broker.consumers.filter_product_group", "filter-product")
	v.SetDefault("archive.region", "us-east-1")
	v.SetDefault("uploads.max_image_bytes", 5<<20)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "***"
}

// maskDSN hides the password of a postgres URL.
func maskDSN(dsn string) string {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return mask(dsn)
	}
	userinfo, host, ok := strings.Cut(rest, "@")
	if !ok {
		return dsn
	}
	user, _, hasPass := strings.Cut(userinfo, ":")
	if !hasPass {
		return dsn
	}
	return scheme + "://" + user + ":***@" + host
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	HTTPRequestTimeout=%q
	SQLDB=%q
	AdminToken=%q

	Backend:
	BaseURL=%q
	Token=%q
	Timeout=%q
	MaxAttempts=%d

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		AdminEvents=%q
		FilterProductStream=%q
	Consumers:
		FilterProductGroup=%q
	TLS=%t
	SASLUser=%q

	Archive:
	Bucket=%q
	Prefix=%q
	Region=%q
	Endpoint=%q

	Uploads:
	MaxImageBytes=%d

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.HTTPRequestTimeout,
		maskDSN(c.SQLDB),
		mask(c.Admin.Token),
		c.Backend.BaseURL,
		mask(c.Backend.Token),
		c.Backend.Timeout,
		c.Backend.MaxAttempts,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.AdminEvents,
		c.Broker.Topics.FilterProductStream,
		c.Broker.Consumers.FilterProductGroup,
		c.Broker.TLS.Enabled(),
		c.Broker.SASL.User,
		c.Archive.Bucket,
		c.Archive.Prefix,
		c.Archive.Region,
		c.Archive.Endpoint,
		c.Uploads.MaxImageBytes,
	)
}
