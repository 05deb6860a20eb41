package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustGuard/pkg/domain/moderation"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Model    ModelConfig    `mapstructure:"model"`
	Limits   LimitsConfig   `mapstructure:"limits"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Cors     CorsConfig     `mapstructure:"cors"`
	Board    BoardConfig    `mapstructure:"board"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

type ServerConfig struct {
	Type         string        `mapstructure:"type"`
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	BoardPort    int           `mapstructure:"board_port"`
	MetricsPort  int           `mapstructure:"metrics_port"`
	BodyLimit    int           `mapstructure:"body_limit"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type AuthConfig struct {
	ApiKey string `mapstructure:"api_key"`
}

type ModelConfig struct {
	Name          string                 `mapstructure:"name"`
	Family        string                 `mapstructure:"family"`
	Provider      string                 `mapstructure:"provider"`
	BaseURL       string                 `mapstructure:"base_url"`
	ApiKey        string                 `mapstructure:"api_key"`
	MaxNewTokens  int                    `mapstructure:"max_new_tokens"`
	ChatMaxTokens int                    `mapstructure:"chat_max_tokens"`
	Options       map[string]interface{} `mapstructure:"options"`
	Aws           AwsConfig              `mapstructure:"aws"`
	Azure         AzureConfig            `mapstructure:"azure"`

	// ResolvedFamily is derived once in Load.
	ResolvedFamily moderation.Family `mapstructure:"-"`
}

type AwsConfig struct {
	Region       string `mapstructure:"region"`
	AccessKey    string `mapstructure:"access_key"`
	SecretKey    string `mapstructure:"secret_key"`
	SessionToken string `mapstructure:"session_token"`
	RoleARN      string `mapstructure:"role_arn"`
	UseRole      bool   `mapstructure:"use_role"`
}

type AzureConfig struct {
	Endpoint           string `mapstructure:"endpoint"`
	ApiVersion         string `mapstructure:"api_version"`
	UseManagedIdentity bool   `mapstructure:"use_managed_identity"`
}

type LimitsConfig struct {
	MaxPromptChars  int `mapstructure:"max_prompt_chars"`
	MaxHistoryTurns int `mapstructure:"max_history_turns"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnableLabels  bool `mapstructure:"enable_labels"`
}

type CorsConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	MaxAge           int      `mapstructure:"max_age"`
}

type BoardConfig struct {
	ModerationEnabled bool          `mapstructure:"moderation_enabled"`
	SlmURL            string        `mapstructure:"slm_url"`
	SlmApiKey         string        `mapstructure:"slm_api_key"`
	SlmTimeout        time.Duration `mapstructure:"slm_timeout"`
	BreakerFailures   uint32        `mapstructure:"breaker_failures"`
	BreakerTimeout    time.Duration `mapstructure:"breaker_timeout"`
	SessionSecret     string        `mapstructure:"session_secret"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	DefaultUser       string        `mapstructure:"default_user"`
	UserCacheSize     int           `mapstructure:"user_cache_size"`
	MaxCommentChars   int           `mapstructure:"max_comment_chars"`
	EventsChannel     string        `mapstructure:"events_channel"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Topic   string `mapstructure:"topic"`
}

var (
	ErrMissingApiKey = errors.New("auth.api_key (API_KEY) must not be empty")
	ErrInvalidLimits = errors.New("limits must be positive")
)

// legacyEnv maps keys to the variable names the service has always read.
var legacyEnv = map[string]string{
	"auth.api_key":             "API_KEY",
	"model.name":               "MODEL_NAME",
	"board.slm_url":            "SLM_API_URL",
	"board.slm_api_key":        "SLM_API_KEY",
	"board.moderation_enabled": "SLM_MODERATION_ENABLED",
}

var globalConfig Config

// Load reads config.yaml from configPath (optional), applies environment
// overrides and stores the result for GetConfig.
func Load(configPath string) error {
	cfg, err := Read(viper.New(), configPath)
	if err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func Read(v *viper.Viper, configPath string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaultValues(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.type", "api")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.board_port", 3000)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit", 1<<20)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 120*time.Second)

	v.SetDefault("auth.api_key", "changeme")

	v.SetDefault("model.name", "Qwen/Qwen1.5-1.8B")
	v.SetDefault("model.family", "")
	v.SetDefault("model.provider", "huggingface")
	v.SetDefault("model.base_url", "http://localhost:8080")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.max_new_tokens", 4)
	v.SetDefault("model.chat_max_tokens", 16)
	v.SetDefault("model.options", map[string]interface{}{})
	v.SetDefault("model.aws.region", "us-east-1")
	v.SetDefault("model.aws.access_key", "")
	v.SetDefault("model.aws.secret_key", "")
	v.SetDefault("model.aws.session_token", "")
	v.SetDefault("model.aws.role_arn", "")
	v.SetDefault("model.aws.use_role", false)
	v.SetDefault("model.azure.endpoint", "")
	v.SetDefault("model.azure.api_version", "")
	v.SetDefault("model.azure.use_managed_identity", false)

	v.SetDefault("limits.max_prompt_chars", 4096)
	v.SetDefault("limits.max_history_turns", 64)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_labels", true)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_credentials", true)
	v.SetDefault("cors.allow_methods", []string{"GET", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Authorization", "Content-Type"})
	v.SetDefault("cors.max_age", 600)

	v.SetDefault("board.moderation_enabled", true)
	v.SetDefault("board.slm_url", "http://localhost:8000")
	v.SetDefault("board.slm_api_key", "changeme")
	v.SetDefault("board.slm_timeout", 2*time.Second)
	v.SetDefault("board.breaker_failures", 5)
	v.SetDefault("board.breaker_timeout", 30*time.Second)
	v.SetDefault("board.session_secret", "")
	v.SetDefault("board.session_ttl", 24*time.Hour)
	v.SetDefault("board.default_user", "default-user")
	v.SetDefault("board.user_cache_size", 256)
	v.SetDefault("board.max_comment_chars", 4096)
	v.SetDefault("board.events_channel", "trustguard:moderation")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "trustguard")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.host", "localhost")
	v.SetDefault("kafka.port", "9092")
	v.SetDefault("kafka.topic", "trustguard.moderation")
}

func (c *Config) finalize() error {
	if strings.TrimSpace(c.Auth.ApiKey) == "" {
		return ErrMissingApiKey
	}
	if c.Limits.MaxPromptChars <= 0 || c.Limits.MaxHistoryTurns <= 0 || c.Board.MaxCommentChars <= 0 {
		return ErrInvalidLimits
	}
	family, err := moderation.ResolveFamily(c.Model.Family, c.Model.Name)
	if err != nil {
		return err
	}
	c.Model.ResolvedFamily = family
	return nil
}

// MaxTokens is the generation cap for the resolved family.
func (m ModelConfig) MaxTokens() int {
	if m.ResolvedFamily == moderation.FamilyHistoryAware {
		return m.ChatMaxTokens
	}
	return m.MaxNewTokens
}

func GetConfig() *Config {
	return &globalConfig
}
