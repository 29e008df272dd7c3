package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Google         Google         `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Queue          Queue          `mapstructure:",squash"`
	Storage        Storage        `mapstructure:",squash"`
	SummaryRefresh SummaryRefresh `mapstructure:",squash"`
	ReportDispatch ReportDispatch `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	TimeZone string `mapstructure:"time_zone"`
}

type Server struct {
	Host            string   `mapstructure:"host"`
	Port            string   `mapstructure:"port"`
	BackendHost     string   `mapstructure:"backend_host"`
	AdditionalHosts []string `mapstructure:"additional_hosts"`
}

type Database struct {
	DSN      string `mapstructure:"database_url"`
	Driver   string `mapstructure:"database_driver"`
	Host     string `mapstructure:"database_host"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	AccessTTL     time.Duration `mapstructure:"jwt_access_ttl"`
	RefreshTTL    time.Duration `mapstructure:"jwt_refresh_ttl"`
	EncryptionKey string        `mapstructure:"api_encryption_key"`
}

type Google struct {
	ClientID     string `mapstructure:"google_client_id"`
	ClientSecret string `mapstructure:"google_client_secret"`
	TokenURL     string `mapstructure:"google_token_url"`
	UserInfoURL  string `mapstructure:"google_userinfo_url"`
}

type Cors struct {
	FrontendURL            string   `mapstructure:"frontend_url"`
	AdditionalFrontendURLs []string `mapstructure:"additional_frontend_urls"`
}

type Redis struct {
	Addr            string        `mapstructure:"redis_addr"`
	Password        string        `mapstructure:"redis_password"`
	DB              int           `mapstructure:"redis_db"`
	SummaryCacheTTL time.Duration `mapstructure:"summary_cache_ttl"`
}

type Queue struct {
	URL  string `mapstructure:"amqp_url"`
	Name string `mapstructure:"amqp_queue"`
}

type Storage struct {
	Bucket      string `mapstructure:"storage_bucket"`
	Region      string `mapstructure:"storage_region"`
	Endpoint    string `mapstructure:"storage_endpoint"`
	AccessKey   string `mapstructure:"storage_access_key"`
	SecretKey   string `mapstructure:"storage_secret_key"`
	PublicURL   string `mapstructure:"storage_public_url"`
	LocalPath   string `mapstructure:"report_storage_path"`
	LocalPrefix string `mapstructure:"report_storage_url_prefix"`
}

type SummaryRefresh struct {
	CronSchedule string `mapstructure:"summary_refresh_cron"`
	Enabled      bool   `mapstructure:"summary_refresh_enabled"`
}

type ReportDispatch struct {
	CronSchedule string `mapstructure:"report_dispatch_cron"`
	Enabled      bool   `mapstructure:"report_dispatch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("BACKEND_HOST", "")
	viper.SetDefault("ADDITIONAL_HOSTS", "")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("TIME_ZONE", "UTC")

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_HOST", "localhost:5432/advision?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "postgres")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("API_ENCRYPTION_KEY", "")
	viper.SetDefault("JWT_ACCESS_TTL", "60m")
	viper.SetDefault("JWT_REFRESH_TTL", "168h")

	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo")

	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("ADDITIONAL_FRONTEND_URLS", "")

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SUMMARY_CACHE_TTL", "10m")

	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_QUEUE", "advision.tasks")

	viper.SetDefault("STORAGE_BUCKET", "")
	viper.SetDefault("STORAGE_REGION", "us-east-1")
	viper.SetDefault("STORAGE_ENDPOINT", "")
	viper.SetDefault("STORAGE_ACCESS_KEY", "")
	viper.SetDefault("STORAGE_SECRET_KEY", "")
	viper.SetDefault("STORAGE_PUBLIC_URL", "")
	viper.SetDefault("REPORT_STORAGE_PATH", "media/reports")
	viper.SetDefault("REPORT_STORAGE_URL_PREFIX", "/media/reports")

	viper.SetDefault("SUMMARY_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("SUMMARY_REFRESH_ENABLED", true)
	viper.SetDefault("REPORT_DISPATCH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("REPORT_DISPATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os valores derivados de outras variáveis
func (c *Config) normalize() error {
	if c.Database.DSN == "" {
		c.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			c.Database.Driver,
			c.Database.User,
			c.Database.Password,
			c.Database.Host,
		)
	}

	if c.Auth.EncryptionKey == "" {
		c.Auth.EncryptionKey = c.SecretKey
	}

	if _, err := time.LoadLocation(c.App.TimeZone); err != nil {
		return fmt.Errorf("TIME_ZONE inválido %q: %w", c.App.TimeZone, err)
	}

	c.Server.AdditionalHosts = compact(c.Server.AdditionalHosts)
	c.Cors.AdditionalFrontendURLs = compact(c.Cors.AdditionalFrontendURLs)

	return nil
}

// Location retorna o fuso horário configurado para a aplicação
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// AllowedOrigins retorna as origens de frontend aceitas pelo CORS e pelo OAuth
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, 1+len(c.Cors.AdditionalFrontendURLs))
	seen := make(map[string]bool)

	for _, raw := range append([]string{c.Cors.FrontendURL}, c.Cors.AdditionalFrontendURLs...) {
		origin := strings.TrimRight(strings.TrimSpace(raw), "/")
		if origin == "" || seen[origin] {
			continue
		}
		seen[origin] = true
		origins = append(origins, origin)
	}

	return origins
}

// AllowedHosts retorna os hosts aceitos pelo servidor HTTP
func (c *Config) AllowedHosts() []string {
	hosts := []string{"localhost", "127.0.0.1"}
	if c.Server.BackendHost != "" {
		hosts = append(hosts, hostOnly(c.Server.BackendHost))
	}
	for _, h := range c.Server.AdditionalHosts {
		hosts = append(hosts, hostOnly(h))
	}
	return hosts
}

// IsProduction indica se a aplicação roda com configurações de produção
func (c *Config) IsProduction() bool {
	return c.App.Env == "production" || c.App.Env == "prod"
}

func hostOnly(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		return u.Hostname()
	}
	return strings.TrimSpace(raw)
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
