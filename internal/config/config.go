package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ReportStorageFile     = "file"
	ReportStoragePostgres = "postgres"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Direct       Direct       `mapstructure:",squash"`
	OpenAI       OpenAI       `mapstructure:",squash"`
	Reports      Reports      `mapstructure:",squash"`
	AutoOptimize AutoOptimize `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Direct agrupa as credenciais e parâmetros da API do Yandex Direct
type Direct struct {
	URL             string        `mapstructure:"yandex_direct_url"`
	AccessToken     string        `mapstructure:"yandex_direct_access_token"`
	Login           string        `mapstructure:"yandex_direct_login"`
	AdHref          string        `mapstructure:"yandex_direct_ad_href"`
	AdDisplayPath   string        `mapstructure:"yandex_direct_ad_display_path"`
	Timeout         time.Duration `mapstructure:"yandex_direct_timeout"`
	AcceptLanguage  string        `mapstructure:"yandex_direct_accept_language"`
	ReportNamespace string        `mapstructure:"yandex_direct_report_namespace"`
}

type OpenAI struct {
	APIKey      string  `mapstructure:"openai_api_key"`
	BaseURL     string  `mapstructure:"openai_base_url"`
	Model       string  `mapstructure:"openai_model"`
	Temperature float32 `mapstructure:"openai_temperature"`
}

type Reports struct {
	Storage   string `mapstructure:"reports_storage"`
	Dir       string `mapstructure:"reports_dir"`
	ListLimit int    `mapstructure:"reports_list_limit"`
}

type AutoOptimize struct {
	Secret       string  `mapstructure:"auto_optimize_secret"`
	CronSchedule string  `mapstructure:"auto_optimize_cron"`
	LookbackDays int     `mapstructure:"auto_optimize_lookback_days"`
	MinScore     float64 `mapstructure:"auto_optimize_min_score"`
	Enabled      bool    `mapstructure:"auto_optimize_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://grifun.ru")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/direct_optimizer?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("YANDEX_DIRECT_URL", "https://api.direct.yandex.com/json/v5")
	viper.SetDefault("YANDEX_DIRECT_ACCESS_TOKEN", "")
	viper.SetDefault("YANDEX_DIRECT_LOGIN", "")
	viper.SetDefault("YANDEX_DIRECT_AD_HREF", "https://grifun.ru")
	viper.SetDefault("YANDEX_DIRECT_AD_DISPLAY_PATH", "grifun")
	viper.SetDefault("YANDEX_DIRECT_TIMEOUT", "60s")
	viper.SetDefault("YANDEX_DIRECT_ACCEPT_LANGUAGE", "ru")
	viper.SetDefault("YANDEX_DIRECT_REPORT_NAMESPACE", "Campaign Performance")

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.3)

	viper.SetDefault("REPORTS_STORAGE", ReportStorageFile)
	viper.SetDefault("REPORTS_DIR", "data/optimizations")
	viper.SetDefault("REPORTS_LIST_LIMIT", 50)

	// Defaults para a otimização automática
	viper.SetDefault("AUTO_OPTIMIZE_SECRET", "")
	viper.SetDefault("AUTO_OPTIMIZE_CRON", "0 9 * * 1") // Segundas às 9h
	viper.SetDefault("AUTO_OPTIMIZE_LOOKBACK_DAYS", 7)
	viper.SetDefault("AUTO_OPTIMIZE_MIN_SCORE", 0)
	viper.SetDefault("AUTO_OPTIMIZE_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// MissingDirectCredentials lista as variáveis obrigatórias da API do Direct que não foram configuradas
func (c *Config) MissingDirectCredentials() []string {
	var missing []string
	if c.Direct.AccessToken == "" {
		missing = append(missing, "YANDEX_DIRECT_ACCESS_TOKEN")
	}
	if c.Direct.Login == "" {
		missing = append(missing, "YANDEX_DIRECT_LOGIN")
	}
	return missing
}

// MissingOptimizerCredentials inclui, além do Direct, a chave do modelo de linguagem
func (c *Config) MissingOptimizerCredentials() []string {
	missing := c.MissingDirectCredentials()
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	return missing
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
