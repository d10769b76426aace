package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Dataset   Dataset   `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	Analytics Analytics `mapstructure:",squash"`
	Dashboard Dashboard `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source        string `mapstructure:"data_source"`
	Path          string `mapstructure:"dataset_path"`
	ReloadCron    string `mapstructure:"dataset_reload_cron"`
	ReloadEnabled bool   `mapstructure:"dataset_reload_enabled"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Analytics struct {
	TopCustomers int `mapstructure:"top_customers"`
	TopProducts  int `mapstructure:"top_products"`
	TopFocus     int `mapstructure:"top_focus"`
	FocusMonth   int `mapstructure:"focus_month"`
}

type Dashboard struct {
	PageTitle string `mapstructure:"page_title"`
}

func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501")

	v.SetDefault("DATA_SOURCE", DataSourceCSV)
	v.SetDefault("DATASET_PATH", "ventas_modaurbana.csv")
	v.SetDefault("DATASET_RELOAD_CRON", "0 * * * *") // A cada hora cheia
	v.SetDefault("DATASET_RELOAD_ENABLED", false)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/modaurbana?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("TOP_CUSTOMERS", 20)
	v.SetDefault("TOP_PRODUCTS", 10)
	v.SetDefault("TOP_FOCUS", 5)
	v.SetDefault("FOCUS_MONTH", 3) // Março, mês do dia da mulher

	v.SetDefault("PAGE_TITLE", "Caso de Estudio – Tienda Online Moda Urbana S.A.S.")

	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(viper.GetViper())
}

// Load decodifica a configuração a partir de uma instância do viper já preenchida
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	config.Dataset.Source = strings.ToLower(strings.TrimSpace(config.Dataset.Source))

	if err := config.Validate(); err != nil {
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

// Validate verifica os valores que o painel não consegue usar
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case DataSourceCSV:
		if c.Dataset.Path == "" {
			return errors.New("DATASET_PATH é obrigatório quando DATA_SOURCE=csv")
		}
	case DataSourcePostgres:
	default:
		return errors.Errorf("DATA_SOURCE inválido: %q (valores aceitos: csv, postgres)", c.Dataset.Source)
	}

	if c.Analytics.TopCustomers <= 0 {
		return errors.Errorf("TOP_CUSTOMERS deve ser positivo, recebido %d", c.Analytics.TopCustomers)
	}
	if c.Analytics.TopProducts <= 0 {
		return errors.Errorf("TOP_PRODUCTS deve ser positivo, recebido %d", c.Analytics.TopProducts)
	}
	if c.Analytics.TopFocus <= 0 {
		return errors.Errorf("TOP_FOCUS deve ser positivo, recebido %d", c.Analytics.TopFocus)
	}
	if c.Analytics.FocusMonth < 1 || c.Analytics.FocusMonth > 12 {
		return errors.Errorf("FOCUS_MONTH deve estar entre 1 e 12, recebido %d", c.Analytics.FocusMonth)
	}

	return nil
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
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
