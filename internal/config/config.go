package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Business     Business     `mapstructure:",squash"`
	LowStockSync LowStockSync `mapstructure:",squash"`
	Mail         Mail         `mapstructure:",squash"`
	SecretKey    string       `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Business concentra as regras de negócio configuráveis da barbearia.
// Os valores padrão preservam as regras originais: reposição abaixo de 10
// unidades e comissão de 20% sobre os ganhos.
type Business struct {
	LowStockThreshold int     `mapstructure:"low_stock_threshold"`
	CommissionRate    float64 `mapstructure:"commission_rate"`
}

type LowStockSync struct {
	CronSchedule string `mapstructure:"low_stock_sync_cron"`
	Enabled      bool   `mapstructure:"low_stock_sync_enabled"`
}

type Mail struct {
	SMTPHost string `mapstructure:"mail_smtp_host"`
	SMTPPort int    `mapstructure:"mail_smtp_port"`
	Username string `mapstructure:"mail_username"`
	Password string `mapstructure:"mail_password"`
	From     string `mapstructure:"mail_from"`
	To       string `mapstructure:"mail_to"`
	Enabled  bool   `mapstructure:"mail_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/barbershop")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Regras de negócio da barbearia
	viper.SetDefault("LOW_STOCK_THRESHOLD", 10)
	viper.SetDefault("COMMISSION_RATE", 0.20)

	// Defaults para o alerta de estoque baixo
	viper.SetDefault("LOW_STOCK_SYNC_CRON", "0 8 * * *") // Todos os dias às 8h da manhã
	viper.SetDefault("LOW_STOCK_SYNC_ENABLED", false)

	viper.SetDefault("MAIL_SMTP_HOST", "localhost")
	viper.SetDefault("MAIL_SMTP_PORT", 587)
	viper.SetDefault("MAIL_USERNAME", "")
	viper.SetDefault("MAIL_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@cortesdelisboa.com")
	viper.SetDefault("MAIL_TO", "gerencia@cortesdelisboa.com")
	viper.SetDefault("MAIL_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
