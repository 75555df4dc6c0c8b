package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Astro         Astro         `mapstructure:",squash"`
	Session       Session       `mapstructure:",squash"`
	Uploads       Uploads       `mapstructure:",squash"`
	DashboardSync DashboardSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Astro aponta para a API remota de vendedores. Toda rota consumida pelo
// console é relativa a BaseURL.
type Astro struct {
	BaseURL string `mapstructure:"astro_base_url"`
}

type Session struct {
	// StorePath é o arquivo onde o token de sessão é persistido.
	// Vazio significa sessão apenas em memória.
	StorePath string `mapstructure:"session_store_path"`
}

type Uploads struct {
	// StagingDir recebe os arquivos de preview antes do envio definitivo.
	StagingDir string `mapstructure:"uploads_staging_dir"`
}

// DashboardSync controla a atualização periódica do snapshot do painel.
type DashboardSync struct {
	CronSchedule string `mapstructure:"dashboard_sync_cron"`
	Enabled      bool   `mapstructure:"dashboard_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("ASTRO_BASE_URL", "http://localhost:3005")

	viper.SetDefault("SESSION_STORE_PATH", defaultSessionPath())
	viper.SetDefault("UPLOADS_STAGING_DIR", filepath.Join(os.TempDir(), "seller-console-uploads"))

	viper.SetDefault("DASHBOARD_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("DASHBOARD_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
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

	return config, nil
}

// defaultSessionPath resolve o arquivo de sessão no diretório de configuração
// do usuário, análogo ao localStorage do navegador.
func defaultSessionPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "seller-console", "session")
	}
	return filepath.Join(configDir, "seller-console", "session")
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}
}
