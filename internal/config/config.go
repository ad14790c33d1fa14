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

// Formatos de saída aceitos pelas ferramentas
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	App    App    `mapstructure:",squash"`
	Meta   Meta   `mapstructure:",squash"`
	Report Report `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// Meta guarda as credenciais da plataforma de anúncios.
// São carregadas uma vez na inicialização e não são consumidas pelos relatórios simulados.
type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
}

type Report struct {
	DefaultLookbackDays int    `mapstructure:"report_default_lookback_days"`
	OutputFormat        string `mapstructure:"output_format"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v22.0")
	v.SetDefault("META_APP_ID", "")
	v.SetDefault("META_APP_SECRET", "")
	v.SetDefault("META_ACCESS_TOKEN", "")

	v.SetDefault("REPORT_DEFAULT_LOOKBACK_DAYS", 7) // 7 dias de janela
	v.SetDefault("OUTPUT_FORMAT", OutputText)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate verifica os valores que afetam a saída dos relatórios
func (c *Config) Validate() error {
	if !IsValidOutputFormat(c.Report.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected text, json or yaml)", c.Report.OutputFormat)
	}

	if c.Report.DefaultLookbackDays < 0 {
		return fmt.Errorf("invalid default lookback %d: must not be negative", c.Report.DefaultLookbackDays)
	}

	return nil
}

func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}

// Default retorna apenas os valores padrão, sem ler variáveis de ambiente nem .env
func Default() *Config {
	v := viper.New()
	SetDefaults(v)

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar configuração padrão")
	}
	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	return config
}
