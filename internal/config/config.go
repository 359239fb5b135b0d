package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cobranca/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Cedente CedenteConfig
	Output  OutputConfig
	Log     LogConfig
}

// CedenteConfig holds the payee identity and bank agreement used when
// generating remittances and boletos.
type CedenteConfig struct {
	Banco         string `mapstructure:"banco"`
	Agencia       string `mapstructure:"agencia"`
	Conta         string `mapstructure:"conta"`
	Documento     string `mapstructure:"documento"`
	Nome          string `mapstructure:"nome"`
	Carteira      string `mapstructure:"carteira"`
	Convenio      string `mapstructure:"convenio"`
	CodigoCedente string `mapstructure:"codigo_cedente"`
}

// CnabConfig converts the loaded settings into the codec's value type.
func (c *CedenteConfig) CnabConfig() domain.CnabConfig {
	return domain.CnabConfig{
		Banco:            domain.BankCode(c.Banco),
		Agencia:          c.Agencia,
		Conta:            c.Conta,
		CedenteDocumento: c.Documento,
		CedenteNome:      c.Nome,
		Carteira:         c.Carteira,
		Convenio:         c.Convenio,
		CodigoCedente:    c.CodigoCedente,
	}
}

// OutputConfig holds file output settings.
type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional config file and from
// environment variables with the COBRANCA_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COBRANCA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("cobranca")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.cobranca")

	// Cedente defaults
	v.SetDefault("cedente.banco", string(domain.BancoDoBrasil))
	v.SetDefault("cedente.agencia", "")
	v.SetDefault("cedente.conta", "")
	v.SetDefault("cedente.documento", "")
	v.SetDefault("cedente.nome", "")
	v.SetDefault("cedente.carteira", "17")
	v.SetDefault("cedente.convenio", "")
	v.SetDefault("cedente.codigo_cedente", "")

	// Output defaults
	v.SetDefault("output.dir", ".")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"cedente.banco":          "COBRANCA_CEDENTE_BANCO",
		"cedente.agencia":        "COBRANCA_CEDENTE_AGENCIA",
		"cedente.conta":          "COBRANCA_CEDENTE_CONTA",
		"cedente.documento":      "COBRANCA_CEDENTE_DOCUMENTO",
		"cedente.nome":           "COBRANCA_CEDENTE_NOME",
		"cedente.carteira":       "COBRANCA_CEDENTE_CARTEIRA",
		"cedente.convenio":       "COBRANCA_CEDENTE_CONVENIO",
		"cedente.codigo_cedente": "COBRANCA_CEDENTE_CODIGO_CEDENTE",
		"output.dir":             "COBRANCA_OUTPUT_DIR",
		"log.level":              "COBRANCA_LOG_LEVEL",
		"log.format":             "COBRANCA_LOG_FORMAT",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
