// Command cnab generates CNAB240 collection remittances, parses bank
// return files and builds individual boletos from the configured
// cedente.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cobranca/internal/config"
	"cobranca/internal/service"
)

var rootCmd = &cobra.Command{
	Use:           "cnab",
	Short:         "Codec de arquivos CNAB240 e boletos de cobrança",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger plus the service
// every subcommand runs against.
func setup() (*config.Config, *zap.Logger, *service.CobrancaService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("carregando configuração: %w", err)
	}

	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("inicializando logger: %w", err)
	}

	return cfg, logger, service.NewCobrancaService(cfg, logger), nil
}
