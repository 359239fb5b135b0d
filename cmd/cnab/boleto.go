package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cobranca/internal/boleto"
	"cobranca/internal/domain"
)

var (
	boletoNossoNumero string
	boletoValor       string
	boletoVencimento  string
)

var boletoCmd = &cobra.Command{
	Use:   "boleto",
	Short: "Gera e valida códigos de barras de boleto",
}

var boletoBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Gera o código de barras e a linha digitável de um título",
	RunE:  runBoletoBuild,
}

var boletoValidateCmd = &cobra.Command{
	Use:   "validate [código-de-barras ou linha digitável]",
	Short: "Valida um código de barras de 44 dígitos ou uma linha digitável",
	Args:  cobra.ExactArgs(1),
	RunE:  runBoletoValidate,
}

func init() {
	boletoBuildCmd.Flags().StringVar(&boletoNossoNumero, "nosso-numero", "", "nosso número do título")
	boletoBuildCmd.Flags().StringVar(&boletoValor, "valor", "", "valor do título, ex. 1234.56")
	boletoBuildCmd.Flags().StringVar(&boletoVencimento, "vencimento", "", "data de vencimento YYYY-MM-DD")
	boletoBuildCmd.MarkFlagRequired("nosso-numero")
	boletoBuildCmd.MarkFlagRequired("valor")
	boletoBuildCmd.MarkFlagRequired("vencimento")

	boletoCmd.AddCommand(boletoBuildCmd)
	boletoCmd.AddCommand(boletoValidateCmd)
	rootCmd.AddCommand(boletoCmd)
}

func runBoletoBuild(cmd *cobra.Command, _ []string) error {
	_, logger, svc, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	vencimento, err := time.Parse("2006-01-02", boletoVencimento)
	if err != nil {
		return fmt.Errorf("vencimento inválido: %w", err)
	}
	valor, err := decimal.NewFromString(boletoValor)
	if err != nil {
		return fmt.Errorf("valor inválido: %w", err)
	}

	b, err := svc.GerarBoleto(domain.BoletoData{
		NossoNumero:    boletoNossoNumero,
		DataVencimento: vencimento,
		Valor:          valor,
	})
	if err != nil {
		return err
	}

	cmd.Println("código de barras:", b.CodigoBarras)
	cmd.Println("linha digitável: ", b.LinhaDigitavel)
	return nil
}

func runBoletoValidate(cmd *cobra.Command, args []string) error {
	barras := args[0]
	if len(barras) != boleto.BarcodeLength {
		recovered, err := boleto.ParseHumanLine(barras)
		if err != nil {
			return err
		}
		barras = recovered
	}

	res := boleto.Validate(barras)
	if !res.Valid {
		for _, e := range res.Errors {
			cmd.Println("inválido:", e)
		}
		return fmt.Errorf("%d erro(s) de validação", len(res.Errors))
	}

	info, err := boleto.ExtractInfo(barras)
	if err != nil {
		return err
	}
	cmd.Printf("válido: banco %s (%s), vencimento %s, R$ %s\n",
		info.Banco, info.Banco.Name(),
		info.Vencimento.Format("02/01/2006"),
		info.Valor.StringFixed(2))
	return nil
}
