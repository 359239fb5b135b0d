package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"cobranca/internal/domain"
)

var (
	remessaIn  string
	remessaSeq int
)

var remessaCmd = &cobra.Command{
	Use:   "remessa",
	Short: "Gera um arquivo de remessa CNAB240 a partir de títulos em JSON",
	RunE:  runRemessa,
}

func init() {
	remessaCmd.Flags().StringVar(&remessaIn, "in", "", "arquivo JSON com os títulos (vazio gera remessa sem títulos)")
	remessaCmd.Flags().IntVar(&remessaSeq, "seq", 1, "número sequencial do arquivo")
	rootCmd.AddCommand(remessaCmd)
}

// tituloInput is the JSON shape of one title; dates use YYYY-MM-DD.
type tituloInput struct {
	NumeroDocumento string `json:"numero_documento"`
	NossoNumero     string `json:"nosso_numero"`
	DataEmissao     string `json:"data_emissao"`
	DataVencimento  string `json:"data_vencimento"`
	Valor           string `json:"valor"`
	SacadoDocumento string `json:"sacado_documento"`
	SacadoNome      string `json:"sacado_nome"`
	SacadoEndereco  string `json:"sacado_endereco"`
	SacadoBairro    string `json:"sacado_bairro"`
	SacadoCidade    string `json:"sacado_cidade"`
	SacadoUF        string `json:"sacado_uf"`
	SacadoCEP       string `json:"sacado_cep"`
}

func (t *tituloInput) toDomain() (domain.BoletoData, error) {
	emissao, err := time.Parse("2006-01-02", t.DataEmissao)
	if err != nil {
		return domain.BoletoData{}, fmt.Errorf("data_emissao do título %q: %w", t.NumeroDocumento, err)
	}
	vencimento, err := time.Parse("2006-01-02", t.DataVencimento)
	if err != nil {
		return domain.BoletoData{}, fmt.Errorf("data_vencimento do título %q: %w", t.NumeroDocumento, err)
	}
	valor, err := decimal.NewFromString(t.Valor)
	if err != nil {
		return domain.BoletoData{}, fmt.Errorf("valor do título %q: %w", t.NumeroDocumento, err)
	}
	return domain.BoletoData{
		NumeroDocumento: t.NumeroDocumento,
		NossoNumero:     t.NossoNumero,
		DataEmissao:     emissao,
		DataVencimento:  vencimento,
		Valor:           valor,
		SacadoDocumento: t.SacadoDocumento,
		SacadoNome:      t.SacadoNome,
		SacadoEndereco:  t.SacadoEndereco,
		SacadoBairro:    t.SacadoBairro,
		SacadoCidade:    t.SacadoCidade,
		SacadoUF:        t.SacadoUF,
		SacadoCEP:       t.SacadoCEP,
	}, nil
}

func runRemessa(cmd *cobra.Command, _ []string) error {
	cfg, logger, svc, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var titulos []domain.BoletoData
	if remessaIn != "" {
		data, err := os.ReadFile(remessaIn)
		if err != nil {
			return fmt.Errorf("lendo %s: %w", remessaIn, err)
		}
		var inputs []tituloInput
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("decodificando %s: %w", remessaIn, err)
		}
		for i := range inputs {
			titulo, err := inputs[i].toDomain()
			if err != nil {
				return err
			}
			titulos = append(titulos, titulo)
		}
	}

	res := svc.GerarRemessa(titulos, remessaSeq)
	if !res.Success {
		return fmt.Errorf("geração da remessa falhou: %s", strings.Join(res.Errors, "; "))
	}

	path := filepath.Join(cfg.Output.Dir, res.Filename)
	if err := os.WriteFile(path, []byte(res.Content), 0o644); err != nil {
		return fmt.Errorf("gravando %s: %w", path, err)
	}

	cmd.Printf("%s: %d título(s), R$ %s\n", path, res.TotalRegistros, res.ValorTotal.StringFixed(2))
	return nil
}
