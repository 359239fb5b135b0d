// Package service orchestrates the codec packages for callers that
// work a full collection cycle: generate a remittance, later parse the
// bank's return and extract the settled titles.
package service

import (
	"time"

	"go.uber.org/zap"

	"cobranca/internal/boleto"
	"cobranca/internal/cnab240"
	"cobranca/internal/config"
	"cobranca/internal/domain"
)

// CobrancaService wires the cedente configuration into the CNAB240 and
// boleto codecs.
type CobrancaService struct {
	cedente domain.CnabConfig
	logger  *zap.Logger
	now     func() time.Time
}

// NewCobrancaService creates a service bound to one cedente.
func NewCobrancaService(cfg *config.Config, logger *zap.Logger) *CobrancaService {
	return &CobrancaService{
		cedente: cfg.Cedente.CnabConfig(),
		logger:  logger,
		now:     time.Now,
	}
}

// GerarRemessa generates a remittance for the given titles. The
// generation timestamp is captured once so every record of the file
// carries the same date and time.
func (s *CobrancaService) GerarRemessa(titulos []domain.BoletoData, sequencial int) domain.RemessaResult {
	result := cnab240.GenerateRemessaAt(s.cedente, titulos, sequencial, s.now())
	if !result.Success {
		s.logger.Error("falha na geração da remessa",
			zap.String("banco", string(s.cedente.Banco)),
			zap.Strings("errors", result.Errors))
		return result
	}

	if len(titulos) == 0 {
		s.logger.Warn("remessa gerada sem títulos", zap.String("arquivo", result.Filename))
	}
	s.logger.Info("remessa gerada",
		zap.String("arquivo", result.Filename),
		zap.String("batch_id", result.BatchID.String()),
		zap.Int("titulos", result.TotalRegistros),
		zap.String("valor_total", result.ValorTotal.StringFixed(2)))
	return result
}

// ProcessarRetorno parses a return file and logs its aggregates.
func (s *CobrancaService) ProcessarRetorno(content string) domain.RetornoResult {
	result := cnab240.ParseRetorno(content)
	if !result.Success {
		s.logger.Error("falha no processamento do retorno", zap.Strings("errors", result.Errors))
		return result
	}

	s.logger.Info("retorno processado",
		zap.String("banco", string(result.Banco)),
		zap.Int("registros", len(result.Registros)),
		zap.Int("pagos", result.TotalPagos),
		zap.Int("rejeitados", result.TotalRejeitados),
		zap.String("valor_total", result.ValorTotal.StringFixed(2)))
	return result
}

// TitulosPagos returns the settled titles of an already parsed return.
func (s *CobrancaService) TitulosPagos(result *domain.RetornoResult) []domain.TituloPago {
	return cnab240.ExtractTitulosPagos(result)
}

// GerarBoleto builds the barcode and linha digitável of a single title
// using the cedente's bank layout for the campo livre.
func (s *CobrancaService) GerarBoleto(titulo domain.BoletoData) (boleto.Barcode, error) {
	campoLivre, err := boleto.CampoLivre(s.cedente.Banco, boleto.CampoLivreParams{
		Convenio:      s.cedente.Convenio,
		NossoNumero:   titulo.NossoNumero,
		Agencia:       s.cedente.Agencia,
		Conta:         s.cedente.Conta,
		Carteira:      s.cedente.Carteira,
		CodigoCedente: s.cedente.CodigoCedente,
	})
	if err != nil {
		return boleto.Barcode{}, err
	}

	b, err := boleto.Build(boleto.BarcodeParams{
		Banco:           s.cedente.Banco,
		FatorVencimento: boleto.DueFactor(titulo.DataVencimento),
		Valor:           titulo.Valor,
		CampoLivre:      campoLivre,
	})
	if err != nil {
		return boleto.Barcode{}, err
	}

	s.logger.Info("boleto gerado",
		zap.String("nosso_numero", titulo.NossoNumero),
		zap.String("linha_digitavel", b.LinhaDigitavel))
	return b, nil
}
