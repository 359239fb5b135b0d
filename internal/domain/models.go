package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CnabConfig identifies the payee (cedente) and its bank agreement for one
// remittance batch. It is supplied once per generation and never mutated.
type CnabConfig struct {
	Banco            BankCode
	Agencia          string
	Conta            string
	CedenteDocumento string // CPF (11 digits) or CNPJ (14 digits)
	CedenteNome      string
	Carteira         string
	Convenio         string
	CodigoCedente    string
}

// BoletoData is one collectible title. Each title becomes exactly one
// segment P + segment Q pair in the remittance file.
type BoletoData struct {
	NumeroDocumento string
	NossoNumero     string
	DataEmissao     time.Time
	DataVencimento  time.Time
	Valor           decimal.Decimal
	SacadoDocumento string
	SacadoNome      string
	SacadoEndereco  string
	SacadoBairro    string
	SacadoCidade    string
	SacadoUF        string
	SacadoCEP       string
}

// RemessaResult is the outcome of a remittance generation. Either Success
// is true and Filename/Content are populated, or Success is false and
// Errors is non-empty.
type RemessaResult struct {
	Success        bool
	BatchID        uuid.UUID
	Filename       string
	Content        string
	TotalRegistros int
	ValorTotal     decimal.Decimal
	Errors         []string
}

// TipoRegistro tags the variants of a decoded CNAB240 return record.
type TipoRegistro string

const (
	RegistroHeaderArquivo  TipoRegistro = "header_arquivo"
	RegistroHeaderLote     TipoRegistro = "header_lote"
	RegistroDetalheT       TipoRegistro = "detalhe_t"
	RegistroDetalheU       TipoRegistro = "detalhe_u"
	RegistroTrailerLote    TipoRegistro = "trailer_lote"
	RegistroTrailerArquivo TipoRegistro = "trailer_arquivo"
)

// RegistroRetorno is implemented by every decoded return-file record;
// each variant exposes only the fields meaningful for its record type.
type RegistroRetorno interface {
	Tipo() TipoRegistro
}

// HeaderArquivoRetorno is the file-level header of a return file.
type HeaderArquivoRetorno struct {
	Banco       BankCode
	NomeEmpresa string
	DataGeracao time.Time
}

func (HeaderArquivoRetorno) Tipo() TipoRegistro { return RegistroHeaderArquivo }

// HeaderLoteRetorno is the lot-level header of a return file.
type HeaderLoteRetorno struct {
	Banco BankCode
	Lote  int
}

func (HeaderLoteRetorno) Tipo() TipoRegistro { return RegistroHeaderLote }

// DetalheT carries the title identification of one returned occurrence.
type DetalheT struct {
	NossoNumero      string
	SeuNumero        string
	Carteira         string
	DataVencimento   time.Time
	ValorTitulo      decimal.Decimal
	CodigoOcorrencia string
	Ocorrencia       string
}

func (DetalheT) Tipo() TipoRegistro { return RegistroDetalheT }

// DetalheU carries the payment complement for the preceding DetalheT.
type DetalheU struct {
	ValorPago      decimal.Decimal
	Tarifa         decimal.Decimal
	DataOcorrencia time.Time
	DataCredito    time.Time
	MotivoRejeicao string // empty when the bank sent no rejection reason
}

func (DetalheU) Tipo() TipoRegistro { return RegistroDetalheU }

// TrailerLoteRetorno closes one lot of a return file.
type TrailerLoteRetorno struct {
	QtdRegistros int
	QtdTitulos   int
	ValorTotal   decimal.Decimal
}

func (TrailerLoteRetorno) Tipo() TipoRegistro { return RegistroTrailerLote }

// TrailerArquivoRetorno closes the return file.
type TrailerArquivoRetorno struct {
	QtdLotes     int
	QtdRegistros int
}

func (TrailerArquivoRetorno) Tipo() TipoRegistro { return RegistroTrailerArquivo }

// RetornoResult is a fully decoded return file: the ordered record
// sequence plus the aggregates folded over segment T/U pairs.
type RetornoResult struct {
	Success         bool
	Banco           BankCode
	Registros       []RegistroRetorno
	TotalPagos      int
	TotalRejeitados int
	ValorTotal      decimal.Decimal
	Errors          []string
}

// TituloPago is the derived view of one settled title extracted from a
// parsed return file.
type TituloPago struct {
	NossoNumero   string
	SeuNumero     string
	ValorPago     decimal.Decimal
	DataPagamento *time.Time
	Tarifa        decimal.Decimal
}
