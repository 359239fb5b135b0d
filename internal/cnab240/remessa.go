// Package cnab240 generates CNAB240 collection remittance files and
// parses the return files banks send back, per the FEBRABAN 240-column
// layout (arquivo 087, lote 045).
package cnab240

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"cobranca/internal/domain"
	"cobranca/internal/fieldcodec"
)

const (
	// LineLength is the fixed width of every CNAB240 record.
	LineLength = 240

	layoutArquivo = "087"
	layoutLote    = "045"
)

// lineBuilder assembles one 240-column record field by field. A record
// whose fields do not sum to exactly 240 columns is a programming
// error; String panics and the generator converts the panic into an
// error result.
type lineBuilder struct {
	b strings.Builder
}

func newLine() *lineBuilder {
	l := &lineBuilder{}
	l.b.Grow(LineLength)
	return l
}

// num writes a zero-padded numeric field.
func (l *lineBuilder) num(s string, width int) *lineBuilder {
	l.b.WriteString(fieldcodec.PadLeft(s, width))
	return l
}

// numInt writes an integer as a zero-padded numeric field.
func (l *lineBuilder) numInt(n, width int) *lineBuilder {
	return l.num(strconv.Itoa(n), width)
}

// alpha writes a normalized, space-padded text field.
func (l *lineBuilder) alpha(s string, width int) *lineBuilder {
	l.b.WriteString(fieldcodec.PadRight(fieldcodec.NormalizeUpper(s), width))
	return l
}

// lit writes a literal marker exactly as given.
func (l *lineBuilder) lit(s string) *lineBuilder {
	l.b.WriteString(s)
	return l
}

func (l *lineBuilder) blank(width int) *lineBuilder {
	l.b.WriteString(strings.Repeat(" ", width))
	return l
}

func (l *lineBuilder) zeros(width int) *lineBuilder {
	l.b.WriteString(strings.Repeat("0", width))
	return l
}

func (l *lineBuilder) String() string {
	s := l.b.String()
	if len(s) != LineLength {
		panic(fmt.Sprintf("registro CNAB240 com %d colunas", len(s)))
	}
	return s
}

// tipoInscricao is '1' for CPF (11 digits) and '2' for CNPJ.
func tipoInscricao(documento string) string {
	if len(documento) == 11 {
		return "1"
	}
	return "2"
}

// RemessaFilename builds the canonical remittance file name:
// CNAB240_{banco}_{YYYYMMDD}_{sequencial}.rem.
func RemessaFilename(banco domain.BankCode, geradoEm time.Time, sequencial int) string {
	return fmt.Sprintf("CNAB240_%s_%s_%06d.rem", banco, geradoEm.Format("20060102"), sequencial)
}

// GenerateRemessa produces a collection remittance file for the given
// titles, capturing the generation timestamp once so header arquivo and
// header lote agree.
func GenerateRemessa(cfg domain.CnabConfig, titulos []domain.BoletoData, sequencial int) domain.RemessaResult {
	return GenerateRemessaAt(cfg, titulos, sequencial, time.Now())
}

// GenerateRemessaAt is GenerateRemessa with an explicit generation
// timestamp. It never panics and never half-emits: any internal failure
// comes back as Success=false with a populated error list. An empty
// title list is valid and produces the four structural records with
// zero counts.
func GenerateRemessaAt(cfg domain.CnabConfig, titulos []domain.BoletoData, sequencial int, geradoEm time.Time) (result domain.RemessaResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.RemessaResult{
				Success:    false,
				ValorTotal: decimal.Zero,
				Errors:     []string{fmt.Sprintf("falha na geração da remessa: %v", r)},
			}
		}
	}()

	if !cfg.Banco.Supported() {
		return domain.RemessaResult{
			Success:    false,
			ValorTotal: decimal.Zero,
			Errors:     []string{fmt.Sprintf("%v: %q", domain.ErrBancoNaoSuportado, cfg.Banco)},
		}
	}

	lines := make([]string, 0, 4+2*len(titulos))
	lines = append(lines,
		headerArquivo(cfg, sequencial, geradoEm),
		headerLote(cfg, sequencial, geradoEm),
	)

	valorTotal := decimal.Zero
	for i, titulo := range titulos {
		lines = append(lines,
			segmentoP(cfg, titulo, 2*i+1),
			segmentoQ(cfg, titulo, 2*i+2),
		)
		valorTotal = valorTotal.Add(titulo.Valor)
	}

	lines = append(lines,
		trailerLote(cfg, len(titulos), valorTotal),
		trailerArquivo(len(titulos)),
	)

	return domain.RemessaResult{
		Success:        true,
		BatchID:        uuid.New(),
		Filename:       RemessaFilename(cfg.Banco, geradoEm, sequencial),
		Content:        strings.Join(lines, "\r\n"),
		TotalRegistros: len(titulos),
		ValorTotal:     valorTotal,
	}
}

func headerArquivo(cfg domain.CnabConfig, sequencial int, geradoEm time.Time) string {
	return newLine().
		num(string(cfg.Banco), 3). // 001-003 banco
		zeros(4).                  // 004-007 lote de serviço
		lit("0").                  // 008     tipo de registro
		blank(9).                  // 009-017 uso exclusivo FEBRABAN
		lit(tipoInscricao(cfg.CedenteDocumento)).
		num(cfg.CedenteDocumento, 14). // 019-032 inscrição da empresa
		alpha(cfg.Convenio, 20).       // 033-052 convênio no banco
		num(cfg.Agencia, 5).           // 053-057 agência
		lit("0").                      // 058     dv agência
		num(cfg.Conta, 12).            // 059-070 conta
		lit("0").                      // 071     dv conta
		lit("0").                      // 072     dv agência/conta
		alpha(cfg.CedenteNome, 30).    // 073-102 nome da empresa
		alpha(cfg.Banco.Name(), 30).   // 103-132 nome do banco
		blank(10).                     // 133-142 uso exclusivo FEBRABAN
		lit("1").                      // 143     código remessa
		lit(fieldcodec.EncodeDate(geradoEm)).
		lit(geradoEm.Format("150405")). // 152-157 hora de geração
		numInt(sequencial, 6).          // 158-163 sequência do arquivo
		lit(layoutArquivo).             // 164-166 versão do layout
		zeros(5).                       // 167-171 densidade
		blank(20).                      // 172-191 reservado banco
		blank(20).                      // 192-211 reservado empresa
		blank(29).                      // 212-240 uso exclusivo FEBRABAN
		String()
}

func headerLote(cfg domain.CnabConfig, sequencial int, geradoEm time.Time) string {
	return newLine().
		num(string(cfg.Banco), 3). // 001-003 banco
		num("1", 4).               // 004-007 lote de serviço
		lit("1").                  // 008     tipo de registro
		lit("R").                  // 009     tipo de operação: remessa
		lit("01").                 // 010-011 tipo de serviço: cobrança
		zeros(2).                  // 012-013 forma de lançamento
		lit(layoutLote).           // 014-016 versão do layout do lote
		blank(1).                  // 017     uso exclusivo FEBRABAN
		lit(tipoInscricao(cfg.CedenteDocumento)).
		num(cfg.CedenteDocumento, 15). // 019-033 inscrição da empresa
		alpha(cfg.Convenio, 20).       // 034-053 convênio no banco
		num(cfg.Agencia, 5).           // 054-058 agência
		lit("0").                      // 059     dv agência
		num(cfg.Conta, 12).            // 060-071 conta
		lit("0").                      // 072     dv conta
		lit("0").                      // 073     dv agência/conta
		alpha(cfg.CedenteNome, 30).    // 074-103 nome da empresa
		blank(40).                     // 104-143 mensagem 1
		blank(40).                     // 144-183 mensagem 2
		numInt(sequencial, 8).         // 184-191 número remessa/retorno
		lit(fieldcodec.EncodeDate(geradoEm)).
		zeros(8).  // 200-207 data do crédito
		blank(33). // 208-240 uso exclusivo FEBRABAN
		String()
}

func segmentoP(cfg domain.CnabConfig, titulo domain.BoletoData, seqRegistro int) string {
	return newLine().
		num(string(cfg.Banco), 3). // 001-003 banco
		num("1", 4).               // 004-007 lote de serviço
		lit("3").                  // 008     tipo de registro
		numInt(seqRegistro, 5).    // 009-013 sequencial no lote
		lit("P").                  // 014     segmento
		blank(1).                  // 015     uso exclusivo FEBRABAN
		lit("01").                 // 016-017 código de movimento: entrada
		num(cfg.Agencia, 5).       // 018-022 agência
		lit("0").                  // 023     dv agência
		num(cfg.Conta, 12).        // 024-035 conta
		lit("0").                  // 036     dv conta
		lit("0").                  // 037     dv agência/conta
		alpha(titulo.NossoNumero, 20).
		num(cfg.Carteira, 1). // 058     carteira
		lit("1").             // 059     forma de cadastramento
		lit("1").             // 060     tipo de documento
		lit("2").             // 061     emissão do boleto
		lit("2").             // 062     distribuição
		alpha(titulo.NumeroDocumento, 15).
		lit(fieldcodec.EncodeDate(titulo.DataVencimento)).
		lit(fieldcodec.EncodeCents(titulo.Valor, 15)).
		zeros(5).  // 101-105 agência cobradora
		lit("0").  // 106     dv agência cobradora
		lit("02"). // 107-108 espécie: duplicata mercantil
		lit("N").  // 109     aceite
		lit(fieldcodec.EncodeDate(titulo.DataEmissao)).
		lit("3").  // 118     código de juros: isento
		zeros(8).  // 119-126 data de juros
		zeros(15). // 127-141 valor de juros
		lit("0").  // 142     código de desconto
		zeros(8).  // 143-150 data de desconto
		zeros(15). // 151-165 valor de desconto
		zeros(15). // 166-180 valor do IOF
		zeros(15). // 181-195 valor de abatimento
		alpha(titulo.NumeroDocumento, 25).
		lit("3").   // 221     código de protesto: não protestar
		lit("00").  // 222-223 prazo de protesto
		lit("1").   // 224     código de baixa
		lit("060"). // 225-227 prazo de baixa
		lit("09").  // 228-229 código da moeda: real
		zeros(10).  // 230-239 número do contrato
		blank(1).   // 240     uso livre
		String()
}

func segmentoQ(cfg domain.CnabConfig, titulo domain.BoletoData, seqRegistro int) string {
	cep := fieldcodec.PadLeft(titulo.SacadoCEP, 8)
	return newLine().
		num(string(cfg.Banco), 3). // 001-003 banco
		num("1", 4).               // 004-007 lote de serviço
		lit("3").                  // 008     tipo de registro
		numInt(seqRegistro, 5).    // 009-013 sequencial no lote
		lit("Q").                  // 014     segmento
		blank(1).                  // 015     uso exclusivo FEBRABAN
		lit("01").                 // 016-017 código de movimento: entrada
		lit(tipoInscricao(titulo.SacadoDocumento)).
		num(titulo.SacadoDocumento, 15).
		alpha(titulo.SacadoNome, 40).
		alpha(titulo.SacadoEndereco, 40).
		alpha(titulo.SacadoBairro, 15).
		lit(cep[:5]).  // 129-133 CEP
		lit(cep[5:]).  // 134-136 sufixo do CEP
		alpha(titulo.SacadoCidade, 15).
		alpha(titulo.SacadoUF, 2).
		lit("0").  // 154     tipo de inscrição do avalista
		zeros(15). // 155-169 inscrição do avalista
		blank(40). // 170-209 nome do avalista
		zeros(3).  // 210-212 banco correspondente
		blank(20). // 213-232 nosso número no correspondente
		blank(8).  // 233-240 uso exclusivo FEBRABAN
		String()
}

func trailerLote(cfg domain.CnabConfig, qtdTitulos int, valorTotal decimal.Decimal) string {
	// header lote + trailer lote + two detail records per title
	qtdRegistros := 2 + 2*qtdTitulos
	return newLine().
		num(string(cfg.Banco), 3). // 001-003 banco
		num("1", 4).               // 004-007 lote de serviço
		lit("5").                  // 008     tipo de registro
		blank(9).                  // 009-017 uso exclusivo FEBRABAN
		numInt(qtdRegistros, 6).   // 018-023 quantidade de registros do lote
		numInt(qtdTitulos, 6).     // 024-029 quantidade de títulos em cobrança simples
		lit(fieldcodec.EncodeCents(valorTotal, 17)).
		zeros(6).   // 047-052 quantidade cobrança vinculada
		zeros(17).  // 053-069 valor cobrança vinculada
		zeros(6).   // 070-075 quantidade cobrança caucionada
		zeros(17).  // 076-092 valor cobrança caucionada
		zeros(6).   // 093-098 quantidade cobrança descontada
		zeros(17).  // 099-115 valor cobrança descontada
		blank(8).   // 116-123 aviso de lançamento
		blank(117). // 124-240 uso exclusivo FEBRABAN
		String()
}

func trailerArquivo(qtdTitulos int) string {
	// header/trailer arquivo + header/trailer lote + details
	qtdRegistros := 4 + 2*qtdTitulos
	return newLine().
		zeros(3).                // 001-003 banco (não exigido no trailer)
		num("9999", 4).          // 004-007 lote de serviço
		lit("9").                // 008     tipo de registro
		blank(9).                // 009-017 uso exclusivo FEBRABAN
		numInt(1, 6).            // 018-023 quantidade de lotes
		numInt(qtdRegistros, 6). // 024-029 quantidade de registros
		zeros(6).                // 030-035 contas para conciliação
		blank(205).              // 036-240 uso exclusivo FEBRABAN
		String()
}
