package cnab240

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"cobranca/internal/domain"
	"cobranca/internal/fieldcodec"
)

// ParseRetorno decodes a CNAB240 return file. Line endings may be CRLF
// or LF; any line that is not exactly 240 columns is silently dropped
// (banks still send files with trailing blanks and mixed encodings).
// Fewer than 4 usable lines is a hard failure; everything else,
// including a file with no detail records, succeeds with empty
// aggregates. The function never panics.
func ParseRetorno(content string) (result domain.RetornoResult) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.RetornoResult{
				Success:    false,
				ValorTotal: decimal.Zero,
				Errors:     []string{fmt.Sprintf("falha ao processar retorno: %v", r)},
			}
		}
	}()

	var usable []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if len(line) == LineLength {
			usable = append(usable, line)
		}
	}
	if len(usable) < 4 {
		return domain.RetornoResult{
			Success:    false,
			ValorTotal: decimal.Zero,
			Errors:     []string{fmt.Sprintf("%v: menos de 4 linhas de 240 colunas", domain.ErrRetornoInvalido)},
		}
	}

	result = domain.RetornoResult{Success: true, ValorTotal: decimal.Zero}
	for _, line := range usable {
		switch line[7] {
		case '0':
			header := parseHeaderArquivo(line)
			result.Banco = header.Banco
			result.Registros = append(result.Registros, header)
		case '1':
			result.Registros = append(result.Registros, parseHeaderLote(line))
		case '3':
			switch line[13] {
			case 'T':
				result.Registros = append(result.Registros, parseDetalheT(line))
			case 'U':
				result.Registros = append(result.Registros, parseDetalheU(line))
			}
		case '5':
			result.Registros = append(result.Registros, parseTrailerLote(line))
		case '9':
			result.Registros = append(result.Registros, parseTrailerArquivo(line))
		}
	}

	aggregate(&result)
	return result
}

// aggregate folds segment T/U pairs into the paid/rejected counters. A
// segment T immediately followed by its segment U forms one title
// outcome; occurrences 06, 10 and 17 count as paid (summing the paid
// amount from U), 03 and 26 as rejected, anything else is recorded
// without touching either counter.
func aggregate(result *domain.RetornoResult) {
	for i, registro := range result.Registros {
		t, ok := registro.(domain.DetalheT)
		if !ok {
			continue
		}
		var u domain.DetalheU
		if i+1 < len(result.Registros) {
			u, _ = result.Registros[i+1].(domain.DetalheU)
		}
		switch {
		case ocorrenciasPagas[t.CodigoOcorrencia]:
			result.TotalPagos++
			result.ValorTotal = result.ValorTotal.Add(u.ValorPago)
		case ocorrenciasRejeitadas[t.CodigoOcorrencia]:
			result.TotalRejeitados++
		}
	}
}

// ExtractTitulosPagos re-walks an already parsed return pairing each
// segment T with its following segment U and returns one entry per paid
// title. It is a derived view over Registros, not a re-parse.
func ExtractTitulosPagos(result *domain.RetornoResult) []domain.TituloPago {
	var pagos []domain.TituloPago
	for i, registro := range result.Registros {
		t, ok := registro.(domain.DetalheT)
		if !ok || !ocorrenciasPagas[t.CodigoOcorrencia] {
			continue
		}
		var u domain.DetalheU
		if i+1 < len(result.Registros) {
			u, _ = result.Registros[i+1].(domain.DetalheU)
		}
		pago := domain.TituloPago{
			NossoNumero: t.NossoNumero,
			SeuNumero:   t.SeuNumero,
			ValorPago:   u.ValorPago,
			Tarifa:      u.Tarifa,
		}
		if !u.DataCredito.IsZero() {
			data := u.DataCredito
			pago.DataPagamento = &data
		}
		pagos = append(pagos, pago)
	}
	return pagos
}

func parseHeaderArquivo(line string) domain.HeaderArquivoRetorno {
	return domain.HeaderArquivoRetorno{
		Banco:       domain.BankCode(line[0:3]),
		NomeEmpresa: strings.TrimSpace(line[72:102]),
		DataGeracao: parseDateField(line[143:151]),
	}
}

func parseHeaderLote(line string) domain.HeaderLoteRetorno {
	return domain.HeaderLoteRetorno{
		Banco: domain.BankCode(line[0:3]),
		Lote:  parseIntField(line[3:7]),
	}
}

func parseDetalheT(line string) domain.DetalheT {
	code := line[15:17]
	return domain.DetalheT{
		NossoNumero:      strings.TrimSpace(line[37:57]),
		Carteira:         line[57:58],
		SeuNumero:        strings.TrimSpace(line[105:130]),
		DataVencimento:   parseDateField(line[73:81]),
		ValorTitulo:      parseCentsField(line[81:96]),
		CodigoOcorrencia: code,
		Ocorrencia:       Ocorrencia(code),
	}
}

func parseDetalheU(line string) domain.DetalheU {
	motivo := line[153:163]
	if motivo == "0000000000" {
		motivo = ""
	} else {
		motivo = strings.TrimSpace(motivo)
	}
	return domain.DetalheU{
		ValorPago:      parseCentsField(line[77:92]),
		Tarifa:         parseCentsField(line[107:122]),
		DataOcorrencia: parseDateField(line[137:145]),
		DataCredito:    parseDateField(line[145:153]),
		MotivoRejeicao: motivo,
	}
}

func parseTrailerLote(line string) domain.TrailerLoteRetorno {
	return domain.TrailerLoteRetorno{
		QtdRegistros: parseIntField(line[17:23]),
		QtdTitulos:   parseIntField(line[23:29]),
		ValorTotal:   parseCentsField(line[29:46]),
	}
}

func parseTrailerArquivo(line string) domain.TrailerArquivoRetorno {
	return domain.TrailerArquivoRetorno{
		QtdLotes:     parseIntField(line[17:23]),
		QtdRegistros: parseIntField(line[23:29]),
	}
}

// parseDateField decodes DDMMYYYY tolerantly: all-zero or malformed
// dates come back as the zero time instead of failing the file.
func parseDateField(s string) time.Time {
	if s == "00000000" || !fieldcodec.AllDigits(s) {
		return time.Time{}
	}
	t, err := fieldcodec.DecodeDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseCentsField(s string) decimal.Decimal {
	v, err := fieldcodec.DecodeCents(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func parseIntField(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
