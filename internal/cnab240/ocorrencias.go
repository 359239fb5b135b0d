package cnab240

import "fmt"

// OcorrenciasCobranca maps the two-digit movement codes a bank reports
// in segment T to their descriptions. The table is read-only.
var OcorrenciasCobranca = map[string]string{
	"02": "Entrada confirmada",
	"03": "Entrada rejeitada",
	"04": "Transferência de carteira/entrada",
	"05": "Transferência de carteira/baixa",
	"06": "Liquidação",
	"07": "Confirmação do recebimento da instrução de desconto",
	"08": "Confirmação do recebimento do cancelamento do desconto",
	"09": "Baixa",
	"10": "Baixa por ter sido liquidado",
	"11": "Títulos em carteira (em ser)",
	"12": "Confirmação recebimento instrução de abatimento",
	"13": "Confirmação recebimento instrução de cancelamento do abatimento",
	"14": "Confirmação recebimento instrução de alteração de vencimento",
	"17": "Liquidação após baixa ou liquidação de título não registrado",
	"19": "Confirmação recebimento instrução de protesto",
	"20": "Confirmação recebimento instrução de sustação de protesto",
	"23": "Remessa a cartório",
	"24": "Retirada de cartório e manutenção em carteira",
	"25": "Protestado e baixado",
	"26": "Instrução rejeitada",
	"27": "Confirmação do pedido de alteração de outros dados",
	"28": "Débito de tarifas/custas",
	"30": "Alteração de dados rejeitada",
}

// codes that settle a title as paid or rejected when aggregating T/U pairs
var (
	ocorrenciasPagas = map[string]bool{
		"06": true,
		"10": true,
		"17": true,
	}
	ocorrenciasRejeitadas = map[string]bool{
		"03": true,
		"26": true,
	}
)

// Ocorrencia returns the description of a movement code. Unknown codes
// never fail; they fall back to "Ocorrência {code}".
func Ocorrencia(code string) string {
	if desc, ok := OcorrenciasCobranca[code]; ok {
		return desc
	}
	return fmt.Sprintf("Ocorrência %s", code)
}
