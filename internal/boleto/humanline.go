package boleto

import (
	"fmt"
	"strings"

	"cobranca/internal/checkdigit"
	"cobranca/internal/domain"
	"cobranca/internal/fieldcodec"
)

// BuildHumanLine derives the 47-digit linha digitável from a 44-digit
// barcode. The three leading fields each gain a modulo-10 DAC and a dot
// after their fifth digit; the fourth field is the general check digit
// and the fifth is the fator de vencimento plus amount, both copied
// through. Fields are joined by single spaces.
func BuildHumanLine(barras string) (string, error) {
	if len(barras) != BarcodeLength {
		return "", fmt.Errorf("%w: código de barras deve ter 44 dígitos", domain.ErrTamanhoInvalido)
	}
	if !fieldcodec.AllDigits(barras) {
		return "", fmt.Errorf("%w: código de barras", domain.ErrDigitosInvalidos)
	}

	campo1 := barras[0:4] + barras[19:24]
	campo2 := barras[24:34]
	campo3 := barras[34:44]

	c1 := campo1 + string(checkdigit.Modulo10(campo1))
	c2 := campo2 + string(checkdigit.Modulo10(campo2))
	c3 := campo3 + string(checkdigit.Modulo10(campo3))

	return strings.Join([]string{
		c1[:5] + "." + c1[5:],
		c2[:5] + "." + c2[5:],
		c3[:5] + "." + c3[5:],
		string(barras[4]),
		barras[5:19],
	}, " "), nil
}

// ParseHumanLine reassembles the 44-digit barcode from a linha
// digitável, accepting the formatted form or a bare 47-digit string.
// The three field DACs are verified before reassembly.
func ParseHumanLine(linha string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, linha)
	if len(digits) != 47 {
		return "", fmt.Errorf("%w: linha digitável deve ter 47 dígitos, tem %d", domain.ErrTamanhoInvalido, len(digits))
	}

	campo1, dv1 := digits[0:9], digits[9]
	campo2, dv2 := digits[10:20], digits[20]
	campo3, dv3 := digits[21:31], digits[31]
	dvGeral := digits[32]
	fatorValor := digits[33:47]

	if checkdigit.Modulo10(campo1) != dv1 {
		return "", fmt.Errorf("%w: campo 1", domain.ErrDigitoVerificador)
	}
	if checkdigit.Modulo10(campo2) != dv2 {
		return "", fmt.Errorf("%w: campo 2", domain.ErrDigitoVerificador)
	}
	if checkdigit.Modulo10(campo3) != dv3 {
		return "", fmt.Errorf("%w: campo 3", domain.ErrDigitoVerificador)
	}

	// campo1 = bank+moeda+campo livre[0:5]; campo2/campo3 = campo livre[5:25]
	return campo1[0:4] + string(dvGeral) + fatorValor + campo1[4:9] + campo2 + campo3, nil
}
