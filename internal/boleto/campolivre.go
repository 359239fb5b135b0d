package boleto

import (
	"fmt"

	"cobranca/internal/checkdigit"
	"cobranca/internal/domain"
	"cobranca/internal/fieldcodec"
)

// CampoLivreParams carries the inputs of the bank-proprietary campo
// livre segment. Each bank reads only the fields its layout uses;
// numeric fields are zero-padded to the documented width and oversized
// values keep their rightmost digits.
type CampoLivreParams struct {
	Convenio      string
	NossoNumero   string
	Agencia       string
	Conta         string
	Carteira      string
	CodigoCedente string
	IOS           string
}

// CampoLivre dispatches to the encoder of the given bank. The six
// supported layouts are fixed by FEBRABAN registration; unknown codes
// are rejected, never defaulted.
func CampoLivre(banco domain.BankCode, p CampoLivreParams) (string, error) {
	switch banco {
	case domain.BancoDoBrasil:
		return CampoLivreBB(p)
	case domain.Bradesco:
		return CampoLivreBradesco(p), nil
	case domain.Itau:
		return CampoLivreItau(p), nil
	case domain.Santander:
		return CampoLivreSantander(p), nil
	case domain.Caixa:
		return CampoLivreCaixa(p), nil
	case domain.Sicoob:
		return CampoLivreSicoob(p), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrBancoNaoSuportado, banco)
	}
}

// CampoLivreBB encodes the Banco do Brasil layout, which branches on
// the agreement (convênio) length: 6 digits use the short nosso número
// layout, 7 digits the long one. Any other length is invalid.
func CampoLivreBB(p CampoLivreParams) (string, error) {
	switch len(p.Convenio) {
	case 6:
		return p.Convenio +
			fieldcodec.PadLeft(p.NossoNumero, 5) +
			fieldcodec.PadLeft(p.Agencia, 4) +
			fieldcodec.PadLeft(p.Conta, 8) +
			fieldcodec.PadLeft(p.Carteira, 2), nil
	case 7:
		return "000000" +
			p.Convenio +
			fieldcodec.PadLeft(p.NossoNumero, 10) +
			fieldcodec.PadLeft(p.Carteira, 2), nil
	default:
		return "", domain.ErrConvenioInvalido
	}
}

// CampoLivreBradesco encodes the Bradesco layout; the final position is
// a literal zero.
func CampoLivreBradesco(p CampoLivreParams) string {
	return fieldcodec.PadLeft(p.Agencia, 4) +
		fieldcodec.PadLeft(p.Carteira, 2) +
		fieldcodec.PadLeft(p.NossoNumero, 11) +
		fieldcodec.PadLeft(p.Conta, 7) +
		"0"
}

// CampoLivreItau encodes the Itaú layout with its two internal DACs:
// DAC1 over carteira+nosso número, DAC2 over agência+conta.
func CampoLivreItau(p CampoLivreParams) string {
	carteira := fieldcodec.PadLeft(p.Carteira, 3)
	nosso := fieldcodec.PadLeft(p.NossoNumero, 8)
	agencia := fieldcodec.PadLeft(p.Agencia, 4)
	conta := fieldcodec.PadLeft(p.Conta, 5)
	dac1 := checkdigit.Modulo10(carteira + nosso)
	dac2 := checkdigit.Modulo10(agencia + conta)
	return carteira + nosso + string(dac1) + agencia + conta + string(dac2) + "000"
}

// CampoLivreSantander encodes the Santander layout; it always opens
// with the literal '9' and carries the IOS marker ("0" when exempt).
func CampoLivreSantander(p CampoLivreParams) string {
	ios := p.IOS
	if ios == "" {
		ios = "0"
	}
	return "9" +
		fieldcodec.PadLeft(p.CodigoCedente, 7) +
		fieldcodec.PadLeft(p.NossoNumero, 13) +
		"0" +
		fieldcodec.PadLeft(ios, 3) +
		"0"
}

// CampoLivreCaixa encodes the simplified unregistered-wallet (SIGCB sem
// registro) layout only; registered-wallet layouts are not modeled.
func CampoLivreCaixa(p CampoLivreParams) string {
	return fieldcodec.PadLeft(p.CodigoCedente, 6) +
		fieldcodec.PadLeft(p.NossoNumero, 17) +
		"00"
}

// CampoLivreSicoob encodes the Sicoob layout; the trailing '1' is the
// fixed modality marker, not a computed digit.
func CampoLivreSicoob(p CampoLivreParams) string {
	return fieldcodec.PadLeft(p.Carteira, 2) +
		fieldcodec.PadLeft(p.CodigoCedente, 5) +
		fieldcodec.PadLeft(p.NossoNumero, 11) +
		fieldcodec.PadLeft(p.Agencia, 3) +
		fieldcodec.PadLeft(p.Conta, 5) +
		"1"
}
