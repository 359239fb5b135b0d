// Package boleto implements the FEBRABAN boleto barcode, its
// human-readable linha digitável and the bank-specific campo livre
// layouts.
package boleto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"cobranca/internal/checkdigit"
	"cobranca/internal/domain"
	"cobranca/internal/fieldcodec"
)

// BarcodeLength is the fixed size of a boleto barcode.
const BarcodeLength = 44

// febrabanEpoch is the base date of the fator de vencimento: factor 0
// maps to 1997-10-07.
var febrabanEpoch = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

// BarcodeParams are the inputs of a barcode build. Moeda defaults to
// "9" (Real) when empty; CampoLivre is right-padded with zeros and
// truncated to exactly 25 digits.
type BarcodeParams struct {
	Banco           domain.BankCode
	Moeda           string
	FatorVencimento int
	Valor           decimal.Decimal
	CampoLivre      string
}

// Barcode is a built boleto: the 44-digit barcode plus its formatted
// linha digitável.
type Barcode struct {
	CodigoBarras   string
	LinhaDigitavel string
}

// BarcodeInfo is the decomposition of a 44-digit barcode.
type BarcodeInfo struct {
	Banco           domain.BankCode
	Moeda           string
	DigitoGeral     byte
	FatorVencimento int
	Valor           decimal.Decimal
	CampoLivre      string
	Vencimento      time.Time
}

// ValidationResult accumulates every structural and integrity problem
// found in a barcode.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// DueFactor returns the fator de vencimento for a due date: whole days
// elapsed since 1997-10-07. Factors past 9999 wrap through
// 1000 + ((days-1000) mod 9000), which diverges from the FEBRABAN
// epoch-reset fallback but is kept for compatibility with files this
// system already emitted.
func DueFactor(vencimento time.Time) int {
	v := time.Date(vencimento.Year(), vencimento.Month(), vencimento.Day(), 0, 0, 0, 0, time.UTC)
	days := int(v.Sub(febrabanEpoch).Hours() / 24)
	if days > 9999 {
		return 1000 + ((days - 1000) % 9000)
	}
	return days
}

// DueDate is the inverse of DueFactor for in-range factors.
func DueDate(fator int) time.Time {
	return febrabanEpoch.AddDate(0, 0, fator)
}

// BuildBarcode composes the 44-digit barcode. Layout: bank (3), moeda
// (1), general check digit (1, modulo-11 over the other 43), fator de
// vencimento (4), amount in cents (10), campo livre (25).
func BuildBarcode(p BarcodeParams) (string, error) {
	if !p.Banco.Supported() {
		return "", fmt.Errorf("%w: %q", domain.ErrBancoNaoSuportado, p.Banco)
	}
	moeda := p.Moeda
	if moeda == "" {
		moeda = "9"
	}
	if p.FatorVencimento < 0 || p.FatorVencimento > 9999 {
		return "", fmt.Errorf("%w: fator de vencimento %d fora de 0..9999", domain.ErrTamanhoInvalido, p.FatorVencimento)
	}

	campoLivre := p.CampoLivre
	if len(campoLivre) < 25 {
		for len(campoLivre) < 25 {
			campoLivre += "0"
		}
	}
	campoLivre = campoLivre[:25]

	semDV := string(p.Banco) + moeda +
		fieldcodec.PadLeft(fmt.Sprintf("%d", p.FatorVencimento), 4) +
		fieldcodec.EncodeCents(p.Valor, 10) +
		campoLivre
	if !fieldcodec.AllDigits(semDV) {
		return "", fmt.Errorf("%w: código de barras", domain.ErrDigitosInvalidos)
	}

	dv := checkdigit.Modulo11(semDV)
	return semDV[:4] + string(dv) + semDV[4:], nil
}

// Build composes the barcode and its linha digitável in one call.
func Build(p BarcodeParams) (Barcode, error) {
	barras, err := BuildBarcode(p)
	if err != nil {
		return Barcode{}, err
	}
	linha, err := BuildHumanLine(barras)
	if err != nil {
		return Barcode{}, err
	}
	return Barcode{CodigoBarras: barras, LinhaDigitavel: linha}, nil
}

// Validate checks length, digit class and the general check digit,
// accumulating every error found. A wrong length stops further checks
// since positions would be meaningless.
func Validate(barras string) ValidationResult {
	var errs []string
	if len(barras) != BarcodeLength {
		errs = append(errs, fmt.Sprintf("código de barras deve ter 44 dígitos, tem %d", len(barras)))
		return ValidationResult{Valid: false, Errors: errs}
	}
	if !fieldcodec.AllDigits(barras) {
		errs = append(errs, "código de barras contém caracteres não numéricos")
	} else {
		semDV := barras[:4] + barras[5:]
		if checkdigit.Modulo11(semDV) != barras[4] {
			errs = append(errs, "dígito verificador geral não confere")
		}
	}
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ExtractInfo decomposes a 44-digit barcode. It does not validate the
// check digit; callers needing integrity run Validate first.
func ExtractInfo(barras string) (BarcodeInfo, error) {
	if len(barras) != BarcodeLength {
		return BarcodeInfo{}, fmt.Errorf("%w: código de barras deve ter 44 dígitos", domain.ErrTamanhoInvalido)
	}
	if !fieldcodec.AllDigits(barras) {
		return BarcodeInfo{}, fmt.Errorf("%w: código de barras", domain.ErrDigitosInvalidos)
	}

	fator := 0
	for _, c := range barras[5:9] {
		fator = fator*10 + int(c-'0')
	}
	valor, err := fieldcodec.DecodeCents(barras[9:19])
	if err != nil {
		return BarcodeInfo{}, err
	}

	return BarcodeInfo{
		Banco:           domain.BankCode(barras[0:3]),
		Moeda:           barras[3:4],
		DigitoGeral:     barras[4],
		FatorVencimento: fator,
		Valor:           valor,
		CampoLivre:      barras[19:44],
		Vencimento:      DueDate(fator),
	}, nil
}
