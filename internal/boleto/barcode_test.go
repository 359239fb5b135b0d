package boleto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobranca/internal/domain"
)

// Published Banco do Brasil reference boleto: R$ 1,00, fator 3737.
const bbBarcode = "00193373700000001000500940144816060680935031"

func bbParams() BarcodeParams {
	return BarcodeParams{
		Banco:           domain.BancoDoBrasil,
		Moeda:           "9",
		FatorVencimento: 3737,
		Valor:           decimal.RequireFromString("1.00"),
		CampoLivre:      "0500940144816060680935031",
	}
}

func TestBuildBarcode(t *testing.T) {
	t.Run("bb_reference", func(t *testing.T) {
		barras, err := BuildBarcode(bbParams())
		require.NoError(t, err)
		assert.Equal(t, bbBarcode, barras)
	})

	t.Run("always_44_digits_and_valid", func(t *testing.T) {
		p := BarcodeParams{
			Banco:           domain.Itau,
			FatorVencimento: 9999,
			Valor:           decimal.RequireFromString("98765.43"),
			CampoLivre:      "1090001234520104500007891",
		}
		barras, err := BuildBarcode(p)
		require.NoError(t, err)
		assert.Len(t, barras, 44)
		assert.True(t, Validate(barras).Valid)
	})

	t.Run("short_campo_livre_padded", func(t *testing.T) {
		p := bbParams()
		p.CampoLivre = "123"
		barras, err := BuildBarcode(p)
		require.NoError(t, err)
		assert.Equal(t, "1230000000000000000000000", barras[19:])
	})

	t.Run("oversized_campo_livre_truncated", func(t *testing.T) {
		p := bbParams()
		p.CampoLivre = "12345678901234567890123456789"
		barras, err := BuildBarcode(p)
		require.NoError(t, err)
		assert.Equal(t, "1234567890123456789012345", barras[19:])
	})

	t.Run("default_currency_is_9", func(t *testing.T) {
		p := bbParams()
		p.Moeda = ""
		barras, err := BuildBarcode(p)
		require.NoError(t, err)
		assert.Equal(t, byte('9'), barras[3])
	})

	t.Run("unknown_bank_rejected", func(t *testing.T) {
		p := bbParams()
		p.Banco = "999"
		_, err := BuildBarcode(p)
		assert.ErrorIs(t, err, domain.ErrBancoNaoSuportado)
	})

	t.Run("due_factor_out_of_range", func(t *testing.T) {
		p := bbParams()
		p.FatorVencimento = 10000
		_, err := BuildBarcode(p)
		assert.Error(t, err)
	})
}

func TestDueFactor(t *testing.T) {
	epoch := time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DueFactor(epoch))
	assert.Equal(t, 1, DueFactor(epoch.AddDate(0, 0, 1)))

	y2k := DueFactor(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 816, y2k)
	assert.Greater(t, y2k, 800)

	t.Run("wraps_past_9999", func(t *testing.T) {
		assert.Equal(t, 9999, DueFactor(epoch.AddDate(0, 0, 9999)))
		assert.Equal(t, 1000, DueFactor(epoch.AddDate(0, 0, 10000)))
		assert.Equal(t, 1001, DueFactor(epoch.AddDate(0, 0, 10001)))
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid_reference", func(t *testing.T) {
		res := Validate(bbBarcode)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("wrong_length_stops_checks", func(t *testing.T) {
		res := Validate("0019")
		assert.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		assert.Contains(t, res.Errors[0], "44")
	})

	t.Run("non_digit", func(t *testing.T) {
		mutated := bbBarcode[:10] + "X" + bbBarcode[11:]
		res := Validate(mutated)
		assert.False(t, res.Valid)
	})

	t.Run("any_single_digit_change_detected", func(t *testing.T) {
		for i := 0; i < len(bbBarcode); i++ {
			if i == 4 {
				continue // general check digit itself
			}
			b := []byte(bbBarcode)
			b[i] = '0' + (b[i]-'0'+1)%10
			res := Validate(string(b))
			assert.False(t, res.Valid, "mutation at position %d not detected", i)
		}
	})
}

func TestExtractInfo(t *testing.T) {
	info, err := ExtractInfo(bbBarcode)
	require.NoError(t, err)

	assert.Equal(t, domain.BancoDoBrasil, info.Banco)
	assert.Equal(t, "9", info.Moeda)
	assert.Equal(t, byte('3'), info.DigitoGeral)
	assert.Equal(t, 3737, info.FatorVencimento)
	assert.True(t, info.Valor.Equal(decimal.RequireFromString("1.00")))
	assert.Equal(t, "0500940144816060680935031", info.CampoLivre)
	assert.Equal(t, DueDate(3737), info.Vencimento)

	t.Run("wrong_length", func(t *testing.T) {
		_, err := ExtractInfo("123")
		assert.ErrorIs(t, err, domain.ErrTamanhoInvalido)
	})
}

func TestBarcodeRoundTrip(t *testing.T) {
	p := BarcodeParams{
		Banco:           domain.Bradesco,
		FatorVencimento: 4321,
		Valor:           decimal.RequireFromString("1234.56"),
		CampoLivre:      "1234091234567890112345670",
	}
	barras, err := BuildBarcode(p)
	require.NoError(t, err)

	info, err := ExtractInfo(barras)
	require.NoError(t, err)
	assert.True(t, info.Valor.Equal(p.Valor))
	assert.Equal(t, p.FatorVencimento, info.FatorVencimento)
	assert.Equal(t, p.CampoLivre, info.CampoLivre)
}
