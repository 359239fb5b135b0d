package boleto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobranca/internal/domain"
)

const bbLinha = "00190.50095 40144.816069 06809.350314 3 37370000000100"

func TestBuildHumanLine(t *testing.T) {
	t.Run("bb_reference", func(t *testing.T) {
		linha, err := BuildHumanLine(bbBarcode)
		require.NoError(t, err)
		assert.Equal(t, bbLinha, linha)
	})

	t.Run("shape", func(t *testing.T) {
		linha, err := BuildHumanLine(bbBarcode)
		require.NoError(t, err)

		assert.Equal(t, 3, strings.Count(linha, "."))
		assert.Equal(t, 4, strings.Count(linha, " "))

		fields := strings.Split(linha, " ")
		require.Len(t, fields, 5)
		assert.Len(t, fields[0], 11)
		assert.Len(t, fields[1], 12)
		assert.Len(t, fields[2], 12)
		assert.Len(t, fields[3], 1)
		assert.Len(t, fields[4], 14)
	})

	t.Run("wrong_length", func(t *testing.T) {
		_, err := BuildHumanLine("0019")
		assert.ErrorIs(t, err, domain.ErrTamanhoInvalido)
	})
}

func TestParseHumanLine(t *testing.T) {
	t.Run("recovers_barcode", func(t *testing.T) {
		barras, err := ParseHumanLine(bbLinha)
		require.NoError(t, err)
		assert.Equal(t, bbBarcode, barras)
	})

	t.Run("accepts_bare_digits", func(t *testing.T) {
		bare := strings.NewReplacer(".", "", " ", "").Replace(bbLinha)
		barras, err := ParseHumanLine(bare)
		require.NoError(t, err)
		assert.Equal(t, bbBarcode, barras)
	})

	t.Run("field_dac_mismatch", func(t *testing.T) {
		// corrupt the DAC of field 1 (last digit before the first space)
		bad := bbLinha[:10] + "0" + bbLinha[11:]
		_, err := ParseHumanLine(bad)
		assert.ErrorIs(t, err, domain.ErrDigitoVerificador)
	})

	t.Run("wrong_length", func(t *testing.T) {
		_, err := ParseHumanLine("123456")
		assert.ErrorIs(t, err, domain.ErrTamanhoInvalido)
	})
}
