package boleto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cobranca/internal/checkdigit"
	"cobranca/internal/domain"
)

func TestCampoLivreBB(t *testing.T) {
	t.Run("convenio_6_digitos", func(t *testing.T) {
		campo, err := CampoLivreBB(CampoLivreParams{
			Convenio:    "123456",
			NossoNumero: "12345",
			Agencia:     "1234",
			Conta:       "12345678",
			Carteira:    "17",
		})
		require.NoError(t, err)
		assert.Len(t, campo, 25)
		assert.Equal(t, "123456"+"12345"+"1234"+"12345678"+"17", campo)
	})

	t.Run("convenio_7_digitos", func(t *testing.T) {
		campo, err := CampoLivreBB(CampoLivreParams{
			Convenio:    "1234567",
			NossoNumero: "1234567890",
			Carteira:    "17",
		})
		require.NoError(t, err)
		assert.Len(t, campo, 25)
		assert.Equal(t, "000000"+"1234567"+"1234567890"+"17", campo)
	})

	t.Run("convenio_5_digitos_rejeitado", func(t *testing.T) {
		_, err := CampoLivreBB(CampoLivreParams{Convenio: "12345"})
		require.ErrorIs(t, err, domain.ErrConvenioInvalido)
		assert.EqualError(t, err, "Convênio deve ter 6 ou 7 dígitos")
	})

	t.Run("fields_padded", func(t *testing.T) {
		campo, err := CampoLivreBB(CampoLivreParams{
			Convenio:    "123456",
			NossoNumero: "7",
			Agencia:     "1",
			Conta:       "9",
			Carteira:    "7",
		})
		require.NoError(t, err)
		assert.Equal(t, "123456"+"00007"+"0001"+"00000009"+"07", campo)
	})
}

func TestCampoLivreBradesco(t *testing.T) {
	campo := CampoLivreBradesco(CampoLivreParams{
		Agencia:     "1234",
		Carteira:    "09",
		NossoNumero: "12345678901",
		Conta:       "1234567",
	})
	assert.Len(t, campo, 25)
	assert.Equal(t, "1234"+"09"+"12345678901"+"1234567"+"0", campo)
	assert.Equal(t, byte('0'), campo[24])
}

func TestCampoLivreItau(t *testing.T) {
	campo := CampoLivreItau(CampoLivreParams{
		Carteira:    "109",
		NossoNumero: "12345678",
		Agencia:     "1234",
		Conta:       "56789",
	})
	assert.Len(t, campo, 25)

	dac1 := string(checkdigit.Modulo10("109" + "12345678"))
	dac2 := string(checkdigit.Modulo10("1234" + "56789"))
	assert.Equal(t, "109"+"12345678"+dac1+"1234"+"56789"+dac2+"000", campo)
	assert.Equal(t, "000", campo[22:])
}

func TestCampoLivreSantander(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		campo := CampoLivreSantander(CampoLivreParams{
			CodigoCedente: "1234567",
			NossoNumero:   "1234567890123",
			IOS:           "0",
		})
		assert.Len(t, campo, 26)
		assert.Equal(t, "9"+"1234567"+"1234567890123"+"0"+"000"+"0", campo)
		assert.Equal(t, byte('9'), campo[0])
	})

	t.Run("ios_defaults_to_zero", func(t *testing.T) {
		campo := CampoLivreSantander(CampoLivreParams{
			CodigoCedente: "1234567",
			NossoNumero:   "1234567890123",
		})
		assert.Equal(t, "000", campo[22:25])
	})
}

func TestCampoLivreCaixa(t *testing.T) {
	campo := CampoLivreCaixa(CampoLivreParams{
		CodigoCedente: "123456",
		NossoNumero:   "12345678901234567",
	})
	assert.Len(t, campo, 25)
	assert.Equal(t, "123456"+"12345678901234567"+"00", campo)
}

func TestCampoLivreSicoob(t *testing.T) {
	campo := CampoLivreSicoob(CampoLivreParams{
		Carteira:      "01",
		CodigoCedente: "12345",
		NossoNumero:   "12345678901",
		Agencia:       "123",
		Conta:         "12345",
	})
	assert.Len(t, campo, 27)
	assert.Equal(t, "01"+"12345"+"12345678901"+"123"+"12345"+"1", campo)
	assert.Equal(t, byte('1'), campo[26])
}

func TestCampoLivreDispatch(t *testing.T) {
	p := CampoLivreParams{
		Convenio:      "123456",
		NossoNumero:   "1",
		Agencia:       "1",
		Conta:         "1",
		Carteira:      "1",
		CodigoCedente: "1",
	}

	for _, banco := range []domain.BankCode{
		domain.BancoDoBrasil, domain.Bradesco, domain.Itau,
		domain.Santander, domain.Caixa, domain.Sicoob,
	} {
		campo, err := CampoLivre(banco, p)
		require.NoError(t, err, "banco %s", banco)
		assert.NotEmpty(t, campo)
	}

	t.Run("unknown_bank", func(t *testing.T) {
		_, err := CampoLivre("999", p)
		assert.ErrorIs(t, err, domain.ErrBancoNaoSuportado)
	})
}
