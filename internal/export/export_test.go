package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cobranca/internal/domain"
)

func titulosFixture() []domain.TituloPago {
	paga := time.Date(2026, time.September, 21, 0, 0, 0, 0, time.UTC)
	return []domain.TituloPago{
		{
			NossoNumero:   "NN1",
			SeuNumero:     "DOC001",
			ValorPago:     decimal.RequireFromString("100.00"),
			DataPagamento: &paga,
			Tarifa:        decimal.RequireFromString("1.50"),
		},
		{
			NossoNumero: "NN3",
			SeuNumero:   "DOC003",
			ValorPago:   decimal.RequireFromString("250.50"),
			Tarifa:      decimal.Zero,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, titulosFixture()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), BOM))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), BOM)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Nosso Número", rows[0][0])
	assert.Equal(t, []string{"NN1", "DOC001", "100.00", "21/09/2026", "1.50"}, rows[1])
	assert.Equal(t, []string{"NN3", "DOC003", "250.50", "", "0.00"}, rows[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), BOM)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, titulosFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Titulos Pagos")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Nosso Número", rows[0][0])
	assert.Equal(t, "NN1", rows[1][0])
	assert.Equal(t, "100.00", rows[1][2])
	assert.Equal(t, "250.50", rows[2][2])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "retorno_pagos.csv", Filename("retorno", "csv"))
	assert.Equal(t, "retorno_pagos.xlsx", Filename("retorno", "xlsx"))
}
