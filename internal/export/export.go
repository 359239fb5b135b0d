// Package export renders the paid titles of a parsed return file as
// CSV or XLSX reports for reconciliation.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"cobranca/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the report header row.
var columns = []string{
	"Nosso Número",
	"Seu Número",
	"Valor Pago",
	"Data Pagamento",
	"Tarifa",
}

// WriteCSV writes the paid-title report as BOM-prefixed CSV.
func WriteCSV(w io.Writer, titulos []domain.TituloPago) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range titulos {
		if err := cw.Write(tituloToRow(&titulos[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the paid-title report as a single-sheet workbook.
func WriteXLSX(w io.Writer, titulos []domain.TituloPago) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Titulos Pagos"
	f.SetSheetName("Sheet1", sheet)

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i := range titulos {
		row := tituloToRow(&titulos[i])
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func tituloToRow(t *domain.TituloPago) []string {
	row := make([]string, len(columns))
	row[0] = t.NossoNumero
	row[1] = t.SeuNumero
	row[2] = t.ValorPago.StringFixed(2)
	if t.DataPagamento != nil {
		row[3] = t.DataPagamento.Format("02/01/2006")
	}
	row[4] = t.Tarifa.StringFixed(2)
	return row
}

// Filename derives the report name from the return file it was
// extracted from, e.g. retorno.ret -> retorno_pagos.csv.
func Filename(base, ext string) string {
	return fmt.Sprintf("%s_pagos.%s", base, ext)
}
