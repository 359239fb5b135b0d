package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"cobranca/internal/export"
)

var (
	retornoCSV  bool
	retornoXLSX bool
)

var retornoCmd = &cobra.Command{
	Use:   "retorno [arquivo]",
	Short: "Processa um arquivo de retorno CNAB240",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetorno,
}

func init() {
	retornoCmd.Flags().BoolVar(&retornoCSV, "csv", false, "exporta os títulos pagos em CSV")
	retornoCmd.Flags().BoolVar(&retornoXLSX, "xlsx", false, "exporta os títulos pagos em XLSX")
	rootCmd.AddCommand(retornoCmd)
}

func runRetorno(cmd *cobra.Command, args []string) error {
	cfg, logger, svc, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("lendo %s: %w", args[0], err)
	}

	res := svc.ProcessarRetorno(string(data))
	if !res.Success {
		return fmt.Errorf("processamento do retorno falhou: %s", strings.Join(res.Errors, "; "))
	}

	cmd.Printf("banco %s: %d registro(s), %d pago(s), %d rejeitado(s), R$ %s\n",
		res.Banco, len(res.Registros), res.TotalPagos, res.TotalRejeitados,
		res.ValorTotal.StringFixed(2))

	if !retornoCSV && !retornoXLSX {
		return nil
	}

	pagos := svc.TitulosPagos(&res)
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

	if retornoCSV {
		path := filepath.Join(cfg.Output.Dir, export.Filename(base, "csv"))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("criando %s: %w", path, err)
		}
		if err := export.WriteCSV(f, pagos); err != nil {
			f.Close()
			return fmt.Errorf("exportando CSV: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println("exportado:", path)
	}

	if retornoXLSX {
		path := filepath.Join(cfg.Output.Dir, export.Filename(base, "xlsx"))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("criando %s: %w", path, err)
		}
		if err := export.WriteXLSX(f, pagos); err != nil {
			f.Close()
			return fmt.Errorf("exportando XLSX: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		cmd.Println("exportado:", path)
	}

	return nil
}
