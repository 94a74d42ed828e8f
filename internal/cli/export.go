package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/application/report"
)

func exportCmd(a *app) *cobra.Command {
	var (
		in  report.ExportInput
		dir string
	)

	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Gera o relatório de contagens ({USUARIO}_{LOJA}_{dd-mm-aaaa}.txt)",
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := a.container.Export.Export(c.Context(), in)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, res.FileName)
			if err := os.WriteFile(path, res.Body, 0o644); err != nil {
				return fmt.Errorf("gravar %s: %w", path, err)
			}
			fmt.Fprintf(c.OutOrStdout(), "%s (%d linhas)\n", path, res.Lines)
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Operator, "usuario", "u", "", "operador (padrão REPORT_OPERATOR)")
	cmd.Flags().StringVarP(&in.Store, "loja", "l", "", "loja (padrão REPORT_STORE)")
	cmd.Flags().StringVarP(&in.Format, "formato", "f", "txt", "txt, xlsx ou pdf")
	cmd.Flags().StringVarP(&dir, "saida", "o", ".", "diretório de saída")
	return cmd
}

func resetCmd(a *app) *cobra.Command {
	var lots bool

	cmd := &cobra.Command{
		Use:   "limpar",
		Short: "Apaga todas as contagens (e os lotes com --lotes)",
		RunE: func(c *cobra.Command, _ []string) error {
			if err := a.container.Ledger.Reset(c.Context()); err != nil {
				return err
			}
			if lots {
				if err := a.container.Lots.DeleteAll(c.Context()); err != nil {
					return err
				}
			}
			fmt.Fprintln(c.OutOrStdout(), "Banco limpo.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&lots, "lotes", false, "apaga também os lotes")
	return cmd
}
