package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/application/counting"
)

type locationFlags struct {
	corridor, column, floor, countType string
}

func (l *locationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&l.corridor, "corredor", "", "corredor")
	cmd.Flags().StringVar(&l.column, "coluna", "", "coluna")
	cmd.Flags().StringVar(&l.floor, "andar", "", "andar")
	cmd.Flags().StringVar(&l.countType, "tipo", "LOJA", "tipo de contagem")
}

func searchCmd(a *app) *cobra.Command {
	var loc locationFlags

	cmd := &cobra.Command{
		Use:   "buscar TERMO...",
		Short: "Busca produto nos lotes por código de barras ou descrição",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			res, err := a.container.Resolver.Search(c.Context(), counting.SearchInput{
				Term:      strings.Join(args, " "),
				Corridor:  loc.corridor,
				Column:    loc.column,
				Floor:     loc.floor,
				CountType: loc.countType,
			})
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if res.Message != "" {
				fmt.Fprintln(out, res.Message)
				return nil
			}
			for _, p := range res.Products {
				fmt.Fprintf(out, "%s\t%s\t%s\n", p.AccessCode, p.FullDescription, p.Packaging())
			}
			if res.Quantidade != nil {
				fmt.Fprintf(out, "Quantidade já contada: %s\n", *res.Quantidade)
			}
			return nil
		},
	}

	loc.register(cmd)
	return cmd
}

func countCmd(a *app) *cobra.Command {
	var (
		loc      locationFlags
		code     string
		quantity string
	)

	cmd := &cobra.Command{
		Use:   "contar",
		Short: "Registra uma contagem (soma à existente da mesma posição)",
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := a.container.RecordCount.Record(c.Context(), counting.RecordCountInput{
				Code:      code,
				Quantity:  quantity,
				Corridor:  loc.corridor,
				Column:    loc.column,
				Floor:     loc.floor,
				CountType: loc.countType,
			})
			if err != nil {
				return err
			}
			name := res.Entry.Description.Name
			if name == "" {
				name = "(produto fora dos lotes)"
			}
			fmt.Fprintf(c.OutOrStdout(), "Último item contado: %s  %s  total %s\n", res.Entry.Key.Code, name, res.Entry.Quantity)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "codigo", "", "código de barras (8 a 14 dígitos)")
	cmd.Flags().StringVarP(&quantity, "quantidade", "q", "", "quantidade contada")
	loc.register(cmd)
	return cmd
}
