package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/application/dto"
)

func lotCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "lote",
		Short: "Lotes de produtos para contar",
	}
	c.AddCommand(lotCreateCmd(a), lotListCmd(a))
	return c
}

func lotCreateCmd(a *app) *cobra.Command {
	var paths []string

	cmd := &cobra.Command{
		Use:   "criar",
		Short: "Marca os nós indicados (em ordem) e salva a seleção como lote",
		RunE: func(c *cobra.Command, _ []string) error {
			uc := a.container.Selection
			sess, err := uc.Start()
			if err != nil {
				return err
			}
			defer uc.Discard(sess.ID)

			for _, p := range paths {
				if _, err := uc.Toggle(sess.ID, dto.ToggleRequest{Path: p, Checked: true}); err != nil {
					return err
				}
			}
			out, err := uc.Commit(c.Context(), sess.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Lote %d criado com %d produtos\n", out.ID, out.Products)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&paths, "caminho", "c", nil, "caminho do nó no árvore (ex.: 0.1); repetível")
	_ = cmd.MarkFlagRequired("caminho")
	return cmd
}

func lotListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista os lotes salvos",
		RunE: func(c *cobra.Command, _ []string) error {
			list, err := a.container.Lots.List(c.Context())
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			if list.Total == 0 {
				fmt.Fprintln(out, "(nenhum lote)")
				return nil
			}
			for _, l := range list.Items {
				fmt.Fprintf(out, "- lote %d  %d produtos  %s\n", l.ID, len(l.Products), l.CreatedAt.Format("02/01/2006 15:04"))
			}
			return nil
		},
	}
}
