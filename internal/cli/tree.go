package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/contagem-estoque/internal/domain/entity"
)

func treeCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "arvore",
		Short: "Mostra a hierarquia de categorias do catálogo",
		RunE: func(c *cobra.Command, _ []string) error {
			snap, err := a.container.Catalog.Current()
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(snap.Index.Roots())
			case "text", "":
				writeTree(out, snap.Index.Roots())
				return nil
			default:
				return fmt.Errorf("formato %q não suportado (text, yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "formato", "f", "text", "text ou yaml")
	return cmd
}

// writeTree una línea por nodo: "<path>  <label>", indentada por profundidad.
func writeTree(w io.Writer, nodes []*entity.CatalogNode) {
	for _, n := range nodes {
		fmt.Fprintf(w, "%s%-8s %s\n", strings.Repeat("  ", n.Depth), n.Path, n.Label)
		writeTree(w, n.Children)
	}
}
