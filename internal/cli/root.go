// Package cli comandos de línea de "contagem" sobre los mismos casos de uso que la API.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/contagem-estoque/internal/bootstrap"
	"github.com/jhoicas/contagem-estoque/pkg/config"
	"github.com/jhoicas/contagem-estoque/pkg/logger"
)

// Execute corre el comando raíz.
func Execute() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

// app estado compartido entre subcomandos: se abre en PersistentPreRunE y lo
// cierra quien ejecutó el comando, también cuando RunE falla.
type app struct {
	container *bootstrap.Container
}

func (a *app) close() {
	if a.container != nil {
		a.container.Close()
		a.container = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "contagem",
		Short:        "Contagem de estoque offline: lotes, contagens e relatório",
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := cfg.App.LogLevel
			if debug {
				level = "debug"
			}
			log := logger.New(logger.Config{Env: "development", Level: level, Out: c.ErrOrStderr()})
			a.container, err = bootstrap.New(c.Context(), cfg, log)
			return err
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log detalhado em stderr")
	cmd.AddCommand(
		treeCmd(a),
		lotCmd(a),
		searchCmd(a),
		countCmd(a),
		exportCmd(a),
		resetCmd(a),
	)
	return cmd
}
