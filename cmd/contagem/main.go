package main

import "github.com/jhoicas/contagem-estoque/internal/cli"

func main() {
	cli.Execute()
}
