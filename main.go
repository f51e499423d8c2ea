// Package main is the entry point of the darcula CLI.
package main

import (
	"github.com/darcula-go/darcula/cmd"
	"github.com/darcula-go/darcula/config"
	"github.com/darcula-go/darcula/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
