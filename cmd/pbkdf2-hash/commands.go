package main

import (
	"io"

	"github.com/mitchellh/cli"
)

func commands(ui cli.Ui, logOutput io.Writer) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"hash": func() (cli.Command, error) {
			return &HashCommand{UI: ui, LogOutput: logOutput}, nil
		},
		"digests": func() (cli.Command, error) {
			return &DigestsCommand{UI: ui}, nil
		},
	}
}
