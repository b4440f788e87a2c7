// Command pbkdf2-hash derives PBKDF2 credential hashes from the shell.
//
//	pbkdf2-hash hash                               # generate password and salt
//	pbkdf2-hash hash -password=hunter2 -salt=...   # re-derive
//	pbkdf2-hash digests                            # list digests
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := cli.NewCLI("pbkdf2-hash", version)
	c.Args = args
	c.Commands = commands(ui, os.Stderr)

	status, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}
	return status
}
