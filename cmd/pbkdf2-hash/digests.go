package main

import (
	"strings"

	"github.com/mitchellh/cli"

	"github.com/hasbyte1/go-pbkdf2-hasher/hashing"
)

// DigestsCommand lists the digests accepted by -digest.
type DigestsCommand struct {
	UI cli.Ui
}

func (c *DigestsCommand) Synopsis() string {
	return "List supported PBKDF2 digests"
}

func (c *DigestsCommand) Help() string {
	return strings.TrimSpace(`
Usage: pbkdf2-hash digests

  Prints one supported digest name per line. The default is marked.
`)
}

func (c *DigestsCommand) Run(args []string) int {
	if len(args) > 0 {
		c.UI.Error(c.Help())
		return 1
	}
	for _, d := range hashing.SupportedDigests() {
		if d == hashing.DefaultDigest {
			c.UI.Output(d.String() + " (default)")
			continue
		}
		c.UI.Output(d.String())
	}
	return 0
}
