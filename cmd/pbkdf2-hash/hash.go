package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-pbkdf2-hasher/hashing"
)

// HashCommand derives a hash, generating the password and/or salt when they
// are not given, and prints the triple as YAML.
type HashCommand struct {
	UI        cli.Ui
	LogOutput io.Writer

	flagConfig     string
	flagPassword   string
	flagPrompt     bool
	flagSalt       string
	flagSaltLength int
	flagIterations int
	flagKeyLength  int
	flagDigest     string
	flagLogLevel   string
}

func (c *HashCommand) Synopsis() string {
	return "Derive a PBKDF2 hash, generating missing inputs"
}

func (c *HashCommand) Help() string {
	helpText := `
Usage: pbkdf2-hash hash [options]

  Derives a PBKDF2 hash and prints password, salt and hash as base64 in
  YAML form. A missing salt is generated; a missing password (10 random
  bytes) is generated together with a fresh salt.

  Register a new credential:

      $ pbkdf2-hash hash

  Re-derive an existing credential:

      $ pbkdf2-hash hash -password=hunter2 -salt=c2FsdA==

Options:

  -config=<path>        YAML file with salt_length, iterations, key_length
                        and digest. Flags take precedence.
  -password=<string>    Password to hash. Visible in the process list;
                        prefer -prompt.
  -prompt               Read the password from the terminal.
  -salt=<base64>        Salt to use instead of a generated one. Ignored
                        unless a password is given.
  -salt-length=<int>    Generated salt length in bytes. Default 64.
  -iterations=<int>     PBKDF2 iterations. Default 10000.
  -key-length=<int>     Derived key length in bytes. Default 128.
  -digest=<name>        PBKDF2 digest. Default sha1. See "pbkdf2-hash digests".
  -log-level=<level>    trace, debug, info, warn or error. Default warn.
`
	return strings.TrimSpace(helpText)
}

func (c *HashCommand) flags() *flag.FlagSet {
	f := flag.NewFlagSet("hash", flag.ContinueOnError)
	f.Usage = func() { c.UI.Error(c.Help()) }
	f.SetOutput(io.Discard)

	f.StringVar(&c.flagConfig, "config", "", "")
	f.StringVar(&c.flagPassword, "password", "", "")
	f.BoolVar(&c.flagPrompt, "prompt", false, "")
	f.StringVar(&c.flagSalt, "salt", "", "")
	f.IntVar(&c.flagSaltLength, "salt-length", 0, "")
	f.IntVar(&c.flagIterations, "iterations", 0, "")
	f.IntVar(&c.flagKeyLength, "key-length", 0, "")
	f.StringVar(&c.flagDigest, "digest", "", "")
	f.StringVar(&c.flagLogLevel, "log-level", "warn", "")
	return f
}

func (c *HashCommand) Run(args []string) int {
	f := c.flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if f.NArg() > 0 {
		c.UI.Error(fmt.Sprintf("Too many arguments (expected 0, got %d)", f.NArg()))
		return 1
	}

	level := hclog.LevelFromString(c.flagLogLevel)
	if level == hclog.NoLevel {
		c.UI.Error(fmt.Sprintf("Invalid log level %q: must be trace, debug, info, warn or error", c.flagLogLevel))
		return 1
	}

	logOutput := c.LogOutput
	if logOutput == nil {
		logOutput = io.Discard
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "pbkdf2-hash",
		Level:  level,
		Output: logOutput,
	})

	opts, err := c.options()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	h, err := hashing.NewPasswordHasher(opts, hashing.WithLogger(logger))
	if err != nil {
		c.UI.Error("Invalid configuration: " + err.Error())
		return 1
	}
	logger.Debug("hasher ready",
		"salt_length", h.Options().SaltLength,
		"iterations", h.Options().Iterations,
		"key_length", h.Options().KeyLength,
		"digest", h.Options().Digest.String())

	password := c.flagPassword
	if c.flagPrompt {
		password, err = c.UI.AskSecret("Password:")
		if err != nil {
			c.UI.Error("Failed to read password: " + err.Error())
			return 1
		}
	}

	type outcome struct {
		res hashing.Result
		err error
	}
	done := make(chan outcome, 1)
	h.Hash(hashing.Request{Password: password, Salt: c.flagSalt}, func(res hashing.Result, err error) {
		done <- outcome{res, err}
	})
	o := <-done
	if o.err != nil {
		c.UI.Error("Error hashing credential: " + o.err.Error())
		return 2
	}

	out, err := yaml.Marshal(o.res)
	if err != nil {
		c.UI.Error("Error encoding result: " + err.Error())
		return 2
	}
	c.UI.Output(strings.TrimSpace(string(out)))
	return 0
}

// options merges the config file with explicit flags.
func (c *HashCommand) options() (hashing.PBKDF2Options, error) {
	var opts hashing.PBKDF2Options
	if c.flagConfig != "" {
		loaded, err := loadConfig(c.flagConfig)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}
	if c.flagSaltLength != 0 {
		opts.SaltLength = c.flagSaltLength
	}
	if c.flagIterations != 0 {
		opts.Iterations = c.flagIterations
	}
	if c.flagKeyLength != 0 {
		opts.KeyLength = c.flagKeyLength
	}
	if c.flagDigest != "" {
		opts.Digest = hashing.Digest(c.flagDigest)
	}
	return opts, nil
}
