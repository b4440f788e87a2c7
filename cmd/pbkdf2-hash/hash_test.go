package main

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-pbkdf2-hasher/hashing"
)

func testHashCommand(tb testing.TB) (*cli.MockUi, *HashCommand) {
	tb.Helper()
	ui := cli.NewMockUi()
	return ui, &HashCommand{UI: ui}
}

func parseOutput(t *testing.T, ui *cli.MockUi) hashing.Result {
	t.Helper()
	var res hashing.Result
	// Prompts are echoed to the output writer by MockUi.
	out := strings.TrimPrefix(ui.OutputWriter.String(), "Password:")
	if err := yaml.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, ui.OutputWriter.String())
	}
	return res
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hasher.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHashCommand_GeneratesEverything(t *testing.T) {
	ui, cmd := testHashCommand(t)
	if code := cmd.Run([]string{"-iterations=1", "-salt-length=16", "-key-length=32"}); code != 0 {
		t.Fatalf("exit %d: %s", code, ui.ErrorWriter.String())
	}
	res := parseOutput(t, ui)
	salt, _ := base64.StdEncoding.DecodeString(res.Salt)
	key, _ := base64.StdEncoding.DecodeString(res.Hash)
	if res.Password == "" || len(salt) != 16 || len(key) != 32 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestHashCommand_KnownAnswer(t *testing.T) {
	ui, cmd := testHashCommand(t)
	code := cmd.Run([]string{
		"-password=password", "-salt=c2FsdA==",
		"-iterations=1", "-key-length=20", "-digest=sha1",
	})
	if code != 0 {
		t.Fatalf("exit %d: %s", code, ui.ErrorWriter.String())
	}
	res := parseOutput(t, ui)
	if res.Hash != "DGDID5YfDnHzqbUkr2ASBi/gN6Y=" || res.Salt != "c2FsdA==" || res.Password != "password" {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestHashCommand_Prompt(t *testing.T) {
	ui, cmd := testHashCommand(t)
	ui.InputReader = strings.NewReader("hunter2\n")
	if code := cmd.Run([]string{"-prompt", "-iterations=1", "-key-length=16"}); code != 0 {
		t.Fatalf("exit %d: %s", code, ui.ErrorWriter.String())
	}
	if res := parseOutput(t, ui); res.Password != "hunter2" {
		t.Errorf("password = %q, want hunter2", res.Password)
	}
}

func TestHashCommand_ConfigFile(t *testing.T) {
	path := writeConfig(t, "salt_length: 8\niterations: 1\nkey_length: 24\ndigest: sha512\n")
	ui, cmd := testHashCommand(t)
	if code := cmd.Run([]string{"-config=" + path, "-key-length=12"}); code != 0 {
		t.Fatalf("exit %d: %s", code, ui.ErrorWriter.String())
	}
	res := parseOutput(t, ui)
	salt, _ := base64.StdEncoding.DecodeString(res.Salt)
	key, _ := base64.StdEncoding.DecodeString(res.Hash)
	if len(salt) != 8 {
		t.Errorf("salt length = %d, want 8 from config", len(salt))
	}
	if len(key) != 12 {
		t.Errorf("key length = %d, want 12 from flag", len(key))
	}
}

func TestHashCommand_Errors(t *testing.T) {
	badConfig := writeConfig(t, "rounds: 3\n")
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"unknown flag", []string{"-nope"}, 1, "flag provided but not defined"},
		{"extra args", []string{"extra"}, 1, "Too many arguments"},
		{"missing config", []string{"-config=/does/not/exist.yaml"}, 1, "could not read config file"},
		{"unknown config key", []string{"-config=" + badConfig}, 1, "could not parse config file"},
		{"bad digest", []string{"-digest=whirlpool"}, 1, "unsupported digest"},
		{"bad log level", []string{"-log-level=loud"}, 1, "Invalid log level"},
		{"empty log level", []string{"-log-level="}, 1, "Invalid log level"},
		{"bad salt", []string{"-password=pw", "-salt=***", "-iterations=1"}, 2, "not valid base64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, cmd := testHashCommand(t)
			if code := cmd.Run(tt.args); code != tt.code {
				t.Errorf("exit = %d, want %d", code, tt.code)
			}
			if got := ui.ErrorWriter.String(); !strings.Contains(got, tt.want) {
				t.Errorf("stderr %q does not contain %q", got, tt.want)
			}
		})
	}
}

func TestDigestsCommand(t *testing.T) {
	ui := cli.NewMockUi()
	cmd := &DigestsCommand{UI: ui}
	if code := cmd.Run(nil); code != 0 {
		t.Fatalf("exit %d", code)
	}
	out := ui.OutputWriter.String()
	if !strings.Contains(out, "sha1 (default)") || !strings.Contains(out, "sha3-256") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if code := cmd.Run([]string{"x"}); code != 1 {
		t.Errorf("exit = %d, want 1", code)
	}
}
