package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	keywrap "github.com/keywrap/keywrap-go"
)

// execute runs the command tree with the given stdin and args and
// returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand("test")
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestWrapCommand(t *testing.T) {
	out, err := execute(t, "hello world", "wrap", "--secret", "topsecret")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Deterministic scheme: the exact token is fixed for this input.
	if got, want := strings.TrimSpace(out), "vQDxHw1KEYXNFrAfkIr-4amDZA"; got != want {
		t.Errorf("output = %s, want %s", got, want)
	}
}

func TestUnwrapCommand(t *testing.T) {
	token := keywrap.Wrap([]byte("topsecret"), []byte("hello world"))

	out, err := execute(t, "", "unwrap", token, "--secret", "topsecret")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello world" {
		t.Errorf("output = %q, want %q", out, "hello world")
	}
}

func TestUnwrapCommand_TokenFromStdin(t *testing.T) {
	token := keywrap.Wrap([]byte("topsecret"), []byte("piped payload"))

	out, err := execute(t, token+"\n", "unwrap", "--secret", "topsecret")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "piped payload" {
		t.Errorf("output = %q, want %q", out, "piped payload")
	}
}

func TestUnwrapCommand_InvalidToken(t *testing.T) {
	_, err := execute(t, "", "unwrap", "not-a-token", "--secret", "topsecret")
	if !errors.Is(err, keywrap.ErrInvalidToken) {
		t.Errorf("Execute() error = %v, want ErrInvalidToken", err)
	}
}

func TestUnwrapCommand_WrongSecret(t *testing.T) {
	token := keywrap.Wrap([]byte("topsecret"), []byte("hello world"))

	_, err := execute(t, "", "unwrap", token, "--secret", "wrongsecret")
	if !errors.Is(err, keywrap.ErrInvalidToken) {
		t.Errorf("Execute() error = %v, want ErrInvalidToken", err)
	}
}

func TestInspectCommand(t *testing.T) {
	// Inspect needs no secret; it only decodes the framing.
	out, err := execute(t, "", "inspect", "vQDxHw1KEYXNFrAfkIr-4amDZA")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"tag:  bd00f11f", "salt: 0d4a1185", "body: 11 bytes"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWrapCommand_NoSecret(t *testing.T) {
	t.Setenv(secretEnvVar, "")

	_, err := execute(t, "data", "wrap")
	if err == nil {
		t.Error("Execute() expected error when no secret is available")
	}
}

func TestWrapCommand_SecretFromEnv(t *testing.T) {
	t.Setenv(secretEnvVar, "topsecret")

	out, err := execute(t, "hello world", "wrap")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got, want := strings.TrimSpace(out), "vQDxHw1KEYXNFrAfkIr-4amDZA"; got != want {
		t.Errorf("output = %s, want %s", got, want)
	}
}
