package ouch

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name   string
		policy QuestionPolicy
		input  string
		want   bool
	}{
		{"always yes", PolicyAlwaysYes, "", true},
		{"always no", PolicyAlwaysNo, "", false},
		{"ask answered yes", PolicyAsk, "y\n", true},
		{"ask answered yes long form", PolicyAsk, "Yes\n", true},
		{"ask answered with default", PolicyAsk, "\n", true},
		{"ask answered no", PolicyAsk, "n\n", false},
		{"ask retries on garbage", PolicyAsk, "maybe\nno\n", false},
		{"ask with exhausted input", PolicyAsk, "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var prompt bytes.Buffer
			c := NewConfig(
				WithPolicy(test.policy),
				WithPromptInput(strings.NewReader(test.input)),
				WithPromptOutput(&prompt),
			)

			got, err := askYesNo(c, "proceed?")
			if err != nil {
				t.Fatalf("askYesNo() error = %v", err)
			}
			if got != test.want {
				t.Errorf("askYesNo() = %v, want %v", got, test.want)
			}
			if test.policy != PolicyAsk && prompt.Len() != 0 {
				t.Errorf("askYesNo() prompted despite policy %v", test.policy)
			}
		})
	}
}

func TestAskToCreateFile(t *testing.T) {
	content := []byte("fresh content")

	tests := []struct {
		name        string
		policy      QuestionPolicy
		preExisting bool
		wantWriter  bool
	}{
		{"new file needs no question", PolicyAlwaysNo, false, true},
		{"existing file overwritten on yes", PolicyAlwaysYes, true, true},
		{"existing file kept on no", PolicyAlwaysNo, true, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			path := filepath.Join(tmpDir, "out")
			if test.preExisting {
				if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
					t.Fatalf("cannot pre-create file: %v", err)
				}
			}

			c := NewConfig(WithPolicy(test.policy), WithPromptOutput(io.Discard))
			w, err := askToCreateFile(c, path)
			if err != nil {
				t.Fatalf("askToCreateFile() error = %v", err)
			}
			if (w != nil) != test.wantWriter {
				t.Fatalf("askToCreateFile() writer = %v, want %v", w != nil, test.wantWriter)
			}
			if w == nil {
				return
			}

			if _, err := w.Write(content); err != nil {
				t.Fatalf("cannot write: %v", err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("cannot close: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("cannot read back: %v", err)
			}
			if !bytes.Equal(data, content) {
				t.Errorf("file content = %q, want %q", data, content)
			}
		})
	}
}
