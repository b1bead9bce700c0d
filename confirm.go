package ouch

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/term"
)

// QuestionPolicy decides how interactive questions are answered.
type QuestionPolicy int

const (
	// PolicyAsk prompts the user and reads the answer from the
	// configured prompt input.
	PolicyAsk QuestionPolicy = iota

	// PolicyAlwaysYes answers every question with yes.
	PolicyAlwaysYes

	// PolicyAlwaysNo answers every question with no.
	PolicyAlwaysNo
)

// userWantsToContinue asks whether the operation on path should
// proceed for the given reason. Declining is not an error; the caller
// treats it as a successful no-op.
func userWantsToContinue(c *Config, path string, reason string) (bool, error) {
	question := fmt.Sprintf("%s: do you want to continue decompressing %q?", reason, path)
	return askYesNo(c, question)
}

// askToCreateFile returns a writer for a new file at path, or nil if
// the user declined to overwrite an existing one. A nil writer with a
// nil error means the operation should end as a successful no-op.
func askToCreateFile(c *Config, path string) (io.WriteCloser, error) {
	_, err := c.Target().Lstat(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		return c.Target().CreateFile(path, defaultFileMode, false)
	}

	ok, err := askYesNo(c, fmt.Sprintf("file %q already exists, overwrite?", path))
	if err != nil || !ok {
		return nil, err
	}
	return c.Target().CreateFile(path, defaultFileMode, true)
}

// askYesNo resolves a yes/no question against the configured policy,
// prompting only for PolicyAsk. An unreadable or exhausted prompt
// input counts as a decline, so a non-interactive run never hangs.
func askYesNo(c *Config, question string) (bool, error) {
	switch c.Policy() {
	case PolicyAlwaysYes:
		return true, nil
	case PolicyAlwaysNo:
		return false, nil
	}

	if f, ok := c.PromptInput().(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		c.Logger().Debug("prompt input is not a terminal, declining", "question", question)
		return false, nil
	}

	scanner := bufio.NewScanner(c.PromptInput())
	for {
		fmt.Fprintf(c.PromptOutput(), "%s [Y/n] ", question)
		if !scanner.Scan() {
			return false, scanner.Err()
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// defaultFileMode is the mode for files the engine creates itself,
// such as the output of a pure decompression (respecting umask).
const defaultFileMode fs.FileMode = 0644
