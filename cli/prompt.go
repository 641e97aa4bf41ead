// Package cli holds terminal helpers for the command-line tools: boxed
// banners for summaries and confirmation prompts.
package cli

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// PromptConfirm asks a yes/no question on the given terminal streams and
// reports whether the user answered yes. Answering no is not an error.
func PromptConfirm(label string, stdin io.ReadCloser, stdout io.WriteCloser) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     stdin,
		Stdout:    stdout,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
