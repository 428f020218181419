package prompt

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pkg/errors"
)

// ErrInterrupted is returned when the user hits Ctrl-C at a prompt.
var ErrInterrupted = errors.New("interrupted")

type UI interface {
	Select(message string, options []string) (int, error)
	Input(message string, defaultValue string) (string, error)
	Confirm(message string, defaultValue bool) (bool, error)
}

// User asks questions on the controlling terminal.
type User struct{}

func (u User) Select(message string, options []string) (int, error) {
	qs := &survey.Select{
		Message: message,
		Options: options,
	}
	var selected int
	err := survey.AskOne(qs, &selected)
	return selected, wrap(err)
}

func (u User) Input(message string, defaultValue string) (string, error) {
	qs := &survey.Input{
		Message: message,
		Default: defaultValue,
	}
	var s string
	err := survey.AskOne(qs, &s)
	return s, wrap(err)
}

func (u User) Confirm(message string, defaultValue bool) (bool, error) {
	qs := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	var b bool
	err := survey.AskOne(qs, &b)
	return b, wrap(err)
}

func wrap(err error) error {
	if err == terminal.InterruptErr {
		return ErrInterrupted
	}
	return err
}

// AlwaysYes answers every confirmation with yes, for --yes.
type AlwaysYes struct{}

func (AlwaysYes) Confirm(string, bool) (bool, error) { return true, nil }
