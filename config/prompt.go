package config

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// promptUserName asks for the name under which work records are filed.
func promptUserName() (string, error) {
	var userName string

	err := huh.NewInput().
		Title("What's your name?").
		Description("Work sessions will be recorded under this name.").
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errNameRequired
			}

			return nil
		}).
		Value(&userName).
		Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(userName), nil
}
