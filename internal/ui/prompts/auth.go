package prompts

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/somchaipk/schoolfin/internal/ui"
)

// PromptUsername asks who is acting when the --user flag was not given.
func PromptUsername() (string, error) {
	var username string

	err := survey.AskOne(&survey.Input{
		Message: "Username:",
	}, &username, ui.IconOption(), survey.WithValidator(func(val any) error {
		s, _ := val.(string)
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("username is required")
		}
		return nil
	}))

	return strings.TrimSpace(username), err
}

// PromptPassword reads a password without echoing it.
func PromptPassword(username string) (string, error) {
	var password string

	err := survey.AskOne(&survey.Password{
		Message: fmt.Sprintf("Password for %s:", username),
	}, &password, ui.IconOption())

	return password, err
}
