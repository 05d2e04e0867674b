// Package session resolves the acting account for a CLI invocation. The
// resolved identity is passed explicitly into every service call; nothing
// in the core reads an ambient current user.
package session

import (
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
)

// Resolve determines who is acting: the --user flag if given, otherwise an
// interactive prompt, followed by password verification.
func Resolve(cmd *cobra.Command, svc *service.Service) (*store.User, error) {
	username, _ := cmd.Flags().GetString("user")

	if username == "" {
		var err error
		username, err = prompts.PromptUsername()
		if err != nil {
			return nil, err
		}
	}

	password, err := prompts.PromptPassword(username)
	if err != nil {
		return nil, err
	}

	return svc.Account.Authenticate(username, password)
}
