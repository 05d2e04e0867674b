package user

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
)

type createFlags struct {
	Username string
	Name     string
	Role     string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"c"},
		Short:   "Create an account",
		Long: `Create an account with one of the fixed roles.

The role decides what the account can do: teachers submit expense
requests, the director and the finance officer sign them off, and
finance can do both. A role cannot be changed afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVar(&flags.Username, "username", "", "Login name for the new account")
	cmd.Flags().StringVar(&flags.Name, "name", "", "Display name")
	cmd.Flags().StringVar(&flags.Role, "role", "", "Account role (teacher, director, finance)")

	return cmd
}

func (r *createRunner) Run() error {
	username := r.flags.Username
	if username == "" {
		var err error
		username, err = prompts.PromptText("Username:", true)
		if err != nil {
			return err
		}
	}

	name := r.flags.Name
	if name == "" {
		var err error
		name, err = prompts.PromptText("Display name:", false)
		if err != nil {
			return err
		}
	}

	roleStr := r.flags.Role
	if roleStr == "" {
		var err error
		roleStr, err = prompts.PromptSelect("Role:", []string{
			string(model.RoleTeacher),
			string(model.RoleDirector),
			string(model.RoleFinance),
		}, string(model.RoleTeacher))
		if err != nil {
			return err
		}
	}

	role, err := model.ParseRole(roleStr)
	if err != nil {
		return err
	}

	password, err := prompts.PromptPassword(username)
	if err != nil {
		return err
	}

	created, err := r.svc.Account.Register(username, name, password, role)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	pterm.Success.Printf("Created %s account '%s' (ID: %d)\n", created.Role.DisplayName(), created.Username, created.ID)
	return nil
}
