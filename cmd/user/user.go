package user

import (
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
)

func NewUserCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"u"},
		Short:   "Manage accounts",
		Long:    `Create and list the accounts that can act in the approval workflow.`,
	}

	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewListCmd(svc))

	return cmd
}
