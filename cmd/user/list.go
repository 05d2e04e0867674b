package user

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
)

type listRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	users, err := r.svc.Account.List()
	if err != nil {
		return fmt.Errorf("failed to list accounts: %w", err)
	}

	if len(users) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Username", "Name", "Role"},
	}
	for _, u := range users {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", u.ID),
			u.Username,
			u.Name,
			u.Role.DisplayName(),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}
