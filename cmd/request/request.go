package request

import (
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
)

func NewRequestCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "request",
		Aliases: []string{"req", "r"},
		Short:   "Submit and track expense requests",
		Long: `Submit expense requests against one of the school funds and track
their approval status. A request becomes final once both the finance
officer and the school director have signed it.`,
	}

	cmd.AddCommand(NewCreateCmd(svc))
	cmd.AddCommand(NewListCmd(svc))

	return cmd
}
