package request

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
)

type createFlags struct {
	Date        string
	Amount      string
	Description string
	AccountType string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"c", "new"},
		Short:   "Submit a new expense request",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			runner := &createRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(actor)
		},
	}

	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Expense date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Requested amount")
	cmd.Flags().StringVarP(&flags.Description, "description", "m", "", "What the money is for")
	cmd.Flags().StringVarP(&flags.AccountType, "fund", "f", "", "Fund to draw from (Subsidy, Income, Lunch)")

	return cmd
}

func (r *createRunner) Run(actor *store.User) error {
	date := r.flags.Date
	if date == "" {
		var err error
		date, err = prompts.PromptRequestDate()
		if err != nil {
			return err
		}
	}

	amount := r.flags.Amount
	if amount == "" {
		var err error
		amount, err = prompts.PromptRequestAmount()
		if err != nil {
			return err
		}
	}

	accountType := r.flags.AccountType
	if accountType == "" {
		var err error
		accountType, err = prompts.PromptAccountType()
		if err != nil {
			return err
		}
	}

	description := r.flags.Description
	if description == "" {
		var err error
		description, err = prompts.PromptDescription()
		if err != nil {
			return err
		}
	}

	req, err := r.svc.Request.Create(actor, service.CreateRequestInput{
		Date:        date,
		Amount:      amount,
		Description: description,
		AccountType: accountType,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Expense request #%d submitted (ref %s), awaiting approval\n", req.ID, req.Reference)
	return nil
}
