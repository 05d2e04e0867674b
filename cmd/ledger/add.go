package ledger

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
	"github.com/somchaipk/schoolfin/internal/validation"
)

type addFlags struct {
	Date            string
	Amount          string
	Description     string
	Note            string
	Category        string
	TransactionType string
}

type addRunner struct {
	svc   *service.Service
	flags *addFlags
}

func NewAddCmd(svc *service.Service) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a", "new"},
		Short:   "Record an entry directly in a register",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			lt, err := resolveLedgerType(cmd)
			if err != nil {
				return err
			}

			runner := &addRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(actor, lt)
		},
	}

	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount")
	cmd.Flags().StringVarP(&flags.Description, "description", "m", "", "What the entry records")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "Optional note")
	cmd.Flags().StringVar(&flags.Category, "category", "", "Category within the register")
	cmd.Flags().StringVar(&flags.TransactionType, "txn", "", "Income or Expense")

	return cmd
}

func (r *addRunner) Run(actor *store.User, lt model.LedgerType) error {
	date := r.flags.Date
	if date == "" {
		var err error
		today := time.Now().Format(constants.DateFormat)
		date, err = prompts.PromptDate("Entry date:", today, "Press Enter for today",
			func(s string) error { return validation.ValidateDate(s) })
		if err != nil {
			return err
		}
	}

	txnType := r.flags.TransactionType
	if txnType == "" {
		var err error
		txnType, err = prompts.PromptTransactionType()
		if err != nil {
			return err
		}
	}

	amount := r.flags.Amount
	if amount == "" {
		var err error
		amount, err = prompts.PromptAmount("Amount:", "A positive number, e.g. 1500.00", nil)
		if err != nil {
			return err
		}
	}

	category := r.flags.Category
	if category == "" {
		var err error
		category, err = prompts.PromptCategory(lt)
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

	entry, err := r.svc.Ledger.Add(actor, service.AddEntryInput{
		LedgerType:      string(lt),
		Date:            date,
		Amount:          amount,
		Description:     description,
		Note:            r.flags.Note,
		Category:        category,
		TransactionType: txnType,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printf("Entry #%d recorded in the %s register\n", entry.ID, entry.LedgerType)
	return nil
}
