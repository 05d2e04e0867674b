package ledger

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
)

type editFlags struct {
	Amount      string
	Description string
	Note        string
}

type editRunner struct {
	svc   *service.Service
	flags *editFlags
}

// NewEditCmd changes an entry's amount, description or note. Every
// actual change is recorded in the entry's edit history.
func NewEditCmd(svc *service.Service) *cobra.Command {
	flags := &editFlags{}

	cmd := &cobra.Command{
		Use:     "edit <entry-id>",
		Aliases: []string{"e"},
		Short:   "Correct a register entry, keeping an audit trail",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			entryID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id: %s", args[0])
			}

			runner := &editRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd, actor, entryID)
		},
	}

	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "New amount")
	cmd.Flags().StringVarP(&flags.Description, "description", "m", "", "New description")
	cmd.Flags().StringVarP(&flags.Note, "note", "n", "", "New note")

	return cmd
}

func (r *editRunner) Run(cmd *cobra.Command, actor *store.User, entryID int64) error {
	input := service.EditEntryInput{}

	if cmd.Flags().Changed("amount") {
		input.Amount = &r.flags.Amount
	}
	if cmd.Flags().Changed("description") {
		input.Description = &r.flags.Description
	}
	if cmd.Flags().Changed("note") {
		input.Note = &r.flags.Note
	}

	// Without flags, walk through the fields interactively.
	if input.Amount == nil && input.Description == nil && input.Note == nil {
		if err := r.promptFields(entryID, &input); err != nil {
			return err
		}
	}

	if input.Amount == nil && input.Description == nil && input.Note == nil {
		pterm.Info.Println("Nothing to change")
		return nil
	}

	entry, err := r.svc.Ledger.Edit(actor, entryID, input)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Entry #%d updated\n", entry.ID)
	return nil
}

func (r *editRunner) promptFields(entryID int64, input *service.EditEntryInput) error {
	entry, err := r.svc.Ledger.Get(entryID)
	if err != nil {
		return err
	}

	changeAmount, err := prompts.PromptConfirm(
		fmt.Sprintf("Change the amount (currently %s)?", entry.Amount.StringFixed(2)), false)
	if err != nil {
		return err
	}
	if changeAmount {
		amount, err := prompts.PromptAmount("New amount:", "", nil)
		if err != nil {
			return err
		}
		input.Amount = &amount
	}

	changeDescription, err := prompts.PromptConfirm("Change the description?", false)
	if err != nil {
		return err
	}
	if changeDescription {
		description, err := prompts.PromptInput("New description:", entry.Description, nil)
		if err != nil {
			return err
		}
		input.Description = &description
	}

	changeNote, err := prompts.PromptConfirm("Change the note?", false)
	if err != nil {
		return err
	}
	if changeNote {
		note, err := prompts.PromptInput("New note:", entry.Note, nil)
		if err != nil {
			return err
		}
		input.Note = &note
	}

	return nil
}
