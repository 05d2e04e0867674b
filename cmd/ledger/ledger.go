package ledger

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/ui/prompts"
)

func NewLedgerCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledger",
		Aliases: []string{"led", "l"},
		Short:   "Work with the school fund registers",
		Long: `Manage the three fund registers (Subsidy, Income, Lunch): record
entries, edit them with a full audit trail, review summaries and
export a register as a spreadsheet-importable report.`,
	}

	cmd.PersistentFlags().StringP("type", "t", "", "Register to work with (subsidy, income, lunch)")

	cmd.AddCommand(NewAddCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewEditCmd(svc))
	cmd.AddCommand(NewHistoryCmd(svc))
	cmd.AddCommand(NewSummaryCmd(svc))
	cmd.AddCommand(NewExportCmd(svc))

	return cmd
}

// resolveLedgerType reads the --type flag, prompting when absent. Flag
// values are case-insensitive.
func resolveLedgerType(cmd *cobra.Command) (model.LedgerType, error) {
	flagValue, _ := cmd.Flags().GetString("type")

	if flagValue == "" {
		var options []string
		for _, lt := range model.LedgerTypes() {
			options = append(options, string(lt))
		}
		selected, err := prompts.PromptSelect("Register:", options, string(model.LedgerSubsidy))
		if err != nil {
			return "", err
		}
		flagValue = selected
	}

	normalized := strings.ToLower(flagValue)
	normalized = strings.ToUpper(normalized[:1]) + normalized[1:]
	return model.ParseLedgerType(normalized)
}
