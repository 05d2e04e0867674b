package ledger

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/ui/views"
)

type summaryFlags struct {
	From string
	To   string
}

type summaryRunner struct {
	svc   *service.Service
	flags *summaryFlags
}

func NewSummaryCmd(svc *service.Service) *cobra.Command {
	flags := &summaryFlags{}

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"sum", "s"},
		Short:   "Show a register's monthly movements and net balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			lt, err := resolveLedgerType(cmd)
			if err != nil {
				return err
			}

			runner := &summaryRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(actor, lt)
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Balance range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Balance range end (YYYY-MM-DD)")

	return cmd
}

func (r *summaryRunner) Run(actor *store.User, lt model.LedgerType) error {
	summary, err := r.svc.Ledger.Summary(actor, lt, r.flags.From, r.flags.To)
	if err != nil {
		return err
	}

	return views.NewSummaryView().Render(views.SummaryItem{
		LedgerTitle:  lt.Title(),
		Month:        time.Now().Format("January 2006"),
		MonthIncome:  summary.MonthIncome.StringFixed(2),
		MonthExpense: summary.MonthExpense.StringFixed(2),
		RangeStart:   summary.BalanceStart,
		RangeEnd:     summary.BalanceEnd,
		Balance:      summary.Balance.StringFixed(2),
	})
}
