package ledger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/service"
	"github.com/somchaipk/schoolfin/internal/session"
	"github.com/somchaipk/schoolfin/internal/store"
)

type exportFlags struct {
	Output string
}

type exportRunner struct {
	svc   *service.Service
	flags *exportFlags
}

// NewExportCmd writes a register as a CSV report that opens directly in
// a spreadsheet program.
func NewExportCmd(svc *service.Service) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:     "export",
		Aliases: []string{"x", "report"},
		Short:   "Export a register as a spreadsheet report",
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := session.Resolve(cmd, svc)
			if err != nil {
				return err
			}

			lt, err := resolveLedgerType(cmd)
			if err != nil {
				return err
			}

			runner := &exportRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(actor, lt)
		},
	}

	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default <type>_ledger_<yyyymmdd>.csv)")

	return cmd
}

func (r *exportRunner) Run(actor *store.User, lt model.LedgerType) error {
	report, err := r.svc.Ledger.BuildReport(actor, lt)
	if err != nil {
		return err
	}

	path := r.flags.Output
	if path == "" {
		path = fmt.Sprintf("%s_ledger_%s.csv",
			strings.ToLower(string(lt)), time.Now().Format("20060102"))
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := report.WriteCSV(file); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	pterm.Success.Printf("Exported %d entries to %s\n", len(report.Rows), path)
	return nil
}
