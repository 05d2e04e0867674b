package service

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/somchaipk/schoolfin/internal/constants"
	"github.com/somchaipk/schoolfin/internal/model"
	"github.com/somchaipk/schoolfin/internal/store"
	"github.com/somchaipk/schoolfin/internal/validation"
)

// ReportRow is one line of the exported register. Income and Expense are
// mutually exclusive; the other is blank. Balance is the running net
// across the whole register, independent of any date filter.
type ReportRow struct {
	Date        string
	Category    string
	Actor       string
	Description string
	Income      string
	Expense     string
	Balance     string
	Note        string
}

type Report struct {
	Title       string
	GeneratedOn string
	Rows        []ReportRow

	MonthIncome  decimal.Decimal
	MonthExpense decimal.Decimal
	NetBalance   decimal.Decimal
}

// BuildReport assembles the export for one register: a title line, the
// entry rows with running balance, and the trailing summary block.
func (ls *LedgerService) BuildReport(actor *store.User, lt model.LedgerType) (*Report, error) {
	if err := Authorize(OpExportLedger, actor.Role); err != nil {
		return nil, err
	}

	entries, err := ls.repo.GetEntriesByType(lt)
	if err != nil {
		return nil, err
	}

	today := ls.now()
	monthStart, monthEnd := monthRange(today)

	report := &Report{
		Title:        fmt.Sprintf("%s - %s", ls.cfg.School.Name, lt.Title()),
		GeneratedOn:  today.Format(constants.ReportDateFormat),
		MonthIncome:  decimal.Zero,
		MonthExpense: decimal.Zero,
	}

	balance := decimal.Zero

	for _, e := range entries {
		row := ReportRow{
			Category:    e.Category,
			Actor:       e.ActorName,
			Description: e.Description,
			Note:        e.Note,
		}

		if date, err := validation.ParseDate(e.Date); err == nil {
			row.Date = date.Format(constants.ReportDateFormat)
		} else {
			row.Date = e.Date
		}

		inMonth := e.Date >= monthStart && e.Date <= monthEnd

		if e.TransactionType == model.TxnIncome {
			row.Income = e.Amount.StringFixed(2)
			balance = balance.Add(e.Amount)
			if inMonth {
				report.MonthIncome = report.MonthIncome.Add(e.Amount)
			}
		} else {
			row.Expense = e.Amount.StringFixed(2)
			balance = balance.Sub(e.Amount)
			if inMonth {
				report.MonthExpense = report.MonthExpense.Add(e.Amount)
			}
		}

		row.Balance = balance.StringFixed(2)
		report.Rows = append(report.Rows, row)
	}

	report.NetBalance = balance
	return report, nil
}

// WriteCSV renders the report in spreadsheet-importable form.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{fmt.Sprintf("%s - as of %s", r.Title, r.GeneratedOn)},
		{"Date", "Category", "Actor", "Description", "Income", "Expense", "Balance", "Note"},
	}

	for _, row := range r.Rows {
		records = append(records, []string{
			row.Date, row.Category, row.Actor, row.Description,
			row.Income, row.Expense, row.Balance, row.Note,
		})
	}

	records = append(records,
		[]string{},
		[]string{"Summary"},
		[]string{"This month's income", r.MonthIncome.StringFixed(2)},
		[]string{"This month's expense", r.MonthExpense.StringFixed(2)},
		[]string{"Net balance", r.NetBalance.StringFixed(2)},
	)

	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
