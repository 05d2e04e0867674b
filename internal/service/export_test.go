package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/somchaipk/schoolfin/internal/model"
)

func TestBuildReportRunningBalance(t *testing.T) {
	svc, _, users := newTestService(t)
	fixClock(svc, "2024-03-15")

	addEntry(t, svc, users.Finance, AddEntryInput{
		LedgerType:      "Income",
		Date:            "2024-03-05",
		Amount:          "1000",
		Description:     "donation",
		Category:        "Donations",
		TransactionType: "Income",
	})
	addEntry(t, svc, users.Finance, AddEntryInput{
		LedgerType:      "Income",
		Date:            "2024-03-10",
		Amount:          "300",
		Description:     "scholarship payout",
		Category:        "Scholarships",
		TransactionType: "Expense",
	})

	report, err := svc.Ledger.BuildReport(users.Finance, model.LedgerIncome)
	if err != nil {
		t.Fatalf("build report failed: %v", err)
	}

	if !strings.Contains(report.Title, model.LedgerIncome.Title()) {
		t.Errorf("report title %q does not name the register", report.Title)
	}
	if !strings.Contains(report.Title, svc.Config.School.Name) {
		t.Errorf("report title %q does not name the school", report.Title)
	}

	if len(report.Rows) != 2 {
		t.Fatalf("report has %d rows, want 2", len(report.Rows))
	}

	first := report.Rows[0]
	if first.Date != "05/03/2024" {
		t.Errorf("first row date = %q, want 05/03/2024", first.Date)
	}
	if first.Income != "1000.00" || first.Expense != "" {
		t.Errorf("first row income/expense = %q/%q, want 1000.00/empty", first.Income, first.Expense)
	}
	if first.Balance != "1000.00" {
		t.Errorf("running balance after first row = %q, want 1000.00", first.Balance)
	}

	second := report.Rows[1]
	if second.Income != "" || second.Expense != "300.00" {
		t.Errorf("second row income/expense = %q/%q, want empty/300.00", second.Income, second.Expense)
	}
	if second.Balance != "700.00" {
		t.Errorf("running balance after second row = %q, want 700.00", second.Balance)
	}

	if report.NetBalance.StringFixed(2) != "700.00" {
		t.Errorf("net balance = %s, want 700.00", report.NetBalance.StringFixed(2))
	}
	if report.MonthIncome.StringFixed(2) != "1000.00" || report.MonthExpense.StringFixed(2) != "300.00" {
		t.Errorf("month figures = %s/%s, want 1000.00/300.00",
			report.MonthIncome.StringFixed(2), report.MonthExpense.StringFixed(2))
	}
}

func TestWriteCSVLayout(t *testing.T) {
	svc, _, users := newTestService(t)
	fixClock(svc, "2024-03-15")

	addEntry(t, svc, users.Finance, AddEntryInput{
		LedgerType:      "Subsidy",
		Date:            "2024-03-05",
		Amount:          "100",
		Description:     "chalk",
		Category:        "Learning Materials",
		TransactionType: "Expense",
	})

	report, err := svc.Ledger.BuildReport(users.Finance, model.LedgerSubsidy)
	if err != nil {
		t.Fatalf("build report failed: %v", err)
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}

	reader := csv.NewReader(&buf)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("exported csv does not parse: %v", err)
	}

	// Title, header, 1 data row, summary heading, 3 figures. The blank
	// separator line is dropped by the reader.
	if len(records) != 7 {
		t.Fatalf("exported csv has %d records, want 7", len(records))
	}

	if !strings.Contains(records[0][0], "as of 15/03/2024") {
		t.Errorf("title row %q missing the generation date", records[0][0])
	}

	wantHeader := []string{"Date", "Category", "Actor", "Description", "Income", "Expense", "Balance", "Note"}
	for i, col := range wantHeader {
		if records[1][i] != col {
			t.Errorf("header column %d = %q, want %q", i, records[1][i], col)
		}
	}

	row := records[2]
	if row[0] != "05/03/2024" || row[1] != "Learning Materials" || row[5] != "100.00" || row[6] != "-100.00" {
		t.Errorf("data row = %v", row)
	}

	if records[3][0] != "Summary" {
		t.Errorf("summary heading = %q, want Summary", records[3][0])
	}
	if records[4][1] != "0.00" || records[5][1] != "100.00" {
		t.Errorf("month figures = %q/%q, want 0.00/100.00", records[4][1], records[5][1])
	}
	if records[6][0] != "Net balance" || records[6][1] != "-100.00" {
		t.Errorf("net balance row = %v, want [Net balance -100.00]", records[6])
	}
}

func TestBuildReportAuthorization(t *testing.T) {
	svc, _, users := newTestService(t)

	_, err := svc.Ledger.BuildReport(users.Teacher, model.LedgerSubsidy)
	var authErr *AuthorizationError
	if !errors.As(err, &authErr) {
		t.Errorf("teacher BuildReport returned %v, want AuthorizationError", err)
	}
}
