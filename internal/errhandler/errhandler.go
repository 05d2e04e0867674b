package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"

	"github.com/somchaipk/schoolfin/internal/service"
)

// HandleError is the terminal error path for the CLI. A cancelled prompt
// is a clean exit; an approved-but-not-posted request is a warning, not a
// failure.
func HandleError(err error) {
	if errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation cancelled")
		os.Exit(0)
	}

	var postingErr *service.PostingError
	if errors.As(err, &postingErr) {
		pterm.Warning.Println(capitalize(postingErr.Error()))
		pterm.Warning.Println("The approval is saved; the register entry must be reconciled manually")
		os.Exit(0)
	}

	pterm.Error.Println(capitalize(err.Error()))
	os.Exit(1)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
