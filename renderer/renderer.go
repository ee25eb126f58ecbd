// Package renderer renders fusion views to markdown strings. The CLI pipes
// the markdown through a terminal renderer; the functions here stay pure.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fusion"
)

//go:embed *.md
var templates embed.FS

// Statement is the view of one account's transaction history.
type Statement struct {
	Bank    string
	Number  int
	Balance float64
	Entries []string
}

// BankChoice pairs a bank name with its 1-based catalog choice.
type BankChoice struct {
	Choice int
	Name   string
}

// SchemeChoice pairs a SIP scheme with its 1-based catalog choice.
type SchemeChoice struct {
	Choice  int
	Name    string
	Monthly float64
}

// Portfolio renders a user's portfolio view.
func Portfolio(p fusion.Portfolio) string {
	return renderTemplate("portfolio", "portfolio.md", p)
}

// Market renders the current simulated price list.
func Market(quotes []fusion.Quote) string {
	return renderTemplate("market", "market.md", quotes)
}

// Transactions renders one account's balance and transaction log.
func Transactions(s Statement) string {
	return renderTemplate("transactions", "transactions.md", s)
}

// Banks renders the bank catalog with its 1-based choices.
func Banks(banks []string) string {
	choices := make([]BankChoice, len(banks))
	for i, b := range banks {
		choices[i] = BankChoice{Choice: i + 1, Name: b}
	}
	return renderTemplate("banks", "banks.md", choices)
}

// Schemes renders the SIP scheme catalog with its 1-based choices.
func Schemes(schemes []fusion.SIPScheme) string {
	choices := make([]SchemeChoice, len(schemes))
	for i, s := range schemes {
		choices[i] = SchemeChoice{Choice: i + 1, Name: s.Name, Monthly: s.Monthly}
	}
	return renderTemplate("schemes", "schemes.md", choices)
}

// renderTemplate executes one embedded template file against data.
// Template errors come back as the rendered string: rendering is for human
// eyes and must not abort the operation that produced the data.
func renderTemplate(name, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
