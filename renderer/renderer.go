// Package renderer turns expenses into markdown documents.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/expense"
	md "github.com/nao1215/markdown"
)

// Expenses renders the collection as a markdown table, amounts formatted in currency.
func Expenses(c *expense.Collection, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expenses")

	rows := make([][]string, 0, c.Len())
	for e := range c.All() {
		rows = append(rows, []string{
			strconv.Itoa(e.ID),
			e.Date.String(),
			e.Description,
			e.Amount.Format(currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Description", "Amount"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("Total: %s", c.Total().Format(currency)))

	return doc.String()
}

// Expense renders a single expense on one line.
func Expense(e expense.Expense, currency string) string {
	return fmt.Sprintf("#%d %s %q %s", e.ID, e.Date, e.Description, e.Amount.Format(currency))
}
