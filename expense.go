package expense

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/etnz/expense/date"
)

// Expense is one recorded spending event.
type Expense struct {
	ID          int
	Date        date.Date // day the expense was recorded, never edited.
	Description string
	Amount      Amount
}

// Validate checks the fields that a user can set.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// MarshalJSON writes the expense with a stable field order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("description", e.Description)
	w.Append("amount", e.Amount)
	return w.MarshalJSON()
}

// UnmarshalJSON reads an expense.
//
// Older files record the day under the key "data", it is read when "date" is absent.
func (e *Expense) UnmarshalJSON(b []byte) error {
	// jexpense is the object read from the file using json parser.
	type jexpense struct {
		ID          int        `json:"id"`
		Date        *date.Date `json:"date"`
		Data        *date.Date `json:"data"`
		Description string     `json:"description"`
		Amount      Amount     `json:"amount"`
	}
	var j jexpense
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("invalid expense %s: %w", b, err)
	}
	*e = Expense{
		ID:          j.ID,
		Description: j.Description,
		Amount:      j.Amount,
	}
	switch {
	case j.Date != nil:
		e.Date = *j.Date
	case j.Data != nil:
		e.Date = *j.Data
	}
	return nil
}
