package expense

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/expense/date"
)

// Collection represents the list of expenses.
//
// In a Collection expenses are always in insertion order.
type Collection struct {
	expenses []Expense
}

// NewCollection creates a collection holding the given expenses, in order.
func NewCollection(expenses ...Expense) *Collection {
	return &Collection{expenses: slices.Clone(expenses)}
}

// Len returns the number of expenses.
func (c *Collection) Len() int { return len(c.expenses) }

// IsEmpty reports whether the collection has no expense.
func (c *Collection) IsEmpty() bool { return len(c.expenses) == 0 }

// All returns an iterator that yields each expense in its insertion order.
func (c *Collection) All() iter.Seq[Expense] {
	return func(yield func(Expense) bool) {
		for _, e := range c.expenses {
			if !yield(e) {
				return
			}
		}
	}
}

// Expenses returns a copy of the expenses.
func (c *Collection) Expenses() []Expense { return slices.Clone(c.expenses) }

// Clone returns a deep copy of this collection.
func (c *Collection) Clone() *Collection { return NewCollection(c.expenses...) }

// NextID returns the id for a new expense: one more than the highest id, or 1 if empty.
//
// It is derived on each call, so the id of a removed highest expense is handed out again.
func (c *Collection) NextID() int {
	next := 1
	for _, e := range c.expenses {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

// Find returns the expense with this id.
func (c *Collection) Find(id int) (Expense, bool) {
	i := c.index(id)
	if i < 0 {
		return Expense{}, false
	}
	return c.expenses[i], true
}

func (c *Collection) index(id int) int {
	return slices.IndexFunc(c.expenses, func(e Expense) bool { return e.ID == id })
}

// Add validates and appends a new expense recorded on the given day. It returns the stored expense.
func (c *Collection) Add(description string, amount Amount, on date.Date) (Expense, error) {
	e := Expense{
		ID:          c.NextID(),
		Date:        on,
		Description: description,
		Amount:      amount,
	}
	if err := e.Validate(); err != nil {
		return Expense{}, fmt.Errorf("cannot add expense: %w", err)
	}
	c.expenses = append(c.expenses, e)
	return e, nil
}

// Remove deletes every expense with this id and reports whether there was one.
func (c *Collection) Remove(id int) bool {
	n := len(c.expenses)
	c.expenses = slices.DeleteFunc(c.expenses, func(e Expense) bool { return e.ID == id })
	return len(c.expenses) != n
}

// Patch lists the fields to change in an expense. Nil fields are left unchanged.
type Patch struct {
	Description *string
	Amount      *Amount
}

// Validate checks the fields set in the patch.
func (p Patch) Validate() error {
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return ErrEmptyDescription
	}
	if p.Amount != nil && p.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// Update applies the patch to the expense with this id.
//
// The patch is applied entirely or not at all: a negative amount or an empty
// description leaves the expense untouched. Fields not in the patch are kept as
// they are, valid or not.
func (c *Collection) Update(id int, p Patch) (Expense, error) {
	i := c.index(id)
	if i < 0 {
		return Expense{}, fmt.Errorf("cannot update expense %d: %w", id, ErrNotFound)
	}
	if err := p.Validate(); err != nil {
		return c.expenses[i], fmt.Errorf("cannot update expense %d: %w", id, err)
	}
	e := &c.expenses[i]
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	return *e, nil
}

// Total returns the exact sum of all amounts.
func (c *Collection) Total() Amount {
	var total Amount
	for _, e := range c.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// String returns a short description of the collection, for logs.
func (c *Collection) String() string {
	ids := make([]string, 0, len(c.expenses))
	for _, e := range c.expenses {
		ids = append(ids, fmt.Sprint(e.ID))
	}
	return fmt.Sprintf("%d expenses [%s]", len(c.expenses), strings.Join(ids, ","))
}
