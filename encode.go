package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// This file contains code to persist a collection in a way that is still human-readable.
//
// The file is a JSON array of expense objects, indented with two spaces:
//
//	[
//	  {
//	    "id": 1,
//	    "date": "2025-08-03",
//	    "description": "coffee",
//	    "amount": 3.5
//	  }
//	]

// EncodeCollection writes the whole collection to w.
func EncodeCollection(w io.Writer, c *Collection) error {
	expenses := c.expenses
	if expenses == nil {
		// an empty collection is still an array.
		expenses = []Expense{}
	}
	b, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode expenses: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("cannot write expenses: %w", err)
	}
	return nil
}

// DecodeCollection parses a collection from content.
//
// Empty content is an empty collection. Content that is not a JSON array of
// expenses returns an error wrapping ErrCorruptStore.
func DecodeCollection(content []byte) (*Collection, error) {
	content = bytes.TrimSpace(content)
	if len(content) == 0 {
		return NewCollection(), nil
	}
	if content[0] != '[' {
		return nil, fmt.Errorf("%w: content is not a list of expenses", ErrCorruptStore)
	}
	var expenses []Expense
	if err := json.Unmarshal(content, &expenses); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	return &Collection{expenses: expenses}, nil
}
