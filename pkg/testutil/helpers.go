// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/nomina/internal/roster"
)

// FindRow finds a report row by employee name.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(rows []roster.Row, name string) *roster.Row {
	for i := range rows {
		if rows[i].Name == name {
			return &rows[i]
		}
	}
	return nil
}
