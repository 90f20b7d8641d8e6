// Package seed writes extracted player records to Postgres.
package seed

import "fmt"

// Result tracks counts and errors from an import run.
type Result struct {
	PlayersUpserted int
	Errors          []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.PlayersUpserted += other.PlayersUpserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the import run.
func (r *Result) Summary() string {
	return fmt.Sprintf("players=%d errors=%d", r.PlayersUpserted, len(r.Errors))
}
