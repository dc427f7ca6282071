// Package domain holds what every layer shares: the sentinel errors and the
// per-field ValidationError. The todo record and the filter engine live in
// domain/todo.
package domain
