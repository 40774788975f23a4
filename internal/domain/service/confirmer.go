package service

import "context"

// Confirmer asks the operator to approve a destructive action.
// The caller decides how: an interactive prompt, a request flag, or a fixed answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// StaticConfirmer answers every prompt with the same value.
type StaticConfirmer bool

// Confirm returns the fixed answer.
func (s StaticConfirmer) Confirm(context.Context, string) bool {
	return bool(s)
}
