// Package service declares the capabilities the use cases call out to:
// hashing, tokens, event publishing, QR rendering, metrics and confirmation.
package service

// PasswordHasher hashes and verifies cashier passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
