package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns a plaintext password into an opaque, salted hash and
// checks a plaintext candidate against a stored hash.
// It knows nothing about users, storage or transport.
type PasswordHasher interface {
	// Hash returns a new salted hash of plaintext. Hashing the same input
	// twice yields different outputs, both of which verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash
	// yields false rather than an error.
	Verify(plaintext, hash string) bool
}
