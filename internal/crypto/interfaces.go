package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects credential values at rest. It knows nothing about the
// network, the session or the storage layout; it only turns plaintext into
// an authenticated blob and back.
//
// Blob layout: nonce (12 bytes) ‖ AES-256-GCM ciphertext ‖ tag.
type Sealer interface {
	// Seal encrypts plaintext. aad is authenticated but not encrypted; the
	// same aad must be supplied to Open. Each call uses a fresh random
	// nonce, so sealing the same input twice yields different blobs.
	Seal(plaintext, aad []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It fails if the key, the aad
	// or the blob do not match.
	Open(blob, aad []byte) ([]byte, error)
}
