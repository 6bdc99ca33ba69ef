package domain

// Algorithm represents the cryptographic algorithm used for encryption.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// so a modified envelope is rejected instead of decrypting to garbage.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Hardware acceleration on modern CPUs
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the size in bytes of every symmetric key handled by the application.
const KeySize = 32

// KeyName is the fixed name under which the exported key is persisted in the key store.
const KeyName = "pf_app_key"

// JWK "alg" values used when exporting the key.
const (
	jwkAlgAESGCM   = "A256GCM"
	jwkAlgChaCha20 = "C20P"
)

// JWKAlgorithm returns the JSON Web Key "alg" value for the algorithm.
func (a Algorithm) JWKAlgorithm() string {
	switch a {
	case AESGCM:
		return jwkAlgAESGCM
	case ChaCha20:
		return jwkAlgChaCha20
	default:
		return ""
	}
}

// ParseJWKAlgorithm maps a JSON Web Key "alg" value back to an Algorithm.
// An empty value is treated as AES-256-GCM, the default key algorithm.
func ParseJWKAlgorithm(alg string) (Algorithm, error) {
	switch alg {
	case jwkAlgAESGCM, "":
		return AESGCM, nil
	case jwkAlgChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
