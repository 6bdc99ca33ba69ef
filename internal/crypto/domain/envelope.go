package domain

// Envelope is the ciphertext unit produced by the codec.
//
// Both fields are standard base64 so the envelope can live in text-oriented
// stores. IV is a fresh random 96-bit nonce per encryption; Content is the
// ciphertext with the authentication tag appended. An envelope is meaningless
// without the EncryptionKey that produced it.
type Envelope struct {
	IV      string `json:"iv"`
	Content string `json:"content"`
}
