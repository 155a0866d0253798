package models

// CipherText is a string alias representing an encrypted field value:
// base64(nonce ‖ AES-GCM ciphertext). The structure and meaning of the
// underlying plaintext are unknown to the storage layer.
type CipherText string
