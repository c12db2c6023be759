// Package secrets provides AES-256-GCM authenticated encryption of strings
// under a server-held secret.
//
// The encryption key is derived from the secret via HKDF-SHA256 with a
// package-specific info string, so reusing the same secret in another
// subsystem yields an unrelated key. Output is base64url-encoded with the
// random nonce prepended, making values safe to carry in cookies and URLs.
//
// Usage:
//
//	secret, err := secrets.GenerateSecret()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ciphertext, err := secrets.EncryptString(secret, "sensitive data")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plaintext, err := secrets.DecryptString(secret, ciphertext)
//	if err != nil {
//		// ErrDecryptionFailed: tampered, corrupted, or wrong secret
//	}
//
// GCM authentication guarantees that any modification of the ciphertext is
// detected; DecryptString never returns altered plaintext.
package secrets
