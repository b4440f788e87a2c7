package hashing

import (
	"crypto/sha1"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// KeyDeriver is the key-derivation primitive consumed by [PasswordHasher].
//
// Implementations must be deterministic, return raw key bytes of exactly
// keyLength bytes, and be safe for concurrent use.
type KeyDeriver interface {
	// DeriveKey stretches password with salt and returns keyLength bytes.
	DeriveKey(password, salt []byte, iterations, keyLength int, digest Digest) ([]byte, error)

	// SupportsDigest reports whether the deriver honours the digest argument.
	// A deriver that returns false always uses [DefaultDigest].
	SupportsDigest() bool
}

// PBKDF2Deriver derives keys with PBKDF2-HMAC (RFC 8018) using any digest
// from the registry.  It is the default [KeyDeriver].
type PBKDF2Deriver struct{}

// DeriveKey implements [KeyDeriver].
func (PBKDF2Deriver) DeriveKey(password, salt []byte, iterations, keyLength int, digest Digest) ([]byte, error) {
	h, ok := LookupDigest(digest)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDigest, digest)
	}
	if err := checkDeriveParams(iterations, keyLength); err != nil {
		return nil, err
	}
	return pbkdf2.Key(password, salt, iterations, keyLength, h), nil
}

// SupportsDigest always returns true.
func (PBKDF2Deriver) SupportsDigest() bool { return true }

// LegacyPBKDF2Deriver derives keys with PBKDF2-HMAC-SHA1 and cannot be
// told to use another digest.  It models runtimes whose PBKDF2 primitive
// takes no digest parameter; [NewPasswordHasher] refuses any digest other
// than [DefaultDigest] when it is configured.
type LegacyPBKDF2Deriver struct{}

// DeriveKey implements [KeyDeriver].  The digest argument is ignored.
func (LegacyPBKDF2Deriver) DeriveKey(password, salt []byte, iterations, keyLength int, _ Digest) ([]byte, error) {
	if err := checkDeriveParams(iterations, keyLength); err != nil {
		return nil, err
	}
	return pbkdf2.Key(password, salt, iterations, keyLength, sha1.New), nil
}

// SupportsDigest always returns false.
func (LegacyPBKDF2Deriver) SupportsDigest() bool { return false }

func checkDeriveParams(iterations, keyLength int) error {
	if iterations < 1 {
		return fmt.Errorf("pbkdf2: iterations must be ≥ 1, got %d", iterations)
	}
	if keyLength < 1 {
		return fmt.Errorf("pbkdf2: key length must be ≥ 1, got %d", keyLength)
	}
	return nil
}
