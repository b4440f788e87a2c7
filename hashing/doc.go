// Package hashing derives PBKDF2 password hashes and fills in whatever the
// caller leaves out: a missing password or salt is generated from a secure
// random source before derivation.
//
// # Architecture
//
// The central type is [PasswordHasher], built once from [PBKDF2Options] and
// then invoked repeatedly.  Each call is classified and run as a short,
// fail-fast pipeline:
//
//   - no password:         generate password (10 random bytes, base64),
//     then generate salt; a supplied salt is ignored
//   - password, no salt:   generate salt ([PBKDF2Options].SaltLength random bytes)
//   - password and salt:   decode the salt from base64
//   - always:              derive the key with the configured [KeyDeriver]
//
// The first failing stage aborts the call; later stages never run and the
// caller receives the error with an empty [Result].
//
// # Quick start
//
//	h, err := hashing.NewPasswordHasher(hashing.DefaultPBKDF2Options())
//	if err != nil { log.Fatal(err) }
//
//	// Register: password and salt are generated.
//	h.Hash(hashing.Request{}, func(res hashing.Result, err error) {
//	    if err != nil { ... }
//	    store(res.Salt, res.Hash) // hand res.Password to the user
//	})
//
//	// Re-derive: same inputs, same hash.
//	res, err := h.Make(hashing.Request{Password: pw, Salt: storedSalt})
//
// Comparing the re-derived hash with a stored one is the caller's job; use
// [crypto/subtle.ConstantTimeCompare].
//
// # Defaults
//
//   - salt length 64 bytes, 10000 iterations, key length 128 bytes, SHA-1.
//
// These match long-standing deployments.  New systems should raise the
// iteration count and pick "sha256" or "sha512".
//
// # Digests
//
// [SupportedDigests] lists the registry: the SHA-1/SHA-2 family, SHA-3,
// BLAKE2 and MD5.  A [KeyDeriver] whose SupportsDigest method returns false
// (see [LegacyPBKDF2Deriver]) only accepts [DefaultDigest]; asking for
// anything else fails at construction with [ErrUnsupportedDigest].
package hashing
