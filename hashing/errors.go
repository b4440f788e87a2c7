package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	h.Hash(req, func(res hashing.Result, err error) {
//	    if errors.Is(err, hashing.ErrRandomSource) {
//	        // the system random source failed
//	    }
//	})
var (
	// ErrInvalidOption is returned by [NewPasswordHasher] and
	// [DecodePBKDF2Options] when a parameter value falls outside the allowed
	// range (e.g., a negative salt length) or has the wrong type.
	ErrInvalidOption = errors.New("hashing: invalid option value")

	// ErrUnsupportedDigest is returned by [NewPasswordHasher] when the digest
	// is not in the registry, or when a non-default digest is requested from
	// a [KeyDeriver] that cannot bind one.
	ErrUnsupportedDigest = errors.New("hashing: unsupported digest")

	// ErrRandomSource wraps a failure of the random source while generating
	// a password or a salt.  The original error remains reachable with
	// [errors.Is] and [errors.As].
	ErrRandomSource = errors.New("hashing: random source failure")

	// ErrInvalidSalt is returned when a supplied salt is not canonical
	// standard base64.
	ErrInvalidSalt = errors.New("hashing: salt is not valid base64")

	// ErrDerivation wraps a failure reported by the [KeyDeriver].
	ErrDerivation = errors.New("hashing: key derivation failed")

	// ErrStepPanicked is returned when a pipeline stage panics.  The panic
	// value is included in the message.
	ErrStepPanicked = errors.New("hashing: pipeline stage panicked")

	// ErrPoolClosed is delivered by [Pool.Submit] after [Pool.Close].
	ErrPoolClosed = errors.New("hashing: pool is closed")
)
