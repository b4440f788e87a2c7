package hashing

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// ──────────────────────────────────────────────────────────────────────────────
// PBKDF2Options
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultSaltLength is the default random salt length in bytes.
	DefaultSaltLength = 64

	// DefaultIterations is the default PBKDF2 iteration count.
	DefaultIterations = 10000

	// DefaultKeyLength is the default derived key length in bytes.
	DefaultKeyLength = 128

	// DefaultDigest is the digest used when none is configured, and the only
	// digest accepted by a [KeyDeriver] that cannot bind one.
	DefaultDigest = DigestSHA1

	// GeneratedPasswordBytes is the number of random bytes drawn for a
	// generated password before base64 encoding (16 characters).
	GeneratedPasswordBytes = 10
)

// PBKDF2Options configures a [PasswordHasher].
//
// Zero-valued fields are replaced by their defaults when the hasher is built,
// so PBKDF2Options{Iterations: 1} means "defaults, but one iteration".
type PBKDF2Options struct {
	// SaltLength is the length of generated salts in bytes.
	// Default: [DefaultSaltLength] (64).
	SaltLength int `mapstructure:"saltLength" yaml:"salt_length,omitempty"`

	// Iterations is the PBKDF2 iteration count.
	// Default: [DefaultIterations] (10000).
	Iterations int `mapstructure:"iterations" yaml:"iterations,omitempty"`

	// KeyLength is the length of the derived key in bytes.
	// Default: [DefaultKeyLength] (128).
	KeyLength int `mapstructure:"keyLength" yaml:"key_length,omitempty"`

	// Digest is the PBKDF2 hash function.
	// Default: [DefaultDigest] ("sha1").
	Digest Digest `mapstructure:"digest" yaml:"digest,omitempty"`
}

// DefaultPBKDF2Options returns PBKDF2Options with every default applied.
func DefaultPBKDF2Options() PBKDF2Options {
	return PBKDF2Options{
		SaltLength: DefaultSaltLength,
		Iterations: DefaultIterations,
		KeyLength:  DefaultKeyLength,
		Digest:     DefaultDigest,
	}
}

// withDefaults fills zero-valued fields and normalises the digest name.
func (o PBKDF2Options) withDefaults() PBKDF2Options {
	if o.SaltLength == 0 {
		o.SaltLength = DefaultSaltLength
	}
	if o.Iterations == 0 {
		o.Iterations = DefaultIterations
	}
	if o.KeyLength == 0 {
		o.KeyLength = DefaultKeyLength
	}
	o.Digest = o.Digest.normalize()
	if o.Digest == "" {
		o.Digest = DefaultDigest
	}
	return o
}

// validatePBKDF2Options checks resolved options against the capabilities of
// deriver.  Every violation is reported, not just the first.
func validatePBKDF2Options(o PBKDF2Options, deriver KeyDeriver) error {
	var result *multierror.Error
	if o.SaltLength < 1 {
		result = multierror.Append(result,
			fmt.Errorf("%w: salt length must be ≥ 1, got %d", ErrInvalidOption, o.SaltLength))
	}
	if o.Iterations < 1 {
		result = multierror.Append(result,
			fmt.Errorf("%w: iterations must be ≥ 1, got %d", ErrInvalidOption, o.Iterations))
	}
	if o.KeyLength < 1 {
		result = multierror.Append(result,
			fmt.Errorf("%w: key length must be ≥ 1, got %d", ErrInvalidOption, o.KeyLength))
	}
	if _, ok := LookupDigest(o.Digest); !ok {
		result = multierror.Append(result,
			fmt.Errorf("%w: %q is not a known digest", ErrUnsupportedDigest, o.Digest))
	} else if !deriver.SupportsDigest() && o.Digest != DefaultDigest {
		result = multierror.Append(result,
			fmt.Errorf("%w: key deriver cannot bind digest %q, only %q is available",
				ErrUnsupportedDigest, o.Digest, DefaultDigest))
	}
	return result.ErrorOrNil()
}

// DecodePBKDF2Options decodes a loosely typed configuration map, such as one
// parsed from JSON or HCL, into PBKDF2Options.
//
// Recognised keys: "saltLength", "iterations", "keyLength", "digest".
// Numeric strings are accepted.  Unknown keys and values of the wrong type
// yield [ErrInvalidOption].  A nil map decodes to the zero PBKDF2Options,
// which resolves to the defaults.
func DecodePBKDF2Options(raw map[string]any) (PBKDF2Options, error) {
	var opts PBKDF2Options
	if raw == nil {
		return opts, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return PBKDF2Options{}, fmt.Errorf("hashing: failed to build options decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return PBKDF2Options{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	return opts, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Functional options
// ──────────────────────────────────────────────────────────────────────────────

// Option is a functional option for [NewPasswordHasher].
type Option func(*hasherConfig)

// hasherConfig holds the collaborators of a PasswordHasher.
type hasherConfig struct {
	random  io.Reader
	deriver KeyDeriver
	logger  hclog.Logger
}

// WithRandom replaces crypto/rand.Reader as the source of generated
// passwords and salts.  The reader must be safe for concurrent use if the
// hasher is.
func WithRandom(r io.Reader) Option {
	return func(c *hasherConfig) {
		if r != nil {
			c.random = r
		}
	}
}

// WithKeyDeriver replaces the default [PBKDF2Deriver].
func WithKeyDeriver(d KeyDeriver) Option {
	return func(c *hasherConfig) {
		if d != nil {
			c.deriver = d
		}
	}
}

// WithLogger sets the logger used for pipeline tracing.  Passwords, salts
// and derived keys are never logged.
func WithLogger(l hclog.Logger) Option {
	return func(c *hasherConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
