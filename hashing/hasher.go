package hashing

import (
	"crypto/rand"

	"github.com/hashicorp/go-hclog"
)

// Request carries the optional inputs of one hashing call.
//
// An empty field means "generate this for me".
type Request struct {
	// Password is used verbatim when non-empty.  The empty string cannot be
	// hashed as a password: it always yields a generated one.
	Password string

	// Salt is a standard (padded) base64 string.  It is decoded and used as
	// the raw salt only when Password is also set; a request without a
	// password always gets a freshly generated salt.
	Salt string
}

// Result is the fully resolved output of a successful hashing call.
// All three fields are base64 strings, except Password, which is returned
// exactly as supplied when the caller provided one.
type Result struct {
	Password string `yaml:"password"`
	Salt     string `yaml:"salt"`
	Hash     string `yaml:"hash"`
}

// Callback receives the outcome of [PasswordHasher.Hash].
// On failure err is non-nil and res is the zero Result.
type Callback func(res Result, err error)

// PasswordHasher derives PBKDF2 hashes, generating a password and/or salt
// when the caller does not supply them.
//
// Register a new credential:
//
//	h.Hash(hashing.Request{}, func(res hashing.Result, err error) { ... })
//
// Re-derive an existing one:
//
//	h.Hash(hashing.Request{Password: pw, Salt: storedSalt}, cb)
//
// # Thread safety
//
// PasswordHasher is immutable after construction and safe for concurrent
// use.  Each call owns its own pipeline state.
type PasswordHasher struct {
	opts PBKDF2Options
	cfg  hasherConfig
}

// NewPasswordHasher resolves opts against the defaults, validates them and
// returns a ready hasher.
//
// Returns [ErrInvalidOption] for out-of-range values and
// [ErrUnsupportedDigest] when the digest is unknown or cannot be bound by the
// configured [KeyDeriver].  Validation never happens lazily: a hasher that
// was built successfully only fails at call time on runtime conditions.
func NewPasswordHasher(opts PBKDF2Options, options ...Option) (*PasswordHasher, error) {
	cfg := hasherConfig{
		random:  rand.Reader,
		deriver: PBKDF2Deriver{},
		logger:  hclog.NewNullLogger(),
	}
	for _, o := range options {
		o(&cfg)
	}

	resolved := opts.withDefaults()
	if err := validatePBKDF2Options(resolved, cfg.deriver); err != nil {
		return nil, err
	}
	return &PasswordHasher{opts: resolved, cfg: cfg}, nil
}

// Options returns the resolved configuration.
func (h *PasswordHasher) Options() PBKDF2Options { return h.opts }

// Hash runs the pipeline for req on a new goroutine and returns immediately.
// cb is invoked exactly once, never on the caller's goroutine.  cb must be
// non-nil; Hash panics on the caller's goroutine otherwise.
//
// There is no cancellation: once started, the pipeline runs to completion
// or failure.  Callers wanting a deadline must impose it around cb.
func (h *PasswordHasher) Hash(req Request, cb Callback) {
	if cb == nil {
		panic("hashing: Hash called with nil callback")
	}
	go func() {
		cb(h.Make(req))
	}()
}

// Make is the synchronous form of [PasswordHasher.Hash].  It blocks until
// the pipeline finishes and returns either a fully populated Result or an
// error with the zero Result.
func (h *PasswordHasher) Make(req Request) (Result, error) {
	return h.run(req)
}
