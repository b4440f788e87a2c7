package hashing

import (
	"encoding/base64"
	"fmt"
	"io"
)

// stage is one step of the hashing pipeline.
type stage uint8

const (
	stageGeneratePassword stage = iota + 1
	stageGenerateSalt
	stageDecodeSalt
	stageDerive
)

func (s stage) String() string {
	switch s {
	case stageGeneratePassword:
		return "generate-password"
	case stageGenerateSalt:
		return "generate-salt"
	case stageDecodeSalt:
		return "decode-salt"
	case stageDerive:
		return "derive"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// state is the value handed from one stage to the next.  Stages receive it
// by value and return a new one; nothing is shared between calls.
type state struct {
	password    string
	encodedSalt string
	salt        []byte
	key         []byte
}

// saltEncoding rejects non-canonical input so that decoding a supplied salt
// and re-encoding it yields the original string.
var saltEncoding = base64.StdEncoding.Strict()

// plan classifies req and returns the stages to run; derive is always last.
// A generated password always gets a generated salt, so req.Salt is only
// consulted when a password was supplied.
func plan(req Request) []stage {
	switch {
	case req.Password == "":
		return []stage{stageGeneratePassword, stageGenerateSalt, stageDerive}
	case req.Salt == "":
		return []stage{stageGenerateSalt, stageDerive}
	default:
		return []stage{stageDecodeSalt, stageDerive}
	}
}

// run executes the planned stages in order and stops at the first failure.
func (h *PasswordHasher) run(req Request) (Result, error) {
	st := state{password: req.Password, encodedSalt: req.Salt}
	for _, s := range plan(req) {
		next, err := h.exec(s, st)
		if err != nil {
			h.cfg.logger.Debug("pipeline aborted", "stage", s.String(), "error", err)
			return Result{}, err
		}
		h.cfg.logger.Trace("stage completed", "stage", s.String())
		st = next
	}
	return Result{
		Password: st.password,
		Salt:     base64.StdEncoding.EncodeToString(st.salt),
		Hash:     base64.StdEncoding.EncodeToString(st.key),
	}, nil
}

// exec runs a single stage, converting a panic into [ErrStepPanicked].
func (h *PasswordHasher) exec(s stage, st state) (out state, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = state{}, fmt.Errorf("%w: %s: %v", ErrStepPanicked, s, r)
		}
	}()

	switch s {
	case stageGeneratePassword:
		b, err := h.randomBytes(GeneratedPasswordBytes)
		if err != nil {
			return state{}, err
		}
		st.password = base64.StdEncoding.EncodeToString(b)
	case stageGenerateSalt:
		b, err := h.randomBytes(h.opts.SaltLength)
		if err != nil {
			return state{}, err
		}
		st.salt = b
	case stageDecodeSalt:
		b, err := saltEncoding.DecodeString(st.encodedSalt)
		if err != nil {
			return state{}, fmt.Errorf("%w: %v", ErrInvalidSalt, err)
		}
		st.salt = b
	case stageDerive:
		key, err := h.cfg.deriver.DeriveKey(
			[]byte(st.password), st.salt,
			h.opts.Iterations, h.opts.KeyLength, h.opts.Digest,
		)
		if err != nil {
			return state{}, fmt.Errorf("%w: %w", ErrDerivation, err)
		}
		if len(key) != h.opts.KeyLength {
			return state{}, fmt.Errorf("%w: deriver returned %d bytes, want %d",
				ErrDerivation, len(key), h.opts.KeyLength)
		}
		st.key = key
	default:
		return state{}, fmt.Errorf("hashing: unknown pipeline %s", s)
	}
	return st, nil
}

// randomBytes returns n bytes from the configured random source.
func (h *PasswordHasher) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(h.cfg.random, b); err != nil {
		return nil, fmt.Errorf("%w: failed to read %d random bytes: %w", ErrRandomSource, n, err)
	}
	return b, nil
}
