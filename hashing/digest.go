package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Digest identifies the hash function used as the PBKDF2 pseudo-random
// function.  Names follow the OpenSSL spelling ("sha256", "sha3-256", ...)
// and are matched case-insensitively.
type Digest string

const (
	DigestMD5        Digest = "md5"
	DigestSHA1       Digest = "sha1"
	DigestSHA224     Digest = "sha224"
	DigestSHA256     Digest = "sha256"
	DigestSHA384     Digest = "sha384"
	DigestSHA512     Digest = "sha512"
	DigestSHA512_224 Digest = "sha512-224"
	DigestSHA512_256 Digest = "sha512-256"
	DigestSHA3_224   Digest = "sha3-224"
	DigestSHA3_256   Digest = "sha3-256"
	DigestSHA3_384   Digest = "sha3-384"
	DigestSHA3_512   Digest = "sha3-512"
	DigestBLAKE2b512 Digest = "blake2b512"
	DigestBLAKE2s256 Digest = "blake2s256"
)

var digests = map[Digest]func() hash.Hash{
	DigestMD5:        md5.New,
	DigestSHA1:       sha1.New,
	DigestSHA224:     sha256.New224,
	DigestSHA256:     sha256.New,
	DigestSHA384:     sha512.New384,
	DigestSHA512:     sha512.New,
	DigestSHA512_224: sha512.New512_224,
	DigestSHA512_256: sha512.New512_256,
	DigestSHA3_224:   sha3.New224,
	DigestSHA3_256:   sha3.New256,
	DigestSHA3_384:   sha3.New384,
	DigestSHA3_512:   sha3.New512,
	DigestBLAKE2b512: func() hash.Hash {
		// Unkeyed BLAKE2b never fails.
		h, _ := blake2b.New512(nil)
		return h
	},
	DigestBLAKE2s256: func() hash.Hash {
		h, _ := blake2s.New256(nil)
		return h
	},
}

// normalize returns the canonical lower-case form of d.
func (d Digest) normalize() Digest {
	return Digest(strings.ToLower(strings.TrimSpace(string(d))))
}

// String implements fmt.Stringer.
func (d Digest) String() string { return string(d) }

// LookupDigest returns the hash constructor registered for d.
// The second return value is false when d is not supported.
func LookupDigest(d Digest) (func() hash.Hash, bool) {
	h, ok := digests[d.normalize()]
	return h, ok
}

// SupportedDigests returns every registered digest name in sorted order.
func SupportedDigests() []Digest {
	out := make([]Digest, 0, len(digests))
	for d := range digests {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
