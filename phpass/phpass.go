package phpass

import (
	"crypto/md5"
	"fmt"

	"github.com/hasbyte1/go-phpass/itoa64"
)

// digestSize is the width of the digest chain's state and of the padded
// value handed to the encoder.
const digestSize = md5.Size

// ──────────────────────────────────────────────────────────────────────────────
// Options
// ──────────────────────────────────────────────────────────────────────────────

// Option configures a [Checker].
type Option func(*Checker)

// WithMaxIterations sets a ceiling on the iteration count a [Checker]
// will accept. A hash whose decoded count exceeds n fails with
// [ErrIterationLimitExceeded] before any hashing work is done.
//
// n = 0 means unbounded, which is the default and matches the original
// scheme. Systems verifying hashes from storage they do not fully trust
// should set a ceiling: a single count character selects anything up to
// 2^63 digest iterations.
func WithMaxIterations(n uint64) Option {
	return func(c *Checker) { c.maxIterations = n }
}

// ──────────────────────────────────────────────────────────────────────────────
// Checker
// ──────────────────────────────────────────────────────────────────────────────

// Checker verifies passwords against portable-scheme hashes.
//
// The zero value is a valid Checker with no iteration ceiling. Checker is
// immutable after construction and safe for concurrent use.
type Checker struct {
	maxIterations uint64
}

// NewChecker constructs a Checker with the provided options.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultChecker = &Checker{}

// CheckPassword verifies that password matches hash with no iteration
// ceiling, reproducing the original scheme exactly.
//
// It returns (true, nil) on match and (false, nil) on mismatch. A non-nil
// error means the hash itself is structurally invalid, never that the
// password is wrong.
func CheckPassword(password, hash string) (bool, error) {
	return defaultChecker.CheckPassword(password, hash)
}

// CheckPassword verifies that password matches hash, honouring the
// Checker's iteration ceiling.
func (c *Checker) CheckPassword(password, hash string) (bool, error) {
	calculated, err := c.crypt(password, hash)
	if err != nil {
		return false, err
	}
	// Plain comparison, matching the original scheme. See the timing note
	// in the package documentation.
	return calculated == hash, nil
}

// crypt runs the full scheme: parse the setting, chain the digest, encode
// the result and reassemble setting + suffix. For any well-formed hash
// the returned string is 34 bytes, 12 setting bytes plus 22 encoded.
func (c *Checker) crypt(password, hash string) (string, error) {
	info, err := parseSetting(hash)
	if err != nil {
		return "", err
	}
	if c.maxIterations != 0 && info.Iterations > c.maxIterations {
		return "", fmt.Errorf("%w: hash requests 2^%d, ceiling is %d",
			ErrIterationLimitExceeded, info.CountLog2, c.maxIterations)
	}

	suffix := itoa64.EncodeToString(pad(digestChain(password, info.Salt, info.Iterations)))
	return hash[:min(settingLen, len(hash))] + suffix, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Digest chain
// ──────────────────────────────────────────────────────────────────────────────

// digestChain computes the scheme's iterated digest: one application of
// MD5 over salt || password, then count further applications over
// state || password. A count of zero performs no hashing at all and
// returns the salt bytes unchanged; parsing never yields zero (the
// minimum decodable count is 1), the branch exists for direct callers.
func digestChain(password, salt string, count uint64) []byte {
	if count == 0 {
		return []byte(salt)
	}

	sum := md5.Sum([]byte(salt + password))

	// One reusable buffer for state || password keeps the loop free of
	// per-iteration allocations; count can reach 2^63.
	buf := make([]byte, 0, digestSize+len(password))
	for ; count > 0; count-- {
		buf = append(buf[:0], sum[:]...)
		buf = append(buf, password...)
		sum = md5.Sum(buf)
	}
	return sum[:]
}

// pad zero-extends digest to digestSize bytes. Longer input is returned
// unchanged, never truncated. MD5 output is already exactly digestSize
// bytes, so in practice this only matters for the zero-count salt
// passthrough.
func pad(digest []byte) []byte {
	if len(digest) >= digestSize {
		return digest
	}
	padded := make([]byte, digestSize)
	copy(padded, digest)
	return padded
}
