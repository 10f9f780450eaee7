package phpass

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-phpass/itoa64"
)

// settingLen is the length of a hash's setting: the 3-byte variant
// prefix, one count character, and 8 salt bytes.
const settingLen = 12

// Variant identifies which flavour of the portable scheme produced a
// hash. The variants differ only in their prefix; the algorithm behind
// them is identical.
type Variant string

const (
	// VariantPortable is the "$P$" prefix written by phpass itself and by
	// WordPress and Drupal 6 password storage.
	VariantPortable Variant = "$P$"

	// VariantPHPBB is the "$H$" prefix written by phpBB3.
	VariantPHPBB Variant = "$H$"
)

// DetectVariant inspects a hash string and returns the portable-scheme
// [Variant] that produced it. It is a prefix check only and does not
// validate the rest of the hash.
//
// The second return value is false when the prefix is not recognised.
func DetectVariant(hash string) (Variant, bool) {
	switch {
	case strings.HasPrefix(hash, string(VariantPortable)):
		return VariantPortable, true
	case strings.HasPrefix(hash, string(VariantPHPBB)):
		return VariantPHPBB, true
	default:
		return "", false
	}
}

// HashInfo carries metadata parsed from a hash's setting.
type HashInfo struct {
	// Variant is the recognised hash prefix.
	Variant Variant

	// CountLog2 is the alphabet position of the hash's count character.
	// The scheme stores the iteration count as this power-of-two exponent.
	CountLog2 int

	// Iterations is the decoded iteration count, 1 << CountLog2.
	// It is a uint64 because the maximum encodable exponent is 63.
	Iterations uint64

	// Salt is the salt embedded in the hash: 8 bytes in any hash the
	// scheme itself produced, shorter only when the input was truncated.
	Salt string
}

// Info extracts metadata from a hash string without verifying anything.
// Useful for auditing stored credentials or planning a migration.
//
// It returns the same sentinel errors as [CheckPassword]:
// [ErrMalformedPrefix], [ErrInvalidCountCharacter] or [ErrEmptySalt].
func Info(hash string) (HashInfo, error) {
	return parseSetting(hash)
}

// parseSetting validates the prefix and extracts the count exponent and
// salt. Errors are reported in setting order: prefix, then count, then
// salt.
func parseSetting(hash string) (HashInfo, error) {
	variant, ok := DetectVariant(hash)
	if !ok {
		return HashInfo{}, fmt.Errorf("%w: got %q", ErrMalformedPrefix, hash[:min(3, len(hash))])
	}

	log2, err := extractCountLog2(hash)
	if err != nil {
		return HashInfo{}, err
	}

	salt, err := extractSalt(hash)
	if err != nil {
		return HashInfo{}, err
	}

	return HashInfo{
		Variant:    variant,
		CountLog2:  log2,
		Iterations: 1 << log2,
		Salt:       salt,
	}, nil
}

// extractCountLog2 decodes the iteration-count exponent stored at byte 3.
func extractCountLog2(hash string) (int, error) {
	if len(hash) < 4 {
		return 0, fmt.Errorf("%w: hash has no count character", ErrInvalidCountCharacter)
	}
	log2 := itoa64.Index(hash[3])
	if log2 < 0 {
		return 0, fmt.Errorf("%w: %q is outside the encoding alphabet", ErrInvalidCountCharacter, hash[3])
	}
	return log2, nil
}

// extractSalt slices the salt from bytes [4,12), clamped so that a short
// hash yields a short salt rather than a panic. Only a hash with no salt
// bytes at all is an error; a truncated salt is returned as-is and simply
// never verifies.
func extractSalt(hash string) (string, error) {
	if len(hash) <= 4 {
		return "", ErrEmptySalt
	}
	return hash[4:min(settingLen, len(hash))], nil
}
