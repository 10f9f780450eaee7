package phpass

import "errors"

// Sentinel errors returned when a hash string is structurally invalid.
//
// Use [errors.Is] for comparisons:
//
//	ok, err := phpass.CheckPassword(password, hash)
//	if errors.Is(err, phpass.ErrMalformedPrefix) {
//	    // not a portable hash at all; try another verifier
//	}
//
// A wrong password is never an error: it is a (false, nil) result.
var (
	// ErrMalformedPrefix is returned when the hash does not start with the
	// "$P$" or "$H$" setting prefix.
	ErrMalformedPrefix = errors.New("phpass: hash does not start with $P$ or $H$")

	// ErrInvalidCountCharacter is returned when the hash's count character
	// (byte 3 of the setting) is missing or not part of the encoding
	// alphabet.
	ErrInvalidCountCharacter = errors.New("phpass: could not extract iteration count")

	// ErrEmptySalt is returned when the hash ends before any salt bytes.
	ErrEmptySalt = errors.New("phpass: no salt found")

	// ErrIterationLimitExceeded is returned by a [Checker] whose
	// [WithMaxIterations] ceiling is below the iteration count encoded in
	// the hash. No hashing is performed in that case.
	ErrIterationLimitExceeded = errors.New("phpass: iteration count exceeds configured maximum")
)
