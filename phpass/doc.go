// Package phpass verifies passwords against hashes produced by the
// portable PHP password hashing framework, the scheme behind legacy
// WordPress and Drupal 6 credential stores ($P$ hashes) and phpBB3
// ($H$ hashes).
//
// The package exists for migrations. A system absorbing users from a
// PHP-era application can validate their existing credentials at login
// time and re-hash with a modern algorithm, instead of forcing a global
// password reset. It deliberately cannot produce new portable hashes.
//
// # Quick start
//
//	ok, err := phpass.CheckPassword(password, storedHash)
//	if err != nil {
//	    // storedHash is not a portable hash; see the sentinel errors
//	}
//	if ok {
//	    // password matches; re-hash with a modern algorithm now
//	}
//
// A wrong password is (false, nil), never an error. Errors mean the hash
// string itself is malformed: [ErrMalformedPrefix],
// [ErrInvalidCountCharacter] or [ErrEmptySalt].
//
// # Hash layout
//
// A portable hash is 34 ASCII characters. Reading
// "$P$BgTamYfHkWfZ2yKzYCsPxIRjzIgBEu0" left to right:
//
//	$P$  B  gTamYfHk  WfZ2yKzYCsPxIRjzIgBEu0
//	 |   |     |      22-character encoded digest
//	 |   |     8-character salt
//	 |   count character: iterations = 2^(alphabet index), 'B' is 2^13 = 8192
//	 variant prefix: $P$ portable, $H$ phpBB3
//
// The first 12 characters form the hash's setting. Verification
// recomputes the MD5 digest chain from the salt and password, encodes the
// result with the itoa64 alphabet (package itoa64) and compares
// setting + suffix against the stored hash byte for byte.
//
// # Bounding hostile hashes
//
// The iteration count is read from the hash itself, and a single count
// character selects anything from 2^0 to 2^63 MD5 applications. When
// hashes come from storage an attacker may be able to write, bound the
// work with a [Checker]:
//
//	c := phpass.NewChecker(phpass.WithMaxIterations(1 << 24))
//	ok, err := c.CheckPassword(password, storedHash)
//
// A count beyond the ceiling fails fast with [ErrIterationLimitExceeded].
// The package-level [CheckPassword] applies no ceiling, matching the
// original scheme. Hashes written by real WordPress or phpBB
// installations use small counts (8192 is the WordPress norm), so a
// generous ceiling rejects nothing legitimate.
//
// # Security properties
//
// The scheme dates from an era when MD5 was the only digest PHP could
// rely on. Its iterated work factor helps, but it is far below modern
// memory-hard algorithms. Treat a successful verification as the signal
// to re-hash immediately; the package examples show the flow.
//
// Comparison of the calculated string against the stored hash is plain
// equality, not constant-time. The PHP implementations behave the same
// way, and this package preserves their behavior bit for bit; it is a
// known limitation of the scheme, not something to rely on.
package phpass
