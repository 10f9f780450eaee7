package phpass_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-phpass/phpass"
)

// FuzzCheckPassword ensures verification never panics on arbitrary
// (password, hash) pairs and fails only with this package's sentinel
// errors. The Checker carries an iteration ceiling so a fuzzed count
// character cannot turn the run into an MD5 benchmark.
//
// Run with: go test -fuzz=FuzzCheckPassword ./phpass/
func FuzzCheckPassword(f *testing.F) {
	seeds := []struct{ password, hash string }{
		{"testy", "$P$BgTamYfHkWfZ2yKzYCsPxIRjzIgBEu0"},
		{"secret", "$P$7saltsaltiwCLIVJdfdGtb7ZqmNj79."},
		{"phpbb3files", "$H$9AbCdEfGhZkC8hsiEFZAiT7ZdTvniI."},
		{"", ""},
		{"pw", "$P$"},
		{"pw", "$P$B"},
		{"pw", "$P$!saltsalt"},
		{"pw", "$P$zsaltsalt"},
		{"pw", "$2a$10$N9qo8uLOickgx2ZMRZoMye"},
		{"p\x00w", "$P$Bsalt"},
	}
	for _, s := range seeds {
		f.Add(s.password, s.hash)
	}

	c := phpass.NewChecker(phpass.WithMaxIterations(1 << 13))

	f.Fuzz(func(t *testing.T, password, hash string) {
		ok, err := c.CheckPassword(password, hash)
		if err == nil {
			return
		}
		if ok {
			t.Fatalf("CheckPassword(%q, %q) returned true alongside error %v", password, hash, err)
		}
		switch {
		case errors.Is(err, phpass.ErrMalformedPrefix),
			errors.Is(err, phpass.ErrInvalidCountCharacter),
			errors.Is(err, phpass.ErrEmptySalt),
			errors.Is(err, phpass.ErrIterationLimitExceeded):
		default:
			t.Fatalf("CheckPassword(%q, %q) returned a non-sentinel error: %v", password, hash, err)
		}
	})
}

// FuzzInfo ensures setting extraction never panics however truncated or
// corrupt the hash, and that every successful parse satisfies the
// setting's structural invariants.
func FuzzInfo(f *testing.F) {
	for _, hash := range []string{
		"",
		"$",
		"$P",
		"$P$",
		"$P$B",
		"$P$Bsalt",
		"$P$BgTamYfHkWfZ2yKzYCsPxIRjzIgBEu0",
		"$H$9AbCdEfGhZkC8hsiEFZAiT7ZdTvniI.",
		"$P$!",
		"$P$zsaltsalt",
		"$2y$10$N9qo8uLOickgx2ZMRZoMye",
	} {
		f.Add(hash)
	}

	f.Fuzz(func(t *testing.T, hash string) {
		info, err := phpass.Info(hash)
		if err != nil {
			return
		}
		if info.Variant != phpass.VariantPortable && info.Variant != phpass.VariantPHPBB {
			t.Fatalf("Info(%q): unknown variant %q", hash, info.Variant)
		}
		if info.CountLog2 < 0 || info.CountLog2 > 63 {
			t.Fatalf("Info(%q): count exponent %d outside 0..63", hash, info.CountLog2)
		}
		if info.Iterations != 1<<info.CountLog2 {
			t.Fatalf("Info(%q): iterations %d never equals 2^%d", hash, info.Iterations, info.CountLog2)
		}
		if len(info.Salt) == 0 || len(info.Salt) > 8 {
			t.Fatalf("Info(%q): salt %q outside 1..8 bytes", hash, info.Salt)
		}
	})
}
