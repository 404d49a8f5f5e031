package totp

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jeremyhahn/go-otp/pkg/otp"
)

// RFC 6238 Appendix B uses ASCII seeds sized to each algorithm's digest.
var (
	seedSHA1   = otp.Secret(strings.Repeat("1234567890", 2)).String()
	seedSHA256 = otp.Secret(strings.Repeat("1234567890", 3) + "12").String()
	seedSHA512 = otp.Secret(strings.Repeat("1234567890", 6) + "1234").String()
)

// TestGenerateAtRFC6238Vectors verifies generation against the RFC 6238
// Appendix B reference values for all three algorithms.
func TestGenerateAtRFC6238Vectors(t *testing.T) {
	times := []int64{59, 1111111109, 1111111111, 1234567890, 2000000000, 20000000000}

	tests := []struct {
		algorithm otp.Algorithm
		secret    string
		want      []string
	}{
		{
			algorithm: otp.SHA1,
			secret:    seedSHA1,
			want:      []string{"94287082", "07081804", "14050471", "89005924", "69279037", "65353130"},
		},
		{
			algorithm: otp.SHA256,
			secret:    seedSHA256,
			want:      []string{"46119246", "68084774", "67062674", "91819424", "90698825", "77737706"},
		},
		{
			algorithm: otp.SHA512,
			secret:    seedSHA512,
			want:      []string{"90693936", "25091201", "99943326", "93441116", "38618901", "47863826"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			gen, err := NewGenerator(Config{
				Secret:    tt.secret,
				Algorithm: tt.algorithm,
				Digits:    otp.DigitsEight,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for i, unix := range times {
				code, err := gen.GenerateAt(time.Unix(unix, 0).UTC())
				if err != nil {
					t.Fatalf("time %d: unexpected error: %v", unix, err)
				}
				if code.Token != tt.want[i] {
					t.Errorf("time %d: expected %s, got %s", unix, tt.want[i], code.Token)
				}
			}
		})
	}
}

// TestStepAt tests counter derivation against the RFC 6238 Appendix B
// T values.
func TestStepAt(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		unix int64
		want uint64
	}{
		{59, 1},
		{1111111109, 37037036},
		{1111111111, 37037037},
		{1234567890, 41152263},
		{2000000000, 66666666},
		{20000000000, 666666666},
	}

	for _, tt := range tests {
		step, err := gen.StepAt(time.Unix(tt.unix, 0).UTC())
		if err != nil {
			t.Fatalf("time %d: unexpected error: %v", tt.unix, err)
		}
		if step != tt.want {
			t.Errorf("time %d: expected step %d, got %d", tt.unix, tt.want, step)
		}
	}

	if _, err := gen.StepAt(time.Unix(-1, 0)); !errors.Is(err, otp.ErrInvalidCounter) {
		t.Errorf("pre-epoch time: expected ErrInvalidCounter, got %v", err)
	}
}

// TestGenerateAtRemaining tests the remaining-validity calculation at the
// edges of a step.
func TestGenerateAtRemaining(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want time.Duration
	}{
		{
			name: "start of step",
			at:   time.Unix(60, 0),
			want: 30 * time.Second,
		},
		{
			name: "last second of step",
			at:   time.Unix(59, 0),
			want: 1 * time.Second,
		},
		{
			name: "mid step",
			at:   time.Unix(75, 0),
			want: 15 * time.Second,
		},
		{
			name: "fractional second rounds up",
			at:   time.Unix(59, 500_000_000),
			want: 1 * time.Second,
		},
		{
			name: "just past boundary rounds up to full step",
			at:   time.Unix(60, 1_000_000),
			want: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := gen.GenerateAt(tt.at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if code.Remaining != tt.want {
				t.Errorf("expected remaining %v, got %v", tt.want, code.Remaining)
			}
			if code.Remaining <= 0 || code.Remaining > 30*time.Second {
				t.Errorf("remaining %v outside (0, period]", code.Remaining)
			}
		})
	}
}

// TestValidateAtWindow tests that a token accepted at offset δ reports
// Delta δ, and that offsets beyond the skew are rejected.
func TestValidateAtWindow(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1, Skew: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Unix(1111111109, 0).UTC()
	code, err := gen.GenerateAt(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name      string
		at        time.Time
		wantValid bool
		wantDelta int
	}{
		{
			name:      "same step",
			at:        base,
			wantValid: true,
			wantDelta: 0,
		},
		{
			name:      "one step later",
			at:        base.Add(30 * time.Second),
			wantValid: true,
			wantDelta: -1,
		},
		{
			name:      "one step earlier",
			at:        base.Add(-30 * time.Second),
			wantValid: true,
			wantDelta: 1,
		},
		{
			name:      "two steps later",
			at:        base.Add(60 * time.Second),
			wantValid: false,
		},
		{
			name:      "two steps earlier",
			at:        base.Add(-60 * time.Second),
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := gen.ValidateAt(code.Token, tt.at)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Valid != tt.wantValid {
				t.Fatalf("expected valid=%v, got %v", tt.wantValid, res.Valid)
			}
			if res.Valid && res.Delta != tt.wantDelta {
				t.Errorf("expected delta %d, got %d", tt.wantDelta, res.Delta)
			}
		})
	}
}

// TestValidateAtWideSkew tests the window at skew 2.
func TestValidateAtWideSkew(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1, Skew: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Unix(1234567890, 0).UTC()
	code, err := gen.GenerateAt(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, steps := range []int{-2, -1, 0, 1, 2} {
		at := base.Add(time.Duration(steps) * 30 * time.Second)
		res, err := gen.ValidateAt(code.Token, at)
		if err != nil {
			t.Fatalf("offset %d: unexpected error: %v", steps, err)
		}
		if !res.Valid {
			t.Errorf("offset %d: expected valid", steps)
			continue
		}
		if res.Delta != -steps {
			t.Errorf("offset %d: expected delta %d, got %d", steps, -steps, res.Delta)
		}
	}

	for _, steps := range []int{-3, 3} {
		at := base.Add(time.Duration(steps) * 30 * time.Second)
		res, err := gen.ValidateAt(code.Token, at)
		if err != nil {
			t.Fatalf("offset %d: unexpected error: %v", steps, err)
		}
		if res.Valid {
			t.Errorf("offset %d: expected invalid", steps)
		}
	}
}

// TestValidateAtEpochEdge tests that steps before the epoch are skipped
// instead of wrapping the counter.
func TestValidateAtEpochEdge(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1, Skew: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	early := time.Unix(10, 0).UTC() // step 0; step -1 does not exist

	code, err := gen.GenerateAt(early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := gen.ValidateAt(code.Token, early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || res.Delta != 0 {
		t.Errorf("expected valid at delta 0, got %+v", res)
	}

	// A token for step 1 is ahead of step 0 by one.
	next, err := gen.GenerateAt(time.Unix(40, 0).UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = gen.ValidateAt(next.Token, early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid || res.Delta != 1 {
		t.Errorf("expected valid at delta 1, got %+v", res)
	}

	// A token for step 2 is outside the window.
	far, err := gen.GenerateAt(time.Unix(70, 0).UTC())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err = gen.ValidateAt(far.Token, early)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Errorf("expected invalid, got %+v", res)
	}
}

// TestValidateAtFormatErrors tests that malformed tokens fail with
// ErrInvalidToken before any window work.
func TestValidateAtFormatErrors(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	at := time.Unix(1111111109, 0).UTC()
	for _, token := range []string{"", "12345", "1234567", "12345a", "123 456"} {
		if _, err := gen.ValidateAt(token, at); !errors.Is(err, otp.ErrInvalidToken) {
			t.Errorf("%q: expected ErrInvalidToken, got %v", token, err)
		}
	}

	if _, err := gen.ValidateAt("123456", time.Unix(-100, 0)); !errors.Is(err, otp.ErrInvalidCounter) {
		t.Errorf("pre-epoch time: expected ErrInvalidCounter, got %v", err)
	}
}

// TestNewGeneratorConfig tests construction-time validation and defaults.
func TestNewGeneratorConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid with defaults",
			cfg:  Config{Secret: seedSHA1},
		},
		{
			name: "valid custom period",
			cfg:  Config{Secret: seedSHA1, Period: 60},
		},
		{
			name:    "missing secret",
			cfg:     Config{},
			wantErr: otp.ErrInvalidSecret,
		},
		{
			name:    "malformed secret",
			cfg:     Config{Secret: "not!base32"},
			wantErr: otp.ErrInvalidSecret,
		},
		{
			name:    "secret length does not match algorithm",
			cfg:     Config{Secret: seedSHA1, Algorithm: otp.SHA512},
			wantErr: otp.ErrInvalidSecret,
		},
		{
			name:    "invalid algorithm",
			cfg:     Config{Secret: seedSHA1, Algorithm: "MD5"},
			wantErr: otp.ErrInvalidAlgorithm,
		},
		{
			name:    "invalid digits",
			cfg:     Config{Secret: seedSHA1, Digits: 9},
			wantErr: otp.ErrInvalidDigits,
		},
		{
			name:    "negative period",
			cfg:     Config{Secret: seedSHA1, Period: -30},
			wantErr: otp.ErrInvalidPeriod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := NewGenerator(tt.cfg)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if gen == nil {
				t.Fatal("expected generator, got nil")
			}
		})
	}
}

// TestNewGeneratorDefaults tests that zero-value fields receive defaults.
func TestNewGeneratorDefaults(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gen.algorithm != otp.SHA1 {
		t.Errorf("expected default algorithm SHA1, got %s", gen.algorithm)
	}
	if gen.digits != otp.DigitsSix {
		t.Errorf("expected default digits 6, got %d", gen.digits)
	}
	if gen.period != 30 {
		t.Errorf("expected default period 30, got %d", gen.period)
	}
	if gen.skew != 1 {
		t.Errorf("expected default skew 1, got %d", gen.skew)
	}
}

// TestGenerateValidateRoundTrip tests the wall-clock entry points.
func TestGenerateValidateRoundTrip(t *testing.T) {
	gen, err := NewGenerator(Config{Secret: seedSHA1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := gen.Validate(code.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Valid {
		t.Error("expected freshly generated token to validate")
	}
}

// TestNilGenerator tests nil receiver guards.
func TestNilGenerator(t *testing.T) {
	var gen *Generator

	if _, err := gen.Generate(); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("Generate: expected ErrNilGenerator, got %v", err)
	}
	if _, err := gen.Validate("123456"); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("Validate: expected ErrNilGenerator, got %v", err)
	}
	if _, err := gen.Step(); !errors.Is(err, ErrNilGenerator) {
		t.Errorf("Step: expected ErrNilGenerator, got %v", err)
	}
	if p := gen.Period(); p != 0 {
		t.Errorf("Period: expected 0, got %d", p)
	}
}
