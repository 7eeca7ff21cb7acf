package crypto

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func withRandReader(t *testing.T, r io.Reader) {
	t.Helper()
	orig := randReader
	randReader = r
	t.Cleanup(func() { randReader = orig })
}

func TestSecureRandomString_LengthAndAlphabet(t *testing.T) {
	for _, n := range []int{1, 12, 24, 100} {
		s, err := SecureRandomString(n, Charset)
		if err != nil {
			t.Fatalf("SecureRandomString(%d) error: %v", n, err)
		}
		if len(s) != n {
			t.Fatalf("length = %d, want %d", len(s), n)
		}
		for _, r := range s {
			if !strings.ContainsRune(Charset, r) {
				t.Fatalf("symbol %q is not in charset", r)
			}
		}
	}
}

func TestSecureRandomString_RejectsBiasedBytes(t *testing.T) {
	// 57 symbols: bytes >= 228 must be discarded.
	withRandReader(t, bytes.NewReader([]byte{228, 255, 0, 57, 56}))

	s, err := SecureRandomString(3, Charset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "22z" {
		t.Fatalf("got %q, want %q", s, "22z")
	}
}

func TestSecureRandomString_EntropyFailure(t *testing.T) {
	withRandReader(t, failingReader{})

	_, err := SecureRandomString(12, Charset)
	if !errors.Is(err, ErrEntropySource) {
		t.Fatalf("expected ErrEntropySource, got %v", err)
	}
}

func TestSecureRandomString_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		charset string
	}{
		{"zero length", 0, Charset},
		{"negative length", -1, Charset},
		{"empty charset", 5, ""},
		{"duplicate symbols", 5, "abca"},
		{"non ascii", 5, "abcé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SecureRandomString(tt.length, tt.charset); !errors.Is(err, ErrInvalidCharset) {
				t.Fatalf("expected ErrInvalidCharset, got %v", err)
			}
		})
	}
}

// TestSecureRandomString_Uniform runs a chi-square goodness-of-fit test over
// 114 000 symbols (2 000 expected per symbol, 56 degrees of freedom). The
// threshold sits above the 0.9999 quantile of chi2(56), about 104.
func TestSecureRandomString_Uniform(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}

	const samples = 114_000
	s, err := SecureRandomString(samples, Charset)
	if err != nil {
		t.Fatalf("SecureRandomString error: %v", err)
	}

	counts := make(map[rune]int, len(Charset))
	for _, r := range s {
		counts[r]++
	}

	expected := float64(samples) / float64(len(Charset))
	var chi2 float64
	for _, r := range Charset {
		d := float64(counts[r]) - expected
		chi2 += d * d / expected
	}

	if chi2 > 110 {
		t.Fatalf("chi-square = %.2f, distribution looks biased", chi2)
	}
}

func TestGenerateDocumentIDAndPassword(t *testing.T) {
	id1, err := GenerateDocumentID()
	if err != nil {
		t.Fatalf("GenerateDocumentID error: %v", err)
	}
	id2, _ := GenerateDocumentID()
	if len(id1) != DocumentIDLength {
		t.Fatalf("id length = %d, want %d", len(id1), DocumentIDLength)
	}
	if id1 == id2 {
		t.Fatalf("expected two ids to differ")
	}

	pw, err := GeneratePassword()
	if err != nil {
		t.Fatalf("GeneratePassword error: %v", err)
	}
	if len(pw) != PasswordLength {
		t.Fatalf("password length = %d, want %d", len(pw), PasswordLength)
	}
}
