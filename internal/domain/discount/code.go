package discount

import (
	"crypto/rand"
	"strings"

	"feedbackpro/internal/pkg/errs"
)

const (
	// CodeAlphabet leaves out 0, O, 1 and I so codes can be read back over the phone.
	CodeAlphabet      = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	DefaultCodeLength = 8
	// MaxCodeLength is the longest random part a reward policy may configure.
	MaxCodeLength = 32
)

var ErrRandomSource = errs.New("random source failed")

// alphabet length is 32, so masking a random byte keeps the draw uniform.
const alphabetMask = byte(len(CodeAlphabet) - 1)

// GenerateCode returns prefix followed by length characters drawn uniformly from CodeAlphabet.
// A non-positive length falls back to DefaultCodeLength. The result is always
// len(prefix)+length characters long.
func GenerateCode(length int, prefix string) (string, error) {
	if length <= 0 {
		length = DefaultCodeLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Mark(err, ErrRandomSource)
	}

	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for _, r := range buf {
		b.WriteByte(CodeAlphabet[r&alphabetMask])
	}
	return b.String(), nil
}

// NormalizeCode canonicalises user input before lookup.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
