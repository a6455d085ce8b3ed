package discount

import (
	"context"

	"feedbackpro/internal/pkg/errs"
)

const MaxGenerationAttempts = 10

var ErrCodeGenerationExhausted = errs.New("could not generate a unique discount code")

// CodeExistsFunc reports whether a candidate code is already persisted.
type CodeExistsFunc func(ctx context.Context, code string) (bool, error)

// CodeSource produces candidate codes. GenerateCode is the production source.
type CodeSource func(length int, prefix string) (string, error)

type UniqueCodeGenerator struct {
	exists      CodeExistsFunc
	source      CodeSource
	length      int
	prefix      string
	maxAttempts int
}

type GeneratorOption func(*UniqueCodeGenerator)

func WithLength(n int) GeneratorOption {
	return func(g *UniqueCodeGenerator) { g.length = n }
}

func WithPrefix(p string) GeneratorOption {
	return func(g *UniqueCodeGenerator) { g.prefix = p }
}

func WithMaxAttempts(n int) GeneratorOption {
	return func(g *UniqueCodeGenerator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

func WithSource(src CodeSource) GeneratorOption {
	return func(g *UniqueCodeGenerator) {
		if src != nil {
			g.source = src
		}
	}
}

func NewUniqueCodeGenerator(exists CodeExistsFunc, opts ...GeneratorOption) *UniqueCodeGenerator {
	g := &UniqueCodeGenerator{
		exists:      exists,
		source:      GenerateCode,
		length:      DefaultCodeLength,
		maxAttempts: MaxGenerationAttempts,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the first candidate not reported as existing, together with the
// 1-based attempt that produced it. The existence check is advisory: the unique index
// on the code column remains the final arbiter.
func (g *UniqueCodeGenerator) Generate(ctx context.Context) (string, int, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", attempt - 1, err
		}

		code, err := g.source(g.length, g.prefix)
		if err != nil {
			return "", attempt, err
		}

		taken, err := g.exists(ctx, code)
		if err != nil {
			return "", attempt, errs.Wrap(err, "check discount code uniqueness")
		}
		if !taken {
			return code, attempt, nil
		}
	}
	return "", g.maxAttempts, ErrCodeGenerationExhausted
}
