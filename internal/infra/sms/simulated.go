package sms

import (
	"context"
	"log/slog"
)

// SimulatedSender logs messages instead of handing them to a provider.
type SimulatedSender struct {
	logger *slog.Logger
}

func NewSimulatedSender(logger *slog.Logger) *SimulatedSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatedSender{logger: logger}
}

func (s *SimulatedSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "sms sent (simulated)",
		slog.String("to", maskPhone(to)),
		slog.Int("length", len(body)),
		slog.String("body", body))
	return nil
}

// maskPhone keeps the last four digits.
func maskPhone(p string) string {
	if len(p) <= 4 {
		return p
	}
	masked := make([]byte, len(p))
	for i := range p {
		if i < len(p)-4 {
			masked[i] = '*'
		} else {
			masked[i] = p[i]
		}
	}
	return string(masked)
}
