package services

import (
	"context"
	"fmt"
	"log/slog"
)

// StateChangeLogger writes one line per applied transition.
type StateChangeLogger struct {
	logger *slog.Logger
}

func NewStateChangeLogger(logger *slog.Logger) StateChangeLogger {
	return StateChangeLogger{logger: logger.With("component", "state_change_logger")}
}

func (l StateChangeLogger) StateChanged(ctx context.Context, change StateChange) {
	l.logger.InfoContext(ctx, fmt.Sprintf("Transitioned from %s to %s", change.From, change.To),
		"order_id", change.OrderID.String(),
		"event", change.Event.String(),
	)
}
