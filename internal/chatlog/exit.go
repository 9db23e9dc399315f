package chatlog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"deepdive/internal/gateway"
	"deepdive/internal/model"
)

// CheckExit asks the model whether the interview should end. The probe
// is appended to a copy of the conversation and run without moderation;
// the reply is split on delim and only the last segment is searched for
// a "yes" verdict. A length cap overrides whatever the model decided,
// and a short conversation never exits. Ambiguous replies mean
// "continue": the bias is always against premature termination.
func CheckExit(ctx context.Context, messages []model.Message, gw gateway.Gateway, seed int64, delim string, logger *zap.Logger) (bool, error) {
	if delim == "" {
		delim = DefaultDelim
	}
	if len(messages) <= MinLen {
		return false, nil
	}

	probe := append(append([]model.Message(nil), messages...), EndQuery)
	reply, err := gw.Run(ctx, probe, seed, false)
	if err != nil {
		return false, err
	}

	segments := strings.Split(reply, delim)
	verdictSpan := segments[len(segments)-1]
	verdict := strings.Contains(strings.ToLower(verdictSpan), "yes")
	exit := verdict || len(messages) > MaxLen

	// The control flow depends on free-text parsing of a
	// non-deterministic model, so the full reasoning is kept for audit.
	logger.Info("exit check",
		zap.Int("messages", len(messages)),
		zap.String("reply", reply),
		zap.Bool("verdict", verdict),
		zap.Bool("exit", exit),
	)
	return exit, nil
}
