package gateway

import (
	"context"
	"math/rand/v2"

	"deepdive/internal/model"
)

// ModerationNotice replaces a completion that the moderation check
// flagged. The substitution is silent: callers see it as a normal reply.
const ModerationNotice = "Sorry, I cannot assist you with that. Please note that your replies are being logged."

// Gateway sends a role-tagged message sequence to a text-completion
// service and returns the reply. Seed controls sampling reproducibility
// where the backing model supports it. When withModeration is set, the
// raw completion is screened and a flagged reply is swapped for
// ModerationNotice. Errors are never retried here; they surface to the
// caller as-is.
type Gateway interface {
	Run(ctx context.Context, messages []model.Message, seed int64, withModeration bool) (string, error)
}

// RandomSeed draws a fresh sampling seed. Callers that want
// reproducible turns pin their own seed instead.
func RandomSeed() int64 {
	return rand.Int64N(9999) + 1
}
