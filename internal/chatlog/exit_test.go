package chatlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"deepdive/internal/model"
)

func conversation(n int) []model.Message {
	msgs := make([]model.Message, 0, n)
	for i := 0; i < n; i++ {
		role := model.RoleUser
		if i%2 == 0 {
			role = model.RoleAssistant
		}
		msgs = append(msgs, model.Message{Role: role, Content: "turn"})
	}
	return msgs
}

func TestCheckExit(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("short conversation never exits and never calls the gateway", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"done -- Yes"}}
		for n := 1; n <= MinLen; n++ {
			exit, err := CheckExit(ctx, conversation(n), gw, 1, "", logger)
			require.NoError(t, err)
			assert.False(t, exit, "len %d", n)
		}
		assert.Equal(t, 0, gw.calls)
	})

	t.Run("yes verdict ends the interview", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{
			"The user has been thanked and has nothing left to add. -- Yes.",
		}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Equal(t, 1, gw.calls)
	})

	t.Run("no verdict continues", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{
			"There are still open questions. -- No.",
		}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		require.NoError(t, err)
		assert.False(t, exit)
	})

	t.Run("yes in the reasoning does not count", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{
			"Yes, the user answered, but I have not thanked them yet. -- No",
		}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		require.NoError(t, err)
		assert.False(t, exit)
	})

	t.Run("verdict match is case-insensitive", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"all done -- YES"}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("reply without delimiter is searched whole", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"I think we should stop now."}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		require.NoError(t, err)
		assert.False(t, exit)
	})

	t.Run("custom delimiter", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"nothing left ### Yes"}}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "###", logger)
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("length cap overrides a no verdict", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"plenty to discuss -- No"}}
		exit, err := CheckExit(ctx, conversation(MaxLen+1), gw, 1, "", logger)
		require.NoError(t, err)
		assert.True(t, exit)
	})

	t.Run("at the cap the verdict still rules", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"more to ask -- No"}}
		exit, err := CheckExit(ctx, conversation(MaxLen), gw, 1, "", logger)
		require.NoError(t, err)
		assert.False(t, exit)
	})

	t.Run("gateway error propagates as not-exit", func(t *testing.T) {
		gw := &scriptedGateway{err: assert.AnError}
		exit, err := CheckExit(ctx, conversation(8), gw, 1, "", logger)
		assert.Error(t, err)
		assert.False(t, exit)
	})

	t.Run("probe does not mutate the conversation", func(t *testing.T) {
		gw := &scriptedGateway{replies: []string{"done -- Yes"}}
		msgs := conversation(8)
		_, err := CheckExit(ctx, msgs, gw, 1, "", logger)
		require.NoError(t, err)
		assert.Equal(t, 8, len(msgs))
		for _, m := range msgs {
			assert.NotEqual(t, EndQuery.Content, m.Content)
		}
	})
}
