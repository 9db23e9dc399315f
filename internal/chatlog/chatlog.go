// Package chatlog owns the conversation state for one AI follow-up
// interview: an ordered role-tagged message list, an edit cursor, and
// the fixed system prompts that frame the interviewer. It also decides
// when an interview should end.
package chatlog

import (
	"context"
	"errors"
	"fmt"

	"deepdive/internal/gateway"
	"deepdive/internal/model"
)

const (
	// MaxLen hard-caps conversation length. Once the message list grows
	// past it, the interview ends regardless of the model's own verdict.
	MaxLen = 30

	// MinLen is the floor below which an exit check never fires, so the
	// bootstrap messages alone cannot end the interview.
	MinLen = 4

	// DefaultDelim separates reasoning from verdict in an exit probe reply.
	DefaultDelim = "--"
)

// SysPrompt seeds every interview. Its single placeholder takes the
// formatted survey answers; it is rendered only by Construct.
const SysPrompt = `You are an assistant who is trying to gather user experiences about a product.
You have collected some survey responses, and you would like to probe further about what the user thinks about the product.
Given user responses, pretend you are an interviewer and generate a few questions to ask the user.
Contextual information about the survey and user responses are provided below:
%s`

// SysPrompt2 is the interviewer scratchpad injected as the third
// message during bootstrap.
const SysPrompt2 = `Remember these few questions. This is a semi-structured interview, and try to keep asking questions, based on the user replies, or the questions you generated to ask the user.
Only ask the user one question at a time. If a reply contradicts something the user said earlier, probe the inconsistency. The user is a customer. Politely decline all inappropriate requests.
When you have no more questions left to ask, remember to thank the user for their time.
Now, please greet the user and ask a question.`

// EndQuery is the probe appended to the live conversation when asking
// the model whether the interview should end. It is never part of the
// persisted conversation.
var EndQuery = model.Message{
	Role: model.RoleSystem,
	Content: `Would you like to end the interview here? Think it over first, then answer strictly in the form:
<reasoning> -- <Yes/No>
If you have not thanked the user, if you still have questions to ask, or if the user has not replied yet, your verdict is No.`,
}

var (
	// ErrEmptyMessages signals a persistence or bootstrap bug upstream:
	// a conversation can never be built from zero messages.
	ErrEmptyMessages = errors.New("chatlog: empty message list")

	// ErrUnknownRole rejects insertion of a message whose role is not
	// system, user, or assistant.
	ErrUnknownRole = errors.New("chatlog: unknown message role")
)

// ChatLog is an ordered message list with an edit cursor. Editing at an
// index before the cursor discards everything after the inserted
// message, which is how a respondent rewriting a prior answer is
// modeled without a separate edit API.
type ChatLog struct {
	messages []model.Message
	cursor   int
	gw       gateway.Gateway
}

// New wraps a message list in a ChatLog. With fromStart set and exactly
// one (system) message, it bootstraps the interview: one Gateway call
// for the model's opening question, inserted as assistant, then
// SysPrompt2 inserted as system. Any other shape is a pure rehydration
// with no Gateway calls.
func New(ctx context.Context, messages []model.Message, gw gateway.Gateway, fromStart bool, seed int64) (*ChatLog, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyMessages
	}
	c := &ChatLog{
		messages: append([]model.Message(nil), messages...),
		cursor:   len(messages),
		gw:       gw,
	}
	if c.cursor == 1 && fromStart {
		opening, err := gw.Run(ctx, c.messages, seed, true)
		if err != nil {
			return nil, err
		}
		if _, err := c.InsertAndUpdate(opening, c.cursor, model.RoleAssistant); err != nil {
			return nil, err
		}
		if _, err := c.InsertAndUpdate(SysPrompt2, c.cursor, model.RoleSystem); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Construct builds a fresh interview from formatted survey-answer text.
// This is the only place SysPrompt is rendered.
func Construct(ctx context.Context, surveyResponses string, gw gateway.Gateway, seed int64) (*ChatLog, error) {
	start := model.Message{
		Role:    model.RoleSystem,
		Content: fmt.Sprintf(SysPrompt, surveyResponses),
	}
	return New(ctx, []model.Message{start}, gw, true, seed)
}

// InsertAndUpdate is the sole mutation primitive. It inserts a message
// at index, moves the cursor to index+1, and truncates the list to the
// cursor: inserting at the end appends, inserting earlier rewrites the
// future. The returned slice aliases the ChatLog's own state.
func (c *ChatLog) InsertAndUpdate(content string, index int, role model.Role) ([]model.Message, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if index < 0 {
		return nil, fmt.Errorf("chatlog: negative index %d", index)
	}
	if index > len(c.messages) {
		index = len(c.messages)
	}
	c.messages = append(c.messages[:index], model.Message{Role: role, Content: content})
	c.cursor = index + 1
	return c.messages, nil
}

// Messages returns the live message list. Callers read it; they do not
// own a separate copy.
func (c *ChatLog) Messages() []model.Message {
	return c.messages
}

// Cursor returns the index one past the last committed message.
func (c *ChatLog) Cursor() int {
	return c.cursor
}

// Len returns the number of messages.
func (c *ChatLog) Len() int {
	return len(c.messages)
}
