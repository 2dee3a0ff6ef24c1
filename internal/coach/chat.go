package coach

import (
	"context"
	"errors"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

const Greeting = "Hello! I'm your AI Fitness Coach. Ask me anything about your workout plans, nutrition, or how to improve your performance."

var (
	ErrChatClosed = errors.New("chat is closed")
	ErrBusy       = errors.New("an exchange is already in flight")
	ErrEmptyInput = errors.New("empty message")
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

type Message struct {
	Role    Role
	Content string
}

// Chat is a conversation with the coach. One exchange runs at a time. Once
// closed, answers that arrive late are dropped.
type Chat struct {
	coach *Coach
	st    state.State

	mu       sync.Mutex
	messages []Message
	inFlight bool
	closed   bool
}

// NewChat opens a conversation on the user data st, starting with the
// greeting.
func (c *Coach) NewChat(st state.State) *Chat {
	return &Chat{
		coach:    c,
		st:       st,
		messages: []Message{{Role: RoleModel, Content: Greeting}},
	}
}

// StartChat opens a conversation whose first exchange is prompt.
func (c *Coach) StartChat(ctx context.Context, st state.State, prompt string) (*Chat, Message, error) {
	ch := &Chat{coach: c, st: st}
	answer, err := ch.Send(ctx, prompt)
	return ch, answer, err
}

// Send asks question and returns the answer, which is also appended to the
// transcript unless the chat was closed meanwhile.
func (ch *Chat) Send(ctx context.Context, question string) (Message, error) {
	if strings.TrimSpace(question) == "" {
		return Message{}, ErrEmptyInput
	}

	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return Message{}, ErrChatClosed
	}
	if ch.inFlight {
		ch.mu.Unlock()
		return Message{}, ErrBusy
	}
	ch.inFlight = true
	ch.messages = append(ch.messages, Message{Role: RoleUser, Content: question})
	ch.mu.Unlock()

	answer := Message{Role: RoleModel, Content: ch.coach.Respond(ctx, ch.st, question)}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.inFlight = false
	if ch.closed {
		log.Debug("chat closed before the answer arrived, dropping it")
		return Message{}, ErrChatClosed
	}
	ch.messages = append(ch.messages, answer)
	return answer, nil
}

// Messages returns a copy of the transcript.
func (ch *Chat) Messages() []Message {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return append([]Message(nil), ch.messages...)
}

func (ch *Chat) Close() {
	ch.mu.Lock()
	ch.closed = true
	ch.mu.Unlock()
}
