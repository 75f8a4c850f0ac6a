package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"f1-monk/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInputRejected     = errors.New("input rejected")
	ErrEmptyInput        = fmt.Errorf("%w: empty message", ErrInputRejected)
	ErrTurnInFlight      = fmt.Errorf("%w: a response is still pending", ErrInputRejected)
	ErrResolutionFailure = errors.New("resolution failure")
)

const (
	TypingPlaceholder = "..."
	ApologyMessage    = "I'm having trouble understanding that right now. Could you try rephrasing your question?"
)

type ConversationState string

const (
	StateIdle     ConversationState = "idle"
	StateAwaiting ConversationState = "awaiting"
)

type ResponseSource string

const (
	SourceKnowledgeBase ResponseSource = "knowledge_base"
	SourceClassifier    ResponseSource = "classifier"
	SourceApology       ResponseSource = "apology"
)

// KnowledgeSource exposes the loaded knowledge entries.
type KnowledgeSource interface {
	Entries() ([]models.KnowledgeEntry, error)
}

type Classifier interface {
	Classify(input string) Classification
}

type MatchRecorder interface {
	RecordMatch(entry models.KnowledgeEntry)
}

// TurnResult describes how a single chat turn was answered.
type TurnResult struct {
	Reply      models.ChatMessage
	Source     ResponseSource
	Intent     string
	Confidence float64
	EntryID    int
}

// Conversation is a single chat transcript with at most one turn in flight.
// Messages are append-only apart from the typing placeholder and the welcome message.
type Conversation struct {
	mu       sync.Mutex
	messages []models.ChatMessage
	state    ConversationState

	knowledge  KnowledgeSource
	classifier Classifier
	tracker    MatchRecorder
	now        func() time.Time
	logger     *zap.Logger
}

func NewConversation(
	welcome string,
	knowledge KnowledgeSource,
	classifier Classifier,
	tracker MatchRecorder,
	now func() time.Time,
	logger *zap.Logger,
) *Conversation {
	if now == nil {
		now = time.Now
	}

	c := &Conversation{
		state:      StateIdle,
		knowledge:  knowledge,
		classifier: classifier,
		tracker:    tracker,
		now:        now,
		logger:     logger,
	}
	c.messages = append(c.messages, c.newMessage(welcome, false))
	return c
}

// Send runs one chat turn. Empty input and input arriving while another turn
// is pending are rejected with an error wrapping ErrInputRejected and leave
// the transcript untouched. Resolution failures never surface as errors: the
// reply is the apology message instead.
func (c *Conversation) Send(input string) (*TurnResult, error) {
	text := sanitizeInput(input)
	if text == "" {
		return nil, ErrEmptyInput
	}

	c.mu.Lock()
	if c.state == StateAwaiting {
		c.mu.Unlock()
		return nil, ErrTurnInFlight
	}
	c.messages = append(c.messages, c.newMessage(text, true))
	c.messages = append(c.messages, c.newMessage(TypingPlaceholder, false))
	placeholder := len(c.messages) - 1
	c.state = StateAwaiting
	c.mu.Unlock()

	result, err := c.resolve(text)
	if err != nil {
		c.logger.Error("Failed to resolve chat turn", zap.Error(err))
		result = TurnResult{Source: SourceApology}
		result.Reply.Text = ApologyMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	reply := c.messages[placeholder]
	reply.Text = result.Reply.Text
	reply.Timestamp = c.now()
	c.messages[placeholder] = reply
	c.state = StateIdle

	result.Reply = reply
	return &result, nil
}

func (c *Conversation) resolve(text string) (result TurnResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrResolutionFailure, r)
		}
	}()

	entries, err := c.knowledge.Entries()
	if err != nil {
		return TurnResult{}, fmt.Errorf("%w: %w", ErrResolutionFailure, err)
	}

	if entry, ok := Resolve(text, entries); ok {
		c.tracker.RecordMatch(entry)
		result = TurnResult{
			Source:     SourceKnowledgeBase,
			Intent:     entry.Category,
			Confidence: 1,
			EntryID:    entry.ID,
		}
		result.Reply.Text = entry.Answer
		return result, nil
	}

	cls := c.classifier.Classify(text)
	result = TurnResult{
		Source:     SourceClassifier,
		Intent:     cls.Intent,
		Confidence: cls.Confidence,
	}
	result.Reply.Text = cls.ResponseText
	return result, nil
}

// UpdateWelcome replaces the text of the opening message when it is bot-authored.
func (c *Conversation) UpdateWelcome(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.messages) == 0 || c.messages[0].IsFromUser {
		return
	}
	c.messages[0].Text = text
}

// Transcript returns a copy of the messages.
func (c *Conversation) Transcript() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.ChatMessage(nil), c.messages...)
}

func (c *Conversation) State() ConversationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Conversation) Pending() bool {
	return c.State() == StateAwaiting
}

func (c *Conversation) newMessage(text string, fromUser bool) models.ChatMessage {
	return models.ChatMessage{
		ID:         uuid.NewString(),
		Text:       text,
		IsFromUser: fromUser,
		Timestamp:  c.now(),
	}
}
