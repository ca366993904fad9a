// Package broadcast drafts a post for a topic and sends it to a phone number.
package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Generator
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

//counterfeiter:generate . MessageSender
type MessageSender interface {
	Send(ctx context.Context, phone, message string) error
}

// Outcome classifies the result of a generate and send.
type Outcome int

const (
	// Sent means the post was generated and handed to the sender without error.
	Sent Outcome = iota
	// Warning means the input was incomplete and nothing was attempted.
	Warning
	// GenerationFailed means no post was produced and nothing was sent.
	GenerationFailed
	// DeliveryFailed means a post was produced but sending it failed.
	DeliveryFailed
)

func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case Warning:
		return "warning"
	case GenerationFailed:
		return "generation_failed"
	case DeliveryFailed:
		return "delivery_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// User facing messages.
const (
	MissingInputMessage = "Please enter both topic and phone number."
	NoContentMessage    = "No content generated."
	SentMessage         = "Message sent directly on WhatsApp!"
)

// A Result reports what happened to a single generate and send.
type Result struct {
	Outcome Outcome
	// Content is the trimmed generated post. It is empty unless generation
	// succeeded.
	Content string
	// Message is shown to the user.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// A Controller runs the generator and then the sender.
// Only one generate and send runs at a time.
type Controller struct {
	logger    *slog.Logger
	generator Generator
	sender    MessageSender
	mu        sync.Mutex
}

// NewController creates a Controller.
func NewController(logger *slog.Logger, g Generator, s MessageSender) *Controller {
	return &Controller{logger: logger, generator: g, sender: s}
}

// GenerateAndSend drafts a post about topic and sends it to phone. Both
// inputs are trimmed of surrounding whitespace first.
// Errors are never returned; they are reported in the Result.
func (c *Controller) GenerateAndSend(ctx context.Context, topic, phone string) Result {
	topic, phone = strings.TrimSpace(topic), strings.TrimSpace(phone)
	hasTopic, hasPhone := topic != "", phone != ""
	if !hasTopic || !hasPhone {
		c.logger.Warn("missing input", "has_topic", hasTopic, "has_phone", hasPhone)
		return Result{Outcome: Warning, Message: MissingInputMessage}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	content, err := c.generator.Generate(ctx, topic)
	if err != nil {
		c.logger.Error("generating post", "err", err)
		return Result{Outcome: GenerationFailed, Message: fmt.Sprintf("Error: %s", err), Err: err}
	}

	content = strings.TrimSpace(content)
	if content == "" {
		c.logger.Error("generating post", "err", NoContentMessage)
		return Result{Outcome: GenerationFailed, Message: NoContentMessage}
	}

	if err := c.sender.Send(ctx, phone, content); err != nil {
		c.logger.Error("sending post", "phone", phone, "err", err)
		return Result{
			Outcome: DeliveryFailed,
			Content: content,
			Message: fmt.Sprintf("Failed to send: %s", err),
			Err:     err,
		}
	}

	c.logger.Info("post sent", "phone", phone, "length", len(content))
	return Result{Outcome: Sent, Content: content, Message: SentMessage}
}
