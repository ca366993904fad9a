// Package whatsapp delivers a message through WhatsApp Web by opening the
// chat with the message prefilled and then pressing Enter.
//
// Delivery is best effort. Nothing confirms that the message was actually
// sent; the Enter keypress lands wherever the automation has focus.
package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ErrCountryCode is returned for phone numbers without a leading + and
// country code.
var ErrCountryCode = errors.New("country code missing from phone number")

//counterfeiter:generate . Scheduler
type Scheduler interface {
	WaitUntil(ctx context.Context, at time.Time) error
}

//counterfeiter:generate . ChatOpener
type ChatOpener interface {
	OpenChat(ctx context.Context, phone, message string) error
}

//counterfeiter:generate . KeyPresser
type KeyPresser interface {
	PressEnter(ctx context.Context) error
}

// An AutomationSender sends a message by scheduling the chat to open at a
// whole minute, waiting for the page to load and pressing Enter.
type AutomationSender struct {
	logger    *slog.Logger
	scheduler Scheduler
	opener    ChatOpener
	presser   KeyPresser
	lead      time.Duration
	loadWait  time.Duration
	now       func() time.Time
}

// NewAutomationSender creates an AutomationSender.
// The chat opens at the minute that is lead from now; a lead of zero opens it
// immediately. loadWait is how long the chat page is given to load before
// Enter is pressed.
func NewAutomationSender(logger *slog.Logger, s Scheduler, o ChatOpener, p KeyPresser, lead, loadWait time.Duration) *AutomationSender {
	return &AutomationSender{
		logger:    logger,
		scheduler: s,
		opener:    o,
		presser:   p,
		lead:      lead,
		loadWait:  loadWait,
		now:       time.Now,
	}
}

// Send delivers message to the chat for phone.
func (a *AutomationSender) Send(ctx context.Context, phone, message string) error {
	if !strings.HasPrefix(phone, "+") {
		return ErrCountryCode
	}

	if a.lead > 0 {
		at := ScheduleAt(a.now(), a.lead)
		a.logger.Info("scheduling chat", "phone", phone, "at", at.Format("15:04"))
		if err := a.scheduler.WaitUntil(ctx, at); err != nil {
			return fmt.Errorf("waiting for %s: %w", at.Format("15:04"), err)
		}
	}

	a.logger.Info("opening chat", "phone", phone)
	if err := a.opener.OpenChat(ctx, phone, message); err != nil {
		return fmt.Errorf("opening chat: %w", err)
	}

	a.logger.Debug("waiting for chat to load", "wait", a.loadWait)
	if err := sleep(ctx, a.loadWait); err != nil {
		return fmt.Errorf("waiting for chat to load: %w", err)
	}

	if err := a.presser.PressEnter(ctx); err != nil {
		return fmt.Errorf("pressing enter: %w", err)
	}
	a.logger.Info("message submitted", "phone", phone)
	return nil
}

// ScheduleAt returns the start of the minute that now plus lead falls in.
// The result is an instant, so it names the same moment in every time zone.
func ScheduleAt(now time.Time, lead time.Duration) time.Time {
	t := now.Add(lead)
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
