package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const webURL = "https://web.whatsapp.com/send"

// ChatURL returns the WhatsApp Web address that opens the chat for phone with
// message typed into the compose box.
func ChatURL(phone, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("%s?phone=%s&text=%s", webURL, digits(phone), text)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// A BrowserChatOpener opens chats in a Chromium controlled over the DevTools
// protocol. It also presses Enter on the last chat it opened.
//
// The browser is launched on first use with a persistent profile directory so
// the WhatsApp Web login survives restarts.
type BrowserChatOpener struct {
	logger     *slog.Logger
	profileDir string
	headless   bool

	mu      sync.Mutex
	browser *rod.Browser
	page    *rod.Page
}

// NewBrowserChatOpener creates a BrowserChatOpener.
func NewBrowserChatOpener(logger *slog.Logger, profileDir string, headless bool) *BrowserChatOpener {
	return &BrowserChatOpener{logger: logger, profileDir: profileDir, headless: headless}
}

// OpenChat navigates a new tab to the chat for phone with message prefilled.
func (b *BrowserChatOpener) OpenChat(ctx context.Context, phone, message string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	browser, err := b.connect()
	if err != nil {
		return err
	}

	if b.page != nil {
		_ = b.page.Close()
		b.page = nil
	}

	b.logger.Debug("opening page", "url", webURL, "phone", phone)
	page, err := browser.Context(ctx).Page(proto.TargetCreateTarget{URL: ChatURL(phone, message)})
	if err != nil {
		return fmt.Errorf("opening page: %w", err)
	}
	b.page = page
	return nil
}

// PressEnter presses Enter on the last opened chat.
func (b *BrowserChatOpener) PressEnter(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.page == nil {
		return errors.New("no chat is open")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.page.Keyboard.Press(input.Enter)
}

// Close shuts the browser down if it was launched.
func (b *BrowserChatOpener) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.browser == nil {
		return nil
	}
	err := b.browser.Close()
	b.browser = nil
	b.page = nil
	return err
}

func (b *BrowserChatOpener) connect() (*rod.Browser, error) {
	if b.browser != nil {
		return b.browser, nil
	}

	l := launcher.New().Headless(b.headless)
	if b.profileDir != "" {
		l = l.UserDataDir(b.profileDir)
	}
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	b.logger.Info("browser launched", "profile", b.profileDir, "headless", b.headless)
	b.browser = browser
	return browser, nil
}
