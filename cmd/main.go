/*
Postbot drafts a WhatsApp broadcast post about a topic with a LLM and sends
it to a phone number through WhatsApp Web.

	postbot serve   runs the single page form
	postbot send    drafts and sends one post from the terminal

The API key is read from GEMINI_API_KEY (or ANTHROPIC_API_KEY for the
anthropic provider), either in the environment or in a .env file.

WARNING: Sending drives a real browser and presses Enter in it. A post may be
drafted but never sent, and nothing confirms delivery. Submitting the same
topic twice sends twice.
*/
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level}))

	root := newRootCommand(logger, level, os.Stdin, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errNotSent) {
			logger.Error("running postbot", "err", err)
		}
		os.Exit(1)
	}
}
