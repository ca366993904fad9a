package whatsapp

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// A CommandKeyPresser presses Enter by running a shell command, for example
// `xdotool key Return`. The key goes to whichever window has focus.
type CommandKeyPresser struct {
	logger  *slog.Logger
	command string
}

// NewCommandKeyPresser creates a CommandKeyPresser that runs command with sh.
func NewCommandKeyPresser(logger *slog.Logger, command string) *CommandKeyPresser {
	return &CommandKeyPresser{logger: logger, command: command}
}

// PressEnter runs the command. The combined stdout and stderr of a failing
// command is included in the error.
func (c *CommandKeyPresser) PressEnter(ctx context.Context) error {
	c.logger.Info("executing command", "command", c.command)
	cmd := exec.CommandContext(ctx, "sh", "-c", c.command)

	o, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("keypress command failed: %w: %s", err, strings.TrimSpace(string(o)))
	}
	return nil
}
