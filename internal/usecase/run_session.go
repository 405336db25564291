package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/runoshun/taskbot/internal/domain"
)

// RunSessionInput contains the parameters for an interactive session.
type RunSessionInput struct {
	Quiet bool // Skip the opening greeting
}

// RunSessionOutput summarizes a finished session.
type RunSessionOutput struct {
	Commands int  // Lines handled, including rejected ones
	Rejected int  // Lines rejected with a user error
	Bye      bool // True when the session ended with BYE
}

// RunSession reads command lines until end of input, BYE or cancellation,
// writing one framed response per line.
type RunSession struct {
	handler *HandleCommand
	source  domain.LineSource
	out     io.Writer
	logger  domain.Logger
}

// NewRunSession creates a new RunSession use case.
func NewRunSession(handler *HandleCommand, source domain.LineSource, out io.Writer, logger domain.Logger) *RunSession {
	return &RunSession{
		handler: handler,
		source:  source,
		out:     out,
		logger:  logger,
	}
}

// Execute runs the session. Blank lines are ignored.
// A cancelled context ends the session without error.
func (uc *RunSession) Execute(ctx context.Context, in RunSessionInput) (*RunSessionOutput, error) {
	out := &RunSessionOutput{}
	uc.logger.Info("session", "started")

	if !in.Quiet {
		if err := uc.write(domain.GreetingMessage()); err != nil {
			return nil, err
		}
	}

	for {
		if ctx.Err() != nil {
			uc.logger.Info("session", "cancelled")
			return out, nil
		}

		line, err := uc.source.Next()
		if errors.Is(err, io.EOF) {
			uc.logger.Info("session", fmt.Sprintf("end of input after %d commands", out.Commands))
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		res, err := uc.handler.Execute(ctx, HandleCommandInput{Line: line})
		if err != nil {
			return nil, err
		}
		out.Commands++
		if res.UserErr != nil {
			out.Rejected++
		}

		if err := uc.write(res.Message); err != nil {
			return nil, err
		}
		if res.Exit {
			out.Bye = true
			uc.logger.Info("session", "ended by BYE")
			return out, nil
		}
	}
}

func (uc *RunSession) write(msg string) error {
	if _, err := io.WriteString(uc.out, domain.Frame(msg)); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
