package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/parser"
)

// HandleCommandInput contains the raw command line.
type HandleCommandInput struct {
	Line string
}

// HandleCommandOutput contains the response to one command line.
// Fields are ordered to minimize memory padding.
type HandleCommandOutput struct {
	UserErr error          // Set when the line was rejected; Message explains why
	Message string         // Text to show, without framing
	Command domain.Command // Empty when the keyword was not recognized
	Exit    bool           // True after BYE
}

// HandleCommand parses one command line and applies it to the task list.
// Failures caused by the input are recovered into a message; store
// failures are returned as errors and undo the change to the list.
type HandleCommand struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewHandleCommand creates a new HandleCommand use case.
func NewHandleCommand(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *HandleCommand {
	return &HandleCommand{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute runs a single command line.
func (uc *HandleCommand) Execute(ctx context.Context, in HandleCommandInput) (*HandleCommandOutput, error) {
	req, err := parser.Parse(in.Line)
	if err != nil {
		return uc.reject(domain.Command(parser.ExtractCommand(in.Line)), in.Line, err), nil
	}

	var before []domain.Task
	if req.Command.Mutates() {
		before = uc.list.Tasks()
	}

	msg, err := uc.apply(ctx, req)
	if err != nil {
		if domain.IsUserError(err) {
			return uc.reject(req.Command, in.Line, err), nil
		}
		// The store did not take the change, so the list must not keep it.
		if req.Command.Mutates() {
			uc.list.Reset(before)
			uc.logger.Warn("command", fmt.Sprintf("rolled back %s after store failure", req.Command))
		}
		return nil, fmt.Errorf("%s: %w", req.Command, err)
	}

	return &HandleCommandOutput{
		Message: msg,
		Command: req.Command,
		Exit:    req.Command == domain.CommandBye,
	}, nil
}

func (uc *HandleCommand) apply(ctx context.Context, req parser.Request) (string, error) {
	switch req.Command {
	case domain.CommandHi:
		return domain.GreetingMessage(), nil
	case domain.CommandBye:
		return domain.FarewellMessage(), nil
	case domain.CommandList:
		out, err := NewListTasks(uc.list).Execute(ctx)
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case domain.CommandFind:
		out, err := NewFindTasks(uc.list).Execute(ctx, FindTasksInput{Query: req.Query})
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case domain.CommandTodo, domain.CommandDeadline, domain.CommandEvent:
		out, err := NewAddTask(uc.list, uc.store, uc.logger).Execute(ctx, AddTaskInput{Task: req.Task})
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case domain.CommandMark, domain.CommandUnmark:
		out, err := NewMarkTask(uc.list, uc.store, uc.logger).Execute(ctx, MarkTaskInput{
			Index: req.Index,
			Done:  req.Command == domain.CommandMark,
		})
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case domain.CommandDelete:
		out, err := NewDeleteTask(uc.list, uc.store, uc.logger).Execute(ctx, DeleteTaskInput{Index: req.Index})
		if err != nil {
			return "", err
		}
		return out.Message, nil
	case domain.CommandDeleteAll:
		out, err := NewClearTasks(uc.list, uc.store, uc.logger).Execute(ctx)
		if err != nil {
			return "", err
		}
		return out.Message, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCommand, req.Command)
	}
}

func (uc *HandleCommand) reject(cmd domain.Command, line string, err error) *HandleCommandOutput {
	uc.logger.Debug("command", fmt.Sprintf("rejected %q: %v", line, err))
	if !cmd.IsValid() {
		cmd = ""
	}
	return &HandleCommandOutput{
		UserErr: err,
		Message: domain.ErrorMessage(err),
		Command: cmd,
	}
}
