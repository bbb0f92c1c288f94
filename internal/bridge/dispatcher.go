// Package bridge exposes the document commands to a hosting shell.
//
// The shell calls commands by name with a JSON object of arguments and
// receives either a body or an error string, never both.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"wryte/internal/commands"
	"wryte/internal/domain"
	"wryte/internal/errors"
)

// Command names understood by the dispatcher.
const (
	CmdSaveToFile   = "save_document_to_file"
	CmdLoadFromFile = "load_document_from_file"
	CmdSaveDefault  = "save_document"
	CmdLoadDefault  = "load_document"
	CmdGreet        = "greet"
)

// Request is a single command invocation from the shell.
type Request struct {
	ID   json.RawMessage `json:"id,omitempty"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response carries either Body or Error.
type Response struct {
	ID    json.RawMessage `json:"id,omitempty"`
	Body  any             `json:"body"`
	Error string          `json:"error,omitempty"`
}

// OK reports whether the response is a success.
func (r Response) OK() bool {
	return r.Error == ""
}

type handlerFunc func(ctx context.Context, args json.RawMessage) (string, error)

// Dispatcher routes shell commands to the document store.
type Dispatcher struct {
	store    domain.DocumentStore
	greet    *commands.GreetCommand
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(store domain.DocumentStore, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		store:  store,
		greet:  commands.NewGreetCommand(logger),
		logger: logger,
	}
	d.handlers = map[string]handlerFunc{
		CmdSaveToFile:   d.saveToFile,
		CmdLoadFromFile: d.loadFromFile,
		CmdSaveDefault:  d.saveDefault,
		CmdLoadDefault:  d.loadDefault,
		CmdGreet:        d.greetHandler,
	}
	return d
}

// Commands returns the supported command names in sorted order.
func (d *Dispatcher) Commands() []string {
	return slices.Sorted(maps.Keys(d.handlers))
}

// Invoke runs one command and converts its outcome into a Response.
func (d *Dispatcher) Invoke(ctx context.Context, req Request) Response {
	resp := Response{ID: req.ID}

	handler, ok := d.handlers[req.Cmd]
	if !ok {
		err := errors.NewValidationError("cmd", req.Cmd, "supported_values",
			fmt.Sprintf("unknown command %q", req.Cmd))
		d.logger.DebugContext(ctx, "Rejected shell command", "cmd", req.Cmd, "error", err)
		resp.Error = err.Error()
		return resp
	}

	body, err := handler(ctx, req.Args)
	if err != nil {
		d.logger.DebugContext(ctx, "Shell command failed", "cmd", req.Cmd, "error", err)
		resp.Error = err.Error()
		return resp
	}

	resp.Body = body
	return resp
}

type saveToFileArgs struct {
	Content  *string `json:"content"`
	FilePath *string `json:"filePath"`
}

type loadFromFileArgs struct {
	FilePath *string `json:"filePath"`
}

type saveDefaultArgs struct {
	Content *string `json:"content"`
}

type greetArgs struct {
	Name *string `json:"name"`
}

func (d *Dispatcher) saveToFile(ctx context.Context, raw json.RawMessage) (string, error) {
	var args saveToFileArgs
	if err := decodeArgs(CmdSaveToFile, raw, &args); err != nil {
		return "", err
	}
	if err := requireArg(CmdSaveToFile, "content", args.Content); err != nil {
		return "", err
	}
	if err := requireArg(CmdSaveToFile, "filePath", args.FilePath); err != nil {
		return "", err
	}
	return d.store.Save(ctx, *args.Content, *args.FilePath)
}

func (d *Dispatcher) loadFromFile(ctx context.Context, raw json.RawMessage) (string, error) {
	var args loadFromFileArgs
	if err := decodeArgs(CmdLoadFromFile, raw, &args); err != nil {
		return "", err
	}
	if err := requireArg(CmdLoadFromFile, "filePath", args.FilePath); err != nil {
		return "", err
	}
	return d.store.Load(ctx, *args.FilePath)
}

func (d *Dispatcher) saveDefault(ctx context.Context, raw json.RawMessage) (string, error) {
	var args saveDefaultArgs
	if err := decodeArgs(CmdSaveDefault, raw, &args); err != nil {
		return "", err
	}
	if err := requireArg(CmdSaveDefault, "content", args.Content); err != nil {
		return "", err
	}
	return d.store.SaveDefault(ctx, *args.Content)
}

func (d *Dispatcher) loadDefault(ctx context.Context, _ json.RawMessage) (string, error) {
	return d.store.LoadDefault(ctx)
}

func (d *Dispatcher) greetHandler(ctx context.Context, raw json.RawMessage) (string, error) {
	var args greetArgs
	if err := decodeArgs(CmdGreet, raw, &args); err != nil {
		return "", err
	}
	if err := requireArg(CmdGreet, "name", args.Name); err != nil {
		return "", err
	}
	return d.greet.Execute(ctx, commands.GreetRequest{Name: *args.Name}), nil
}

func decodeArgs(cmd string, raw json.RawMessage, dst any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.NewValidationError("args", cmd, "json_object",
			fmt.Sprintf("invalid args for command %s: %v", cmd, err))
	}
	return nil
}

func requireArg(cmd, key string, value *string) error {
	if value == nil {
		return errors.NewValidationError(key, "", "required",
			fmt.Sprintf("command %s missing required key %s", cmd, key))
	}
	return nil
}
