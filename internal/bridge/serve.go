package bridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type readResult struct {
	line []byte
	err  error
}

// Serve reads newline-delimited JSON requests from r and writes one JSON
// response line per request to w. Requests are handled one at a time in
// arrival order. Serve returns nil at EOF and ctx.Err() as soon as the
// context is cancelled, even while waiting for input.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	// A reader blocked on r outlives Serve until r yields; readCtx lets it
	// drop its result instead of blocking forever on the send.
	readCtx, stop := context.WithCancel(ctx)
	defer stop()

	lines := make(chan readResult)
	go readLines(readCtx, r, lines)

	d.logger.DebugContext(ctx, "Bridge serving", "commands", d.Commands())

	for {
		var res readResult
		select {
		case <-ctx.Done():
			d.logger.DebugContext(ctx, "Bridge cancelled")
			return ctx.Err()
		case res = <-lines:
		}

		if len(bytes.TrimSpace(res.line)) > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			resp := d.handleLine(ctx, res.line)
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}

		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				d.logger.DebugContext(ctx, "Bridge input closed")
				return nil
			}
			return fmt.Errorf("failed to read request: %w", res.err)
		}
	}
}

func readLines(ctx context.Context, r io.Reader, out chan<- readResult) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadBytes('\n')
		select {
		case out <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

func (d *Dispatcher) handleLine(ctx context.Context, line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{Error: fmt.Sprintf("malformed request: %v", err)}
	}
	return d.Invoke(ctx, req)
}
