package agent

import (
	"context"
	"fmt"
	"strings"
)

// StreamEvent is one item of a streaming turn. Partial events carry a model
// fragment as it arrives. The final event carries the turn's Result and, when
// dispatch produced a follow-up (tool output or approval prompt), that text.
type StreamEvent struct {
	Text    string
	Partial bool
	Result  *Result
}

// TurnStream runs one conversational turn incrementally. Model fragments are
// forwarded on the event channel as they arrive; the action is dispatched
// only after the full reply is known, so abandoning the stream mid-flight
// leaves no tool executed and no assistant message committed to history.
//
// Exactly one of the channels concludes the turn: the event channel's last
// item carries a non-nil Result, or the error channel delivers the failure.
// Abandoning the stream must go through cancelling ctx; walking away from
// the event channel without cancelling leaves the producer goroutine
// blocked on its next send.
func (e *Engine) TurnStream(ctx context.Context, userText string) (<-chan StreamEvent, <-chan error) {
	events := make(chan StreamEvent)
	errCh := make(chan error, 1)

	e.prologue(userText)
	frags, provErr := e.provider.Stream(ctx, e.history, e.registry.Definitions())

	go func() {
		defer close(events)
		defer close(errCh)

		var full strings.Builder
		for frag := range frags {
			full.WriteString(frag)
			select {
			case events <- StreamEvent{Text: frag, Partial: true}:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if err := <-provErr; err != nil {
			errCh <- fmt.Errorf("provider stream: %w", err)
			return
		}
		if err := ctx.Err(); err != nil {
			errCh <- err
			return
		}

		raw := full.String()
		res := e.dispatch(ctx, userText, raw)

		final := StreamEvent{Result: &res}
		if res.Output != raw {
			final.Text = res.Output
		}
		select {
		case events <- final:
		case <-ctx.Done():
			errCh <- ctx.Err()
		}
	}()

	return events, errCh
}
