package forms

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Its-donkey/convertx/internal/relay"
	"github.com/Its-donkey/convertx/logging"
)

var (
	// ErrInvalid is returned when the state fails validation; no relay call is made.
	ErrInvalid = errors.New("form is incomplete")
	// ErrInFlight is returned when a submission is already running for the state.
	ErrInFlight = errors.New("submission already in progress")
)

// Relay is the subset of the relay client the submitter needs.
type Relay interface {
	Submit(ctx context.Context, sub relay.Submission) (relay.Response, error)
}

// Submitter validates a form state, hands it to the relay and records the
// outcome on the state.
type Submitter struct {
	Relay  Relay
	Logger *logging.Logger
}

// Submit runs one submission attempt. On success the state is reset and its
// status set to success; on failure the values are kept and the status holds
// the visitor-facing message. There is no retry.
func (s Submitter) Submit(ctx context.Context, schema Schema, state *State) error {
	if state.Status.Kind == StatusSubmitting {
		return ErrInFlight
	}
	if !schema.Valid(*state) {
		return ErrInvalid
	}

	id := uuid.NewString()
	state.Status = Submitting()

	_, err := s.Relay.Submit(ctx, schema.Submission(*state))
	if err != nil {
		state.Status = Failed(relay.UserMessage(err))
		s.logFailure(ctx, schema.Key, id, err)
		return err
	}

	state.Reset()
	state.Status = Succeeded()
	s.Logger.FromContext(ctx).
		WithCategory("forms").
		WithFields(map[string]any{"form": schema.Key, "submission_id": id}).
		Info("lead form submitted")
	return nil
}

func (s Submitter) logFailure(ctx context.Context, form, id string, err error) {
	fields := map[string]any{"form": form, "submission_id": id, "error": err.Error()}
	var relayErr *relay.Error
	if errors.As(err, &relayErr) {
		fields["kind"] = relayErr.Kind.String()
		if relayErr.StatusCode != 0 {
			fields["status"] = relayErr.StatusCode
		}
	}
	s.Logger.FromContext(ctx).WithCategory("relay").WithFields(fields).Warn("lead form submission failed")
}
