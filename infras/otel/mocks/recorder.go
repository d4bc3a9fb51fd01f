package mocks

import (
	"context"
	"sync"

	"hotel/infras/otel"
)

// Recorder is an otel.Otel that keeps every error its scopes were asked to trace.
type Recorder struct {
	mu     sync.Mutex
	errors []error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, &recordingScope{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Errors returns the traced errors in order.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) record(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.errors = append(r.errors, err)
}

type recordingScope struct {
	scopeImpl
	recorder *Recorder
}

// TraceError implements otel.Scope.
func (s *recordingScope) TraceError(err error) {
	s.recorder.record(err)
}

// TraceIfError implements otel.Scope.
func (s *recordingScope) TraceIfError(err error) {
	if err != nil {
		s.recorder.record(err)
	}
}
