package view

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketgenius/clipboard"
	"marketgenius/controller"
	"marketgenius/generator"
)

type genFunc func(ctx context.Context, prompt string) (string, error)

func (f genFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var createdAt = time.Date(2026, 10, 16, 9, 7, 0, 0, time.UTC)

func newCtrl(t *testing.T, gen controller.Generator) *controller.Controller {
	t.Helper()
	c, err := controller.New(gen,
		controller.WithLogger(quiet()),
		controller.WithClock(func() time.Time { return createdAt }),
	)
	require.NoError(t, err)
	return c
}

func quiet() *log.Logger { return log.New(io.Discard, "", 0) }

func ok(text string) controller.Generator {
	return genFunc(func(context.Context, string) (string, error) { return text, nil })
}

// fakeClock is advanced by tests.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// stateCtrl reports a fixed state.
type stateCtrl struct {
	state  controller.State
	resets int
}

func (s *stateCtrl) State() controller.State { return s.state }
func (s *stateCtrl) Submit(context.Context, generator.Request) (controller.State, error) {
	return s.state, nil
}
func (s *stateCtrl) Reset() { s.resets++; s.state = controller.Idle{} }

type failingClipboard struct{}

func (failingClipboard) Write(string) error { return clipboard.ErrUnavailable }
