// Package controller owns the generation state machine.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"marketgenius/generator"
)

// Generator turns a prompt into text. *generator.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Controller sequences submit -> prompt -> generate -> state. When submissions
// overlap the latest one wins: every submit and reset takes a new sequence
// number and a response whose number is no longer current is dropped.
type Controller struct {
	gen     Generator
	logger  *log.Logger
	verbose bool
	now     func() time.Time

	mu    sync.Mutex
	seq   uint64
	state State
}

type Option func(*Controller)

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithVerbose(v bool) Option {
	return func(c *Controller) { c.verbose = v }
}

// WithClock replaces time.Now for result timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func New(gen Generator, opts ...Option) (*Controller, error) {
	if gen == nil {
		return nil, errors.New("generator is required")
	}
	c := &Controller{
		gen:    gen,
		logger: log.Default(),
		now:    time.Now,
		state:  Idle{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) infof(format string, args ...interface{}) {
	if !c.verbose {
		return
	}
	c.logger.Printf("[INFO] [controller] "+format, args...)
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Seq returns the sequence number of the latest submit or reset.
func (c *Controller) Seq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Submit validates req, moves to Loading and blocks until the provider
// answers. It returns the state after the answer was applied, or the current
// state if a newer submit or reset superseded this one. A *ValidationError
// leaves the state untouched. Provider failures are not returned as errors;
// they end in Failed.
func (c *Controller) Submit(ctx context.Context, req generator.Request) (State, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = Loading{Request: req}
	c.mu.Unlock()
	c.infof("submit seq=%d type=%q topic=%q", seq, req.ContentType, req.Topic)

	text, err := c.generate(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.infof("discarding stale response seq=%d latest=%d", seq, c.seq)
		return c.state, nil
	}
	if err != nil {
		c.logger.Printf("[controller] generation failed seq=%d: %v", seq, err)
		c.state = Failed{Message: generator.UserMessage(err)}
		return c.state, nil
	}
	c.state = Ready{Result: generator.NewResult(text, req.ContentType, c.now())}
	c.infof("ready seq=%d bytes=%d", seq, len(text))
	return c.state, nil
}

// generate runs the builder and the client; a panic becomes an error so the
// machine never stays in Loading.
func (c *Controller) generate(ctx context.Context, req generator.Request) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generator panic: %v", r)
		}
	}()
	return c.gen.Generate(ctx, generator.BuildPrompt(req))
}

// Reset returns to Idle from any state. An in-flight request is not aborted;
// its response is discarded when it arrives.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = Idle{}
	c.infof("reset seq=%d", c.seq)
}
