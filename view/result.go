package view

import (
	"errors"
	"fmt"
	"html"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"marketgenius/clipboard"
	"marketgenius/controller"
	"marketgenius/generator"
)

// CopyConfirmation is how long the "Copied!" state lasts.
const CopyConfirmation = 2 * time.Second

var ErrNothingToCopy = errors.New("no result to copy")

// Renderer converts markdown to HTML. *render.Renderer satisfies it.
type Renderer interface {
	HTML(md string) (string, error)
}

// PanelKind selects how the result area is drawn.
type PanelKind string

const (
	PanelEmpty   PanelKind = "empty"
	PanelLoading PanelKind = "loading"
	PanelReady   PanelKind = "ready"
	PanelError   PanelKind = "error"
)

// Panel is the rendered result area for one controller state.
type Panel struct {
	Kind     PanelKind `json:"kind"`
	Heading  string    `json:"heading"`
	Message  string    `json:"message,omitempty"`
	Headline string    `json:"headline,omitempty"`
	Time     string    `json:"time,omitempty"`
	Markdown string    `json:"markdown,omitempty"`
	HTML     string    `json:"html,omitempty"`
	ResultID string    `json:"result_id,omitempty"`
	Copied   bool      `json:"copied"`
	Actions  []string  `json:"actions,omitempty"`
}

const (
	emptyHeading   = "Ready to Create?"
	emptyMessage   = "Fill out the form to generate professional marketing copy in seconds."
	loadingHeading = "Generating Magic..."
	errorHeading   = "Something went wrong"
)

// Result renders the controller state and handles copy and reset.
type Result struct {
	ctrl     Controller
	clip     clipboard.Writer
	renderer Renderer
	now      func() time.Time
	logger   *log.Logger

	mu          sync.Mutex
	copiedID    uuid.UUID
	copiedUntil time.Time
}

type ResultOption func(*Result)

func WithClock(now func() time.Time) ResultOption {
	return func(r *Result) {
		if now != nil {
			r.now = now
		}
	}
}

func WithLogger(l *log.Logger) ResultOption {
	return func(r *Result) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewResult(ctrl Controller, clip clipboard.Writer, renderer Renderer, opts ...ResultOption) *Result {
	r := &Result{
		ctrl:     ctrl,
		clip:     clip,
		renderer: renderer,
		now:      time.Now,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws the current state.
func (r *Result) Render() Panel {
	return r.panel(r.ctrl.State())
}

func (r *Result) panel(s controller.State) Panel {
	switch st := s.(type) {
	case controller.Loading:
		return Panel{Kind: PanelLoading, Heading: loadingHeading}
	case controller.Ready:
		return r.readyPanel(st.Result)
	case controller.Failed:
		return Panel{
			Kind:    PanelError,
			Heading: errorHeading,
			Message: st.Message,
			Actions: []string{"retry"},
		}
	default:
		return Panel{Kind: PanelEmpty, Heading: emptyHeading, Message: emptyMessage}
	}
}

func (r *Result) readyPanel(res generator.Result) Panel {
	body, err := r.renderer.HTML(res.Content)
	if err != nil {
		r.logger.Printf("[view] %v", err)
		body = "<pre>" + html.EscapeString(res.Content) + "</pre>"
	}
	return Panel{
		Kind:     PanelReady,
		Heading:  fmt.Sprintf("%s Generated", res.ContentType),
		Headline: generator.Headline(res.Content),
		Time:     res.CreatedAt.Format("15:04"),
		Markdown: res.Content,
		HTML:     body,
		ResultID: res.ID.String(),
		Copied:   r.copied(res.ID),
		Actions:  []string{"copy", "reset"},
	}
}

func (r *Result) copied(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copiedID == id && r.now().Before(r.copiedUntil)
}

// Copy writes the raw markdown of the ready result to the clipboard and
// shows the confirmation for CopyConfirmation.
func (r *Result) Copy() (Panel, error) {
	ready, ok := r.ctrl.State().(controller.Ready)
	if !ok {
		return r.Render(), ErrNothingToCopy
	}
	if err := r.clip.Write(ready.Result.Content); err != nil {
		return r.panel(ready), fmt.Errorf("copy result: %w", err)
	}

	r.mu.Lock()
	r.copiedID = ready.Result.ID
	r.copiedUntil = r.now().Add(CopyConfirmation)
	r.mu.Unlock()
	return r.panel(ready), nil
}

// Reset clears the result through the controller.
func (r *Result) Reset() Panel {
	r.ctrl.Reset()
	r.mu.Lock()
	r.copiedID = uuid.Nil
	r.copiedUntil = time.Time{}
	r.mu.Unlock()
	return r.Render()
}
