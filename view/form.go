// Package view holds the form and result view models the UI and CLI drive.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"marketgenius/controller"
	"marketgenius/generator"
)

// ErrSubmitDisabled is returned when the form is submitted while loading.
var ErrSubmitDisabled = errors.New("submit is disabled while content is generating")

// Controller is the part of *controller.Controller the views use.
type Controller interface {
	State() controller.State
	Submit(ctx context.Context, req generator.Request) (controller.State, error)
	Reset()
}

// Field names a form input.
type Field string

const (
	FieldContentType Field = "content_type"
	FieldPlatform    Field = "platform"
	FieldTopic       Field = "topic"
	FieldAudience    Field = "audience"
	FieldTone        Field = "tone"
	FieldDetails     Field = "details"
)

// Form keeps the draft request between edits and submissions.
type Form struct {
	ctrl Controller

	mu    sync.Mutex
	draft generator.Request
}

func NewForm(ctrl Controller) *Form {
	return &Form{ctrl: ctrl, draft: generator.DefaultRequest()}
}

func (f *Form) Draft() generator.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Set updates one field. Enum fields accept labels or slugs; an unknown enum
// value is a *generator.ValidationError and leaves the draft unchanged.
func (f *Form) Set(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldContentType:
		ct, ok := generator.ParseContentType(value)
		if !ok {
			return &generator.ValidationError{Field: string(field), Message: fmt.Sprintf("unknown value %q", value)}
		}
		f.draft.ContentType = ct
	case FieldPlatform:
		p, ok := generator.ParsePlatform(value)
		if !ok {
			return &generator.ValidationError{Field: string(field), Message: fmt.Sprintf("unknown value %q", value)}
		}
		f.draft.Platform = p
	case FieldTone:
		t, ok := generator.ParseTone(value)
		if !ok {
			return &generator.ValidationError{Field: string(field), Message: fmt.Sprintf("unknown value %q", value)}
		}
		f.draft.Tone = t
	case FieldTopic:
		f.draft.Topic = value
	case FieldAudience:
		f.draft.Audience = value
	case FieldDetails:
		f.draft.Details = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// ShowPlatform reports whether the platform selector is shown.
func (f *Form) ShowPlatform() bool {
	return f.Draft().ContentType.UsesPlatform()
}

// CanSubmit is false while loading or while the topic is empty.
func (f *Form) CanSubmit() bool {
	if f.ctrl.State().Phase() == controller.PhaseLoading {
		return false
	}
	return f.Draft().Topic != ""
}

// Submit hands the draft to the controller. The draft is kept whatever the outcome.
func (f *Form) Submit(ctx context.Context) (controller.State, error) {
	if f.ctrl.State().Phase() == controller.PhaseLoading {
		return f.ctrl.State(), ErrSubmitDisabled
	}
	return f.ctrl.Submit(ctx, f.Draft())
}

// Options are the choices offered by the selectors.
type Options struct {
	ContentTypes []generator.ContentType `json:"content_types"`
	Platforms    []generator.Platform    `json:"platforms"`
	Tones        []generator.Tone        `json:"tones"`
}

// FormSnapshot is what the UI needs to draw the form.
type FormSnapshot struct {
	Draft        generator.Request `json:"draft"`
	ShowPlatform bool              `json:"show_platform"`
	CanSubmit    bool              `json:"can_submit"`
	Loading      bool              `json:"loading"`
	Options      Options           `json:"options"`
}

func (f *Form) Snapshot() FormSnapshot {
	draft := f.Draft()
	loading := f.ctrl.State().Phase() == controller.PhaseLoading
	return FormSnapshot{
		Draft:        draft,
		ShowPlatform: draft.ContentType.UsesPlatform(),
		CanSubmit:    !loading && draft.Topic != "",
		Loading:      loading,
		Options: Options{
			ContentTypes: generator.ContentTypes(),
			Platforms:    generator.Platforms(),
			Tones:        generator.Tones(),
		},
	}
}
