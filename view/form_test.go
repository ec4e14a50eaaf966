package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketgenius/controller"
	"marketgenius/generator"
)

func TestForm_Defaults(t *testing.T) {
	f := NewForm(newCtrl(t, ok("x")))
	assert.Equal(t, generator.DefaultRequest(), f.Draft())
	assert.True(t, f.ShowPlatform())
	assert.False(t, f.CanSubmit())
}

func TestForm_Set(t *testing.T) {
	f := NewForm(newCtrl(t, ok("x")))

	require.NoError(t, f.Set(FieldContentType, "blog"))
	require.NoError(t, f.Set(FieldPlatform, "LinkedIn"))
	require.NoError(t, f.Set(FieldTone, "witty"))
	require.NoError(t, f.Set(FieldTopic, "Aurora Coffee"))
	require.NoError(t, f.Set(FieldAudience, "Night owls"))
	require.NoError(t, f.Set(FieldDetails, "Single origin"))

	assert.Equal(t, generator.Request{
		ContentType: generator.BlogPost,
		Platform:    generator.LinkedIn,
		Topic:       "Aurora Coffee",
		Audience:    "Night owls",
		Tone:        generator.Witty,
		Details:     "Single origin",
	}, f.Draft())
	assert.False(t, f.ShowPlatform())
	assert.True(t, f.CanSubmit())
}

func TestForm_SetRejectsUnknown(t *testing.T) {
	f := NewForm(newCtrl(t, ok("x")))
	before := f.Draft()

	err := f.Set(FieldTone, "sarcastic")
	assert.True(t, generator.IsValidation(err))
	assert.Equal(t, before, f.Draft())

	err = f.Set(Field("color"), "red")
	assert.ErrorContains(t, err, "unknown form field")
}

func TestForm_ShowPlatform(t *testing.T) {
	f := NewForm(newCtrl(t, ok("x")))
	for _, ct := range generator.ContentTypes() {
		require.NoError(t, f.Set(FieldContentType, string(ct)))
		assert.Equal(t, ct == generator.SocialPost || ct == generator.AdCopy, f.ShowPlatform(), string(ct))
	}
}

func TestForm_SubmitEmptyTopic(t *testing.T) {
	ctrl := newCtrl(t, ok("x"))
	f := NewForm(ctrl)

	s, err := f.Submit(context.Background())
	assert.True(t, generator.IsValidation(err))
	assert.Equal(t, controller.Idle{}, s)
	assert.Equal(t, controller.Idle{}, ctrl.State())
}

func TestForm_SubmitKeepsDraftOnFailure(t *testing.T) {
	ctrl := newCtrl(t, genFunc(func(context.Context, string) (string, error) {
		return "", &generator.GenerationError{Message: generator.GenerationFailedMessage, Cause: errors.New("401")}
	}))
	f := NewForm(ctrl)
	require.NoError(t, f.Set(FieldTopic, "Aurora Coffee"))
	draft := f.Draft()

	s, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, controller.PhaseFailed, s.Phase())
	assert.Equal(t, draft, f.Draft())
	assert.True(t, f.CanSubmit())
}

func TestForm_DisabledWhileLoading(t *testing.T) {
	ctrl := &stateCtrl{state: controller.Loading{}}
	f := NewForm(ctrl)
	require.NoError(t, f.Set(FieldTopic, "Aurora Coffee"))

	assert.False(t, f.CanSubmit())
	_, err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitDisabled)

	snap := f.Snapshot()
	assert.True(t, snap.Loading)
	assert.False(t, snap.CanSubmit)
}

func TestForm_Snapshot(t *testing.T) {
	f := NewForm(newCtrl(t, ok("x")))
	require.NoError(t, f.Set(FieldTopic, "Aurora Coffee"))

	snap := f.Snapshot()
	assert.Equal(t, "Aurora Coffee", snap.Draft.Topic)
	assert.True(t, snap.ShowPlatform)
	assert.True(t, snap.CanSubmit)
	assert.Len(t, snap.Options.ContentTypes, 6)
	assert.Len(t, snap.Options.Platforms, 6)
	assert.Len(t, snap.Options.Tones, 7)
}
