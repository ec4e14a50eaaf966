package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketgenius/clipboard"
	"marketgenius/controller"
	"marketgenius/generator"
	"marketgenius/render"
	"marketgenius/view"
)

type genFunc func(ctx context.Context, prompt string) (string, error)

func (f genFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func newResultView(t *testing.T, gen genFunc, clip clipboard.Writer) (*view.Form, *view.Result) {
	t.Helper()
	ctrl, err := controller.New(gen)
	require.NoError(t, err)
	return view.NewForm(ctrl), view.NewResult(ctrl, clip, render.New())
}

func TestPrintPanel_Markdown(t *testing.T) {
	form, result := newResultView(t, func(context.Context, string) (string, error) {
		return "# Hello\n\nWorld", nil
	}, &clipboard.Memory{})
	require.NoError(t, form.Set(view.FieldTopic, "Coffee"))
	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printPanel(&out, result, false, false))
	assert.Contains(t, out.String(), "Social Media Post Generated")
	assert.Contains(t, out.String(), "# Hello\n\nWorld")
	assert.NotContains(t, out.String(), "Copied!")
}

func TestPrintPanel_HTMLAndCopy(t *testing.T) {
	clip := &clipboard.Memory{}
	form, result := newResultView(t, func(context.Context, string) (string, error) {
		return "# Hello", nil
	}, clip)
	require.NoError(t, form.Set(view.FieldTopic, "Coffee"))
	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printPanel(&out, result, true, true))
	assert.Contains(t, out.String(), "<h1>Hello</h1>")
	assert.Contains(t, out.String(), "Copied!")
	assert.Equal(t, "# Hello", clip.Text())
}

func TestPrintPanel_Failed(t *testing.T) {
	form, result := newResultView(t, func(context.Context, string) (string, error) {
		return "", errors.New("401 Unauthorized")
	}, &clipboard.Memory{})
	require.NoError(t, form.Set(view.FieldTopic, "Coffee"))
	_, _ = form.Submit(context.Background())

	err := printPanel(&bytes.Buffer{}, result, false, false)
	require.Error(t, err)
	assert.Equal(t, generator.GenerationFailedMessage, err.Error())
}

func TestPrintPanel_Idle(t *testing.T) {
	_, result := newResultView(t, func(context.Context, string) (string, error) {
		return "unused", nil
	}, &clipboard.Memory{})
	assert.Error(t, printPanel(&bytes.Buffer{}, result, false, false))
}

func TestGenerateCommand_MockProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"llm":{"provider":"mock"}}`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "generate", "--topic", "Summer Blend", "--type", "tagline"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "Tagline / Slogan Generated")
	assert.Contains(t, out.String(), "# Summer Blend")
	assert.NotContains(t, out.String(), "- Platform:")
}

func TestGenerateCommand_BadType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"llm":{"provider":"mock"}}`), 0o644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", path, "generate", "--topic", "x", "--type", "poem"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, generator.IsValidation(err))
}
