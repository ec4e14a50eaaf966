package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"marketgenius/clipboard"
	"marketgenius/view"
)

var genOpts struct {
	contentType string
	platform    string
	topic       string
	audience    string
	tone        string
	details     string
	html        bool
	copy        bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate copy once and print it",
	Long:  "Fill the form from flags, submit it and print the generated markdown (or HTML with --html).",
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOpts.contentType, "type", "social", "content type: social, product, blog, email, ad, tagline")
	f.StringVar(&genOpts.platform, "platform", "instagram", "platform for social posts and ads: instagram, linkedin, x, facebook, google-ads, general")
	f.StringVar(&genOpts.topic, "topic", "", "topic or product name (required)")
	f.StringVar(&genOpts.audience, "audience", "", "target audience")
	f.StringVar(&genOpts.tone, "tone", "professional", "tone of voice")
	f.StringVar(&genOpts.details, "details", "", "key details or points to include")
	f.BoolVar(&genOpts.html, "html", false, "print rendered HTML instead of markdown")
	f.BoolVar(&genOpts.copy, "copy", false, "copy the result to the clipboard")
	_ = generateCmd.MarkFlagRequired("topic")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(clipboard.NewSystem())
	if err != nil {
		return err
	}
	fields := []struct {
		field view.Field
		value string
	}{
		{view.FieldContentType, genOpts.contentType},
		{view.FieldPlatform, genOpts.platform},
		{view.FieldTone, genOpts.tone},
		{view.FieldTopic, genOpts.topic},
		{view.FieldAudience, genOpts.audience},
		{view.FieldDetails, genOpts.details},
	}
	for _, f := range fields {
		if err := a.form.Set(f.field, f.value); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if t := a.cfg.RequestTimeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}
	if _, err := a.form.Submit(ctx); err != nil {
		return err
	}
	return printPanel(cmd.OutOrStdout(), a.result, genOpts.html, genOpts.copy)
}

func printPanel(w io.Writer, result *view.Result, asHTML, copyOut bool) error {
	p := result.Render()
	if p.Kind == view.PanelError {
		return errors.New(p.Message)
	}
	if p.Kind != view.PanelReady {
		return fmt.Errorf("unexpected result state %q", p.Kind)
	}

	body := p.Markdown
	if asHTML {
		body = p.HTML
	}
	fmt.Fprintf(w, "%s (%s)\n\n%s\n", p.Heading, p.Time, body)

	if copyOut {
		if _, err := result.Copy(); err != nil {
			return err
		}
		fmt.Fprintln(w, "\nCopied!")
	}
	return nil
}
