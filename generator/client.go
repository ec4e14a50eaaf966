package generator

import (
	"context"
	"errors"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "marketgenius/generator"

// Client sends one prompt per call to the provider and maps the outcome to
// the user-facing contract: text, the fallback sentence, or a GenerationError.
type Client struct {
	llm    LLMClient
	logger *log.Logger
}

func NewClient(llm LLMClient, logger *log.Logger) (*Client, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{llm: llm, logger: logger}, nil
}

// Generate makes a single best-effort request. There are no retries.
func (c *Client) Generate(ctx context.Context, promptText string) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "generator.Generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(attribute.Int("prompt.length", len(promptText)))

	raw, err := c.llm.Complete(ctx, NewPrompt(promptText))
	if err != nil {
		// provider detail stays in the logs and the span
		c.logger.Printf("[generator] provider error: %v", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider call failed")
		return "", &GenerationError{Message: GenerationFailedMessage, Cause: err}
	}

	content := PostProcess(raw)
	span.SetAttributes(attribute.Bool("response.fallback", content == FallbackContent))
	return content, nil
}
