package generator

import (
	"context"
	"strings"
)

// MockLLM is an offline stand-in for local debugging; it never calls a provider.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	topic := "your product"
	for _, line := range strings.Split(prompt.User, "\n") {
		if v, ok := strings.CutPrefix(line, "- Topic/Product:"); ok && strings.TrimSpace(v) != "" {
			topic = strings.TrimSpace(v)
			break
		}
	}
	var sb strings.Builder
	sb.WriteString("# ")
	sb.WriteString(topic)
	sb.WriteString("\n\n")
	sb.WriteString("Sample copy generated locally without calling a provider.\n\n")
	sb.WriteString("## Prompt\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
