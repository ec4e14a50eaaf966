package generator

import (
	"fmt"
	"strings"
)

// SystemInstruction is sent alongside every prompt.
const SystemInstruction = "You are an expert marketing assistant. You prioritize clarity, engagement, and conversion optimization in all generated text."

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// instructions returns the content-type specific directive.
func instructions(req Request) string {
	switch req.ContentType {
	case SocialPost:
		return fmt.Sprintf("Create a viral-worthy %s post. Include relevant emojis and 3-5 high-traffic hashtags. Keep formatting native to %s.", req.Platform, req.Platform)
	case BlogPost:
		return "Write a comprehensive blog post outline followed by a drafted introduction and main key points. Use clear H2 and H3 headers."
	case EmailCopy:
		return "Write a compelling email subject line (give 3 variations) and a persuasive body text designed for high click-through rates."
	case AdCopy:
		target := string(req.Platform)
		if req.Platform == General {
			target = "Digital Ads"
		}
		return fmt.Sprintf("Create 3 distinct ad variations for %s. Include a strong headline, main copy, and a clear Call to Action (CTA).", target)
	case ProductDesc:
		return "Write a persuasive product description that highlights features and benefits. Use bullet points for key specs."
	case Tagline:
		return "Generate 10 catchy, memorable tagline or slogan variations."
	default:
		// unreachable once the request passed Validate
		return "Generate high-quality marketing copy."
	}
}

// BuildPrompt renders the user prompt for req. It does no validation; empty
// optional fields are written as empty values.
func BuildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("Role: You are a world-class Marketing Copywriter and Strategist.\n\n")
	sb.WriteString(fmt.Sprintf("Task: Generate %s for the following request.\n\n", req.ContentType))

	sb.WriteString("Context:\n")
	writeContext(&sb, "Topic/Product", req.Topic)
	writeContext(&sb, "Target Audience", req.Audience)
	writeContext(&sb, "Tone", string(req.Tone))
	writeContext(&sb, "Key Details/Features", req.Details)
	if req.ContentType.UsesPlatform() {
		writeContext(&sb, "Platform", string(req.Platform))
	}
	sb.WriteString("\n")

	sb.WriteString("Instructions:\n")
	sb.WriteString(instructions(req))
	sb.WriteString("\n\n")

	sb.WriteString("Format:\n")
	sb.WriteString("Return the response in clean Markdown.\n")
	return sb.String()
}

func writeContext(sb *strings.Builder, label, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		sb.WriteString(fmt.Sprintf("- %s:\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: %s\n", label, value))
}

// NewPrompt pairs the user prompt with the fixed system instruction.
func NewPrompt(user string) Prompt {
	return Prompt{System: SystemInstruction, User: user}
}
