package seo

import (
	"strings"

	"github.com/johns/seomark/internal/sanitize"
)

const maxDocChars = 12000

const systemPrompt = `You are an SEO expert. You write meta descriptions and keyword lists for web articles.

Respond with valid JSON only. No markdown, no explanation. Schema:
{
  "description": "Meta description of the article, 150 characters or less.",
  "keywords": "5-8 comma-separated keywords"
}

Rules:
- description: One or two sentences. Aim for at most 150 characters.
- keywords: 5 to 8 keywords, comma-separated, lowercase, most relevant first.`

func buildMessages(docText string) []chatMessage {
	return []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(docText)},
	}
}

func buildUserPrompt(docText string) string {
	var b strings.Builder
	b.WriteString("Generate a meta description and keywords for the following article.\n\n")
	b.WriteString("## Article\n")
	b.WriteString(truncate(sanitize.Redact(docText), maxDocChars))
	return b.String()
}

func truncate(text string, maxChars int) string {
	if len(text) <= maxChars {
		return text
	}

	// Try to break at a newline before the limit
	truncated := text[:maxChars]
	if idx := strings.LastIndex(truncated, "\n"); idx > maxChars/2 {
		truncated = truncated[:idx]
	}

	return truncated + "\n[...truncated]"
}
