// Package claude rewrites user prompts with the Anthropic API. The model
// is asked to analyze the prompt and answer with the rewritten version
// inside <improved_prompt> tags.
package claude

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/promptmixer/promptmixer-backend/internal/config"
	"github.com/promptmixer/promptmixer-backend/internal/domain"
)

const systemPrompt = "You are an expert prompt engineer who helps users improve their prompts."

const metaPromptTemplate = `
You are an expert prompt engineer tasked with improving a user-provided prompt to elicit the best possible response from an AI model. Your goal is to analyze the given prompt thoroughly and create a significantly enhanced version that addresses any weaknesses and optimizes its effectiveness.

Here is the original prompt you need to improve:

<original_prompt>
{{prompt}}
</original_prompt>

Please follow these steps to analyze and improve the prompt:

1. Evaluate the original prompt:
   - Summarize the prompt's main objective in one sentence
   - List the key components of the prompt and their purposes
   - Identify any ambiguities or unclear instructions
   - Assess its structure and organization
   - Note potential weaknesses or areas for improvement

2. Brainstorm improvements in the following areas:
   - Clarity: List at least 3 ways to make the prompt easier to understand
   - Specificity: Suggest at least 3 details to guide the AI's response more precisely
   - Structure: Propose at least 2 ways to organize the prompt more logically
   - Grammar and phrasing: Note any errors and at least 2 ideas to improve readability
   - Completeness: Identify at least 2 pieces of missing information or context that would help the AI provide a better response

3. Select the most effective improvements from your brainstorming

4. Rewrite the improved prompt, ensuring it is significantly enhanced compared to the original

5. Review the improved prompt against the original objectives and make final adjustments if necessary

6. Compare the original and improved prompts, noting at least 3 key differences and enhancements

Wrap your thought process for steps 1, 2, 3, and 6 in <prompt_evaluation> tags. Then, present the improved prompt within <improved_prompt> tags. Finally, include your review and any final adjustments in <final_review> tags.

Your output should follow this structure:

<prompt_evaluation>
[Your detailed evaluation of the original prompt, brainstorming of improvements, selection of the most effective changes, and comparison of original and improved prompts]
</prompt_evaluation>

<improved_prompt>
[Your rewritten, significantly improved version of the prompt]
</improved_prompt>

<final_review>
[Your review of the improved prompt and any final adjustments]
</final_review>

Remember, the goal is to create a substantially better version of the original prompt, not just minor improvements. Focus on enhancing its effectiveness, clarity, and ability to elicit high-quality responses from an AI model.
`

var improvedPattern = regexp.MustCompile(`(?s)<improved_prompt>(.*?)</improved_prompt>`)

// Client calls the Anthropic Messages API to improve prompts.
type Client struct {
	client      anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
	log         *slog.Logger
}

// New creates a Claude client from the application config.
func New(cfg config.ClaudeConfig, logger *slog.Logger) *Client {
	return &Client{
		client:      anthropic.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:       anthropic.Model(cfg.Model),
		maxTokens:   int64(cfg.MaxTokens),
		temperature: cfg.Temperature,
		log:         logger.With("adapter", "claude"),
	}
}

// ImprovePrompt rewrites the given prompt. API failures surface as
// domain.ErrUpstream so callers can map them to a gateway error.
func (c *Client) ImprovePrompt(ctx context.Context, originalPrompt string) (string, error) {
	metaPrompt := strings.ReplaceAll(metaPromptTemplate, "{{prompt}}", originalPrompt)

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(metaPrompt)),
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "claude api call failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: claude: %s", domain.ErrUpstream, err)
	}

	if len(msg.Content) == 0 {
		c.log.ErrorContext(ctx, "claude returned empty content")
		return "", fmt.Errorf("%w: claude: empty response", domain.ErrUpstream)
	}

	return c.extractImproved(ctx, msg.Content[0].Text), nil
}

// extractImproved pulls the rewritten prompt out of the tagged response.
// When the model skips the tags, the full reply is used as-is.
func (c *Client) extractImproved(ctx context.Context, responseText string) string {
	if m := improvedPattern.FindStringSubmatch(responseText); m != nil {
		return strings.TrimSpace(m[1])
	}
	c.log.WarnContext(ctx, "could not extract improved prompt from response")
	return responseText
}
