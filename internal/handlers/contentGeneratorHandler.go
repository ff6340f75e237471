package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"mapleads/leadgen-worker/internal/dto"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

const (
	// DefaultGenerationTimeout is the timeout for generating one content draft
	DefaultGenerationTimeout = 45 * time.Second
	// contentAppName is the ADK app name for content generation sessions
	contentAppName = "content_generator"
)

// ContentGeneratorHandler generates marketing content drafts for leads using
// an LLM agent
type ContentGeneratorHandler struct {
	timeout        time.Duration
	agent          agent.Agent
	runner         *runner.Runner
	sessionService session.Service
}

// NewContentGeneratorHandler creates a new ContentGeneratorHandler backed by
// the given model (Gemini, Vertex AI or OpenRouter, see model/provider)
func NewContentGeneratorHandler(llm model.LLM) (*ContentGeneratorHandler, error) {
	if llm == nil {
		return nil, fmt.Errorf("LLM model is required")
	}

	contentAgent, err := llmagent.New(llmagent.Config{
		Name:        "content_generator_agent",
		Model:       llm,
		Description: "An AI agent that writes French-language prospecting posts for local businesses.",
		Instruction: buildContentInstruction(),
	})
	if err != nil {
		log.Printf("[ContentGeneratorHandler] Failed to create agent: %v", err)
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	sessionService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        contentAppName,
		Agent:          contentAgent,
		SessionService: sessionService,
	})
	if err != nil {
		log.Printf("[ContentGeneratorHandler] Failed to create runner: %v", err)
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	log.Printf("[ContentGeneratorHandler] Successfully initialized")

	return &ContentGeneratorHandler{
		timeout:        DefaultGenerationTimeout,
		agent:          contentAgent,
		runner:         r,
		sessionService: sessionService,
	}, nil
}

// buildContentInstruction creates the instruction prompt for the content agent
func buildContentInstruction() string {
	return `You are a marketing copywriter for a Quebec-based agency. You write short,
engaging French-language LinkedIn posts that a marketing agency publishes to
reach out to a local business prospect.

Given the business details (and optionally the content of its website), write
one post that:
- Opens with a hook mentioning the business sector or city
- Highlights one concrete strength of the business (rating, reviews, services)
- Ends with a soft call to action
- Stays under 120 words, professional but warm tone, French (Québec)

IMPORTANT RULES:
- Use ONLY facts present in the provided details
- Do NOT invent statistics, names or offers
- No emojis in the title

OUTPUT FORMAT:
Respond with ONLY a valid JSON object (no markdown, no code blocks):
{
  "title": "Hook line of the post",
  "body": "Full post text",
  "hashtags": ["marketingquebec", "pme"]
}`
}

// GenerateForLead generates a content draft for a single lead. Failures are
// reported in the returned draft, never raised.
func (h *ContentGeneratorHandler) GenerateForLead(ctx context.Context, lead *dto.Lead, websiteContext string) *dto.GeneratedContent {
	draft := &dto.GeneratedContent{}

	prompt := h.buildPrompt(lead, websiteContext)

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	userMessage := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	userID := "system"
	createResp, err := h.sessionService.Create(ctx, &session.CreateRequest{
		AppName: contentAppName,
		UserID:  userID,
	})
	if err != nil {
		log.Printf("[ContentGeneratorHandler] Failed to create session for lead %d: %v", lead.ID, err)
		draft.Error = fmt.Sprintf("failed to create session: %v", err)
		return draft
	}
	sessionID := createResp.Session.ID()
	defer func() {
		_ = h.sessionService.Delete(ctx, &session.DeleteRequest{
			AppName:   contentAppName,
			UserID:    userID,
			SessionID: sessionID,
		})
	}()

	log.Printf("[ContentGeneratorHandler] Generating content for lead %d (session: %s)", lead.ID, sessionID)

	var responseText string
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}
	for event, err := range h.runner.Run(ctx, userID, sessionID, userMessage, runConfig) {
		if err != nil {
			log.Printf("[ContentGeneratorHandler] Error during generation for lead %d: %v", lead.ID, err)
			draft.Error = fmt.Sprintf("generation failed: %v", err)
			return draft
		}
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" {
					responseText += part.Text
				}
			}
		}
	}

	parseContentResponse(responseText, draft)
	if draft.Title == "" && draft.Body == "" {
		draft.Error = "no usable content in model response"
		return draft
	}

	draft.Success = true
	return draft
}

// buildPrompt assembles the lead details (and optional website context) into
// the generation prompt
func (h *ContentGeneratorHandler) buildPrompt(lead *dto.Lead, websiteContext string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a prospecting post for this business.\n\n")
	fmt.Fprintf(&b, "Business name: %s\n", lead.BusinessName)
	if lead.BusinessType != "" {
		fmt.Fprintf(&b, "Sector: %s\n", lead.BusinessType)
	}
	if lead.City != "" {
		fmt.Fprintf(&b, "City: %s\n", lead.City)
	}
	if lead.GoogleRating != "" {
		fmt.Fprintf(&b, "Google rating: %s (%d reviews)\n", lead.GoogleRating, lead.GoogleReviews)
	}
	if lead.Website != "" {
		fmt.Fprintf(&b, "Website: %s\n", lead.Website)
	}

	if websiteContext != "" {
		fmt.Fprintf(&b, "\n---\nWEBSITE CONTENT:\n%s\n---\n", websiteContext)
	}

	b.WriteString("\nRespond with ONLY the JSON object.")
	return b.String()
}

// parseContentResponse extracts the JSON draft from the model response,
// tolerating markdown code fences around it
func parseContentResponse(response string, draft *dto.GeneratedContent) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end <= start {
		log.Printf("[ContentGeneratorHandler] No valid JSON found in response")
		return
	}

	var parsed struct {
		Title    string   `json:"title"`
		Body     string   `json:"body"`
		Hashtags []string `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(response[start:end+1]), &parsed); err != nil {
		log.Printf("[ContentGeneratorHandler] Failed to parse model response: %v", err)
		return
	}

	draft.Title = parsed.Title
	draft.Body = parsed.Body
	draft.Hashtags = parsed.Hashtags
}
