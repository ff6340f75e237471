// Package provider provides a unified interface for creating LLM models
// supporting Google Gemini, Vertex AI and OpenRouter backends.
package provider

import (
	"context"
	"fmt"
	"log"

	"mapleads/leadgen-worker/internal/model/openrouter"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// Backend represents the LLM backend to use
type Backend string

const (
	// BackendGemini uses Google AI Studio (Gemini API)
	BackendGemini Backend = "gemini"
	// BackendVertexAI uses Google Cloud Vertex AI
	BackendVertexAI Backend = "vertexai"
	// BackendOpenRouter uses OpenRouter API
	BackendOpenRouter Backend = "openrouter"
)

// Config holds configuration for creating an LLM model. All values are
// explicit; nothing is read from the environment here.
type Config struct {
	// Backend specifies which LLM backend to use
	Backend Backend

	// Model name. Empty selects the backend default.
	// For Gemini: "gemini-2.5-flash", "gemini-2.5-pro", etc.
	// For OpenRouter: "google/gemini-2.5-flash", "anthropic/claude-sonnet-4.5", etc.
	Model string

	// Google AI Studio configuration
	GoogleAPIKey string

	// Vertex AI configuration
	GCPProject  string
	GCPLocation string

	// OpenRouter configuration
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
}

// NewModel creates a new LLM model based on the configuration
func NewModel(ctx context.Context, cfg Config) (model.LLM, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Backend)
	}

	switch cfg.Backend {
	case BackendGemini:
		return newGeminiModel(ctx, cfg)
	case BackendVertexAI:
		return newVertexAIModel(ctx, cfg)
	case BackendOpenRouter:
		return newOpenRouterModel(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported backend: %s", cfg.Backend)
	}
}

// newGeminiModel creates a Gemini model using Google AI Studio
func newGeminiModel(ctx context.Context, cfg Config) (model.LLM, error) {
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("Google API key is required for Gemini backend")
	}

	log.Printf("[Provider] Creating Gemini model: %s (Google AI Studio)", cfg.Model)

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GoogleAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	return gemini.NewModel(ctx, cfg.Model, clientConfig)
}

// newVertexAIModel creates a Gemini model using Vertex AI
func newVertexAIModel(ctx context.Context, cfg Config) (model.LLM, error) {
	if cfg.GCPProject == "" {
		return nil, fmt.Errorf("GCP Project is required for Vertex AI backend")
	}
	if cfg.GCPLocation == "" {
		return nil, fmt.Errorf("GCP Location is required for Vertex AI backend")
	}

	log.Printf("[Provider] Creating Gemini model: %s (Vertex AI, project: %s, location: %s)",
		cfg.Model, cfg.GCPProject, cfg.GCPLocation)

	clientConfig := &genai.ClientConfig{
		Project:  cfg.GCPProject,
		Location: cfg.GCPLocation,
		Backend:  genai.BackendVertexAI,
	}

	return gemini.NewModel(ctx, cfg.Model, clientConfig)
}

// newOpenRouterModel creates an OpenRouter model
func newOpenRouterModel(ctx context.Context, cfg Config) (model.LLM, error) {
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("OpenRouter API key is required for OpenRouter backend")
	}

	log.Printf("[Provider] Creating OpenRouter model: %s", cfg.Model)

	orConfig := &openrouter.Config{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
	}

	return openrouter.NewModel(ctx, cfg.Model, orConfig)
}

// DefaultModel returns the default model for each backend
func DefaultModel(backend Backend) string {
	switch backend {
	case BackendOpenRouter:
		return "google/gemini-2.5-flash" // Fast and cost-effective
	default:
		return "gemini-2.5-flash"
	}
}
