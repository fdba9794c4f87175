package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trivium-hq/vesta/pkg/providers"
)

// Provider is the Gemini provider adapter.
// It implements the providers.Provider interface for the Generative
// Language generateContent API.
type Provider struct {
	*providers.HTTPClient
}

const (
	// DefaultBaseURL is the public endpoint of the Generative Language API.
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// DefaultModel is used when the configuration does not name a model.
	DefaultModel = "gemini-1.5-flash-latest"

	// DefaultTimeout bounds a single generateContent call end to end.
	DefaultTimeout = 10 * time.Second
)

// NewProvider creates a new Gemini provider instance.
func NewProvider(config providers.ProviderConfig) (*Provider, error) {
	// Fill defaults before validation
	if config.Name == "" {
		config.Name = "gemini"
	}
	if config.Type == "" {
		config.Type = "gemini"
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Model == "" {
		config.Model = DefaultModel
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	if config.APIKey == "" {
		return nil, &providers.ConfigError{
			Provider: config.Name,
			Field:    "api_key",
			Message:  "API key is required for Gemini",
		}
	}

	// Connection pool defaults
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = 100
	}
	if config.MaxIdleConnsPerHost == 0 {
		config.MaxIdleConnsPerHost = 10
	}

	p := &Provider{
		HTTPClient: providers.NewHTTPClient(config),
	}

	slog.Info("gemini provider initialized",
		"provider", config.Name,
		"base_url", config.BaseURL,
		"model", config.Model,
	)

	return p, nil
}

// Generate sends a generateContent request to Gemini.
func (p *Provider) Generate(ctx context.Context, req *providers.GenerateRequest) (*providers.GenerateResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	geminiReq := transformRequest(req)
	endpoint := endpointURL(p.GetConfig())

	var geminiResp GenerateContentResponse
	if err := p.DoJSONRequest(ctx, http.MethodPost, endpoint, geminiReq, &geminiResp, nil); err != nil {
		return nil, err
	}

	resp, err := transformResponse(&geminiResp)
	if err != nil {
		return nil, &providers.ParseError{
			Provider: p.GetName(),
			Cause:    err,
		}
	}

	slog.Debug("generate request succeeded",
		"provider", p.GetName(),
		"model", p.GetConfig().Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return resp, nil
}

// validateRequest checks the request before sending it upstream.
func validateRequest(req *providers.GenerateRequest) error {
	if req == nil {
		return &providers.ValidationError{
			Field:   "request",
			Message: "request cannot be nil",
		}
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return &providers.ValidationError{
			Field:   "prompt",
			Message: "prompt is required",
		}
	}
	return nil
}

// endpointURL builds the generateContent endpoint for the configured
// model. The API key rides as a query parameter, never a header.
func endpointURL(config providers.ProviderConfig) string {
	base := strings.TrimSuffix(config.BaseURL, "/")
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		base, config.Model, url.QueryEscape(config.APIKey))
}
