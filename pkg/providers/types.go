package providers

import "time"

// GenerateRequest represents a provider-agnostic text generation request.
// It is transformed to the provider-specific wire format by each adapter.
type GenerateRequest struct {
	// Prompt is the complete instruction sent to the model
	Prompt string `json:"prompt"`
}

// GenerateResponse represents a provider-agnostic generation response.
type GenerateResponse struct {
	// Text is the raw text of the first candidate
	Text string `json:"text"`

	// FinishReason reports why generation stopped, if the provider says
	FinishReason string `json:"finish_reason,omitempty"`

	// Usage tracks token consumption when the provider reports it
	Usage TokenUsage `json:"usage"`
}

// TokenUsage tracks token consumption for a request.
type TokenUsage struct {
	// PromptTokens is the number of tokens in the prompt
	PromptTokens int `json:"prompt_tokens"`

	// CompletionTokens is the number of tokens in the completion
	CompletionTokens int `json:"completion_tokens"`

	// TotalTokens is the total number of tokens used (prompt + completion)
	TotalTokens int `json:"total_tokens"`
}

// ProviderConfig holds the configuration for a provider adapter.
type ProviderConfig struct {
	// Name is the instance name used in logs and error values
	Name string `yaml:"name" json:"name"`

	// Type is the adapter type (currently "gemini")
	Type string `yaml:"type" json:"type"`

	// BaseURL is the API root without a trailing slash
	BaseURL string `yaml:"base_url" json:"base_url"`

	// APIKey authenticates requests. Never logged, never serialized.
	APIKey string `yaml:"api_key" json:"-"`

	// Model is the model identifier used in the endpoint path
	Model string `yaml:"model" json:"model"`

	// Timeout bounds a single request end to end
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// MaxIdleConns is the connection pool size across all hosts
	MaxIdleConns int `yaml:"max_idle_conns" json:"max_idle_conns"`

	// MaxIdleConnsPerHost is the connection pool size per host
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" json:"max_idle_conns_per_host"`

	// IdleConnTimeout is how long idle connections are kept open
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout" json:"idle_conn_timeout"`
}
