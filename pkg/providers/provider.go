package providers

import "context"

// Provider is the core interface that generative-language adapters
// implement. It gives callers a unified abstraction over hosted text
// generation APIs.
//
// All methods accept a context.Context for cancellation and timeout
// control. Implementations must respect context cancellation and return
// immediately when the context is cancelled.
//
// Example usage:
//
//	provider, err := gemini.NewProvider(config)
//	if err != nil {
//	    return err
//	}
//	defer provider.Close()
//
//	resp, err := provider.Generate(ctx, &providers.GenerateRequest{
//	    Prompt: "Write a haiku about the sea.",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Text)
type Provider interface {
	// Generate sends a generation request to the provider and returns the
	// normalized response. The request is sent exactly once; there is no
	// retry loop, and callers own any fallback behavior.
	//
	// Returns one of the typed errors of this package when the request
	// fails, times out, or the response cannot be parsed.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GetName returns the provider's configured instance name.
	GetName() string

	// GetType returns the provider's adapter type (e.g. "gemini").
	GetType() string

	// GetConfig returns the provider's configuration.
	GetConfig() ProviderConfig

	// Close releases the provider's resources (HTTP connections, etc.).
	// After calling Close, the provider should not be used.
	Close() error
}
