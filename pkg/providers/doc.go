// Package providers implements a unified abstraction layer for hosted
// generative-language APIs.
//
// # Overview
//
// The providers package gives the rest of the service a consistent
// interface for text generation. It normalizes requests and responses,
// manages connections, and maps upstream failures to typed errors.
//
// # Architecture
//
// The package is organized into three layers:
//
//  1. Provider Interface - Defines the contract all adapters implement
//  2. Base HTTP Client - Implements common HTTP logic (connection pooling, timeouts, error mapping)
//  3. Provider Adapters - API-specific implementations (currently Gemini)
//
// # Basic Usage
//
//	config := providers.ProviderConfig{
//	    Name:    "gemini",
//	    Type:    "gemini",
//	    BaseURL: "https://generativelanguage.googleapis.com",
//	    APIKey:  os.Getenv("GEMINI_API_KEY"),
//	    Model:   "gemini-1.5-flash-latest",
//	    Timeout: 10 * time.Second,
//	}
//
//	provider, err := gemini.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	resp, err := provider.Generate(context.Background(), &providers.GenerateRequest{
//	    Prompt: "Name three rivers.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.Text)
//
// # Error Handling
//
// The package defines specific error types for common failure scenarios:
//
//   - ProviderError: General provider errors
//   - AuthError: Authentication failures (HTTP 401/403)
//   - RateLimitError: Rate limit exceeded (HTTP 429)
//   - TimeoutError: Request timeout
//   - ParseError: Response parsing failure
//   - ValidationError: Invalid request
//   - ConfigError: Invalid adapter configuration
//
// Example error handling:
//
//	resp, err := provider.Generate(ctx, req)
//	if err != nil {
//	    switch e := err.(type) {
//	    case *providers.AuthError:
//	        fmt.Printf("Authentication failed: %v\n", e)
//	    case *providers.TimeoutError:
//	        fmt.Printf("Request timeout: %v\n", e)
//	    default:
//	        fmt.Printf("Error: %v\n", e)
//	    }
//	}
//
// # Single Attempt
//
// Requests are sent exactly once. The service degrades to a local
// fallback on failure, so the client carries no retry loop; a failed
// request surfaces immediately as a typed error.
//
// # Thread Safety
//
// All adapter implementations are safe for concurrent use from multiple
// goroutines.
package providers
