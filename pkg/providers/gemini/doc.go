// Package gemini implements the Google Generative Language provider adapter.
//
// This package provides an implementation of the providers.Provider
// interface for the generateContent API (v1beta).
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
// # Authentication
//
// The API authenticates with the key as a query parameter on the request
// URL rather than a header. The base HTTP client strips query strings
// from logged URLs so the key never reaches the logs.
//
// # Request Transformation
//
// The adapter wraps the prompt in Gemini's contents/parts envelope:
//
//	{"contents": [{"parts": [{"text": "<prompt>"}]}]}
//
// # Response Transformation
//
// The adapter extracts the text of the first part of the first candidate.
// Responses with no candidates (including prompts blocked by moderation),
// no content parts, or empty text produce a ParseError.
//
// # Error Handling
//
// The adapter maps API errors to the common error types:
//
//   - 401/403 -> AuthError
//   - 429 -> RateLimitError (includes retry-after)
//   - other non-2xx -> ProviderError
//   - deadline exceeded -> TimeoutError
//   - malformed payload -> ParseError
package gemini
