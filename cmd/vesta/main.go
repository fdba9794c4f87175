// Vesta is the HTTP backend for a local trivia game.
//
// It serves greeting endpoints for deployment checks, a database
// connectivity probe, and a quiz endpoint that asks a generative-language
// model for fresh trivia and falls back to a built-in question pool when
// the model is unavailable.
//
// Usage:
//
//	# Start the server with default configuration
//	vesta run
//
//	# Start with a custom configuration file
//	vesta run --config /path/to/config.yaml
//
//	# Show recently served quiz items from the archive
//	vesta history --limit 10
//
//	# Show version information
//	vesta version
package main

func main() {
	Execute()
}
