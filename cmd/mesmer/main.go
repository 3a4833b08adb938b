// Mesmer is a thin relay between a browser UI and a locally running
// OpenAI-compatible inference server (LM Studio by default).
//
// It serves the UI's static assets, validates incoming requests, builds the
// upstream prompts for style analysis and hypnosis script generation, and
// returns upstream responses either buffered or as a live event stream.
//
// Usage:
//
//	# Start with defaults (port 3000, LM Studio on localhost:1234)
//	mesmer run
//
//	# Start with a config file
//	mesmer run --config /path/to/config.yaml
//
//	# Show version information
//	mesmer version
package main

func main() {
	Execute()
}
