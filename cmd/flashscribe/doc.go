// Package main hosts the flashscribe CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into one-shot
// transcription calls, configuration scaffolding, and external-tool checks. It
// centralizes configuration resolution, credential layering, and structured
// logging setup so the heavy lifting stays in the internal packages.
package main
