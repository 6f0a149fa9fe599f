// Package asr submits audio to the Doubao ASR Flash recognition endpoint and
// maps responses to typed results and errors.
//
// The service is synchronous: one POST, one definitive outcome. Its protocol
// quirk is that the application status travels in the X-Api-Status-Code
// response header rather than the HTTP status code, so an HTTP 200 can still
// be a failure. The Transcriber type normalizes URL, audio-file, and
// video-file inputs into a single request payload, coordinating extraction
// and temp-file cleanup; Client performs the round trip; Result offers pure
// projections (text, duration, SRT) over the response.
package asr
