// Package media classifies local input files and extracts audio tracks from
// video containers.
//
// Classification is a pure extension check against fixed audio and video
// format sets. Extraction shells out to FFmpeg, producing a mono 16kHz
// temporary audio file whose lifetime is owned by the Artifact type: the
// single call that created it closes it, and the file is removed on every
// exit path unless the caller asked to retain it.
package media
