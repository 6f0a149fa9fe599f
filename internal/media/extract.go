package media

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"flashscribe/internal/logging"
)

var (
	// ErrToolNotFound marks a missing media-conversion binary. The check runs
	// eagerly so the failure surfaces before any network activity.
	ErrToolNotFound = errors.New("media tool not found")
	// ErrExtractionFailed marks a non-zero exit from the conversion subprocess.
	ErrExtractionFailed = errors.New("audio extraction failed")
)

const installHint = "install FFmpeg from https://ffmpeg.org or via your package manager (apt install ffmpeg, brew install ffmpeg, winget install ffmpeg)"

// Extractor produces temporary audio files from video containers by invoking
// an external conversion binary.
type Extractor struct {
	binary     string
	format     string
	sampleRate int
	channels   int
	timeout    time.Duration
	logger     *slog.Logger
}

// ExtractorOption customizes an extractor.
type ExtractorOption func(*Extractor)

// WithBinary overrides the conversion binary name or path.
func WithBinary(binary string) ExtractorOption {
	return func(e *Extractor) {
		if strings.TrimSpace(binary) != "" {
			e.binary = strings.TrimSpace(binary)
		}
	}
}

// WithFormat selects the intermediate audio format ("mp3" or "wav").
func WithFormat(format string) ExtractorOption {
	return func(e *Extractor) {
		if strings.TrimSpace(format) != "" {
			e.format = strings.ToLower(strings.TrimSpace(format))
		}
	}
}

// WithTimeout bounds the subprocess run time.
func WithTimeout(timeout time.Duration) ExtractorOption {
	return func(e *Extractor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewExtractor constructs an extractor with the standard recognition-friendly
// output settings: mono, 16kHz, mp3.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	extractor := &Extractor{
		binary:     "ffmpeg",
		format:     "mp3",
		sampleRate: 16000,
		channels:   1,
		timeout:    5 * time.Minute,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

// CheckTool verifies the conversion binary is discoverable on PATH.
func (e *Extractor) CheckTool() error {
	if _, err := exec.LookPath(e.binary); err != nil {
		return fmt.Errorf("%w: %q is required for video input; %s", ErrToolNotFound, e.binary, installHint)
	}
	return nil
}

// Extract drops the video stream from the container at videoPath and writes a
// mono 16kHz audio file to a uniquely named temporary location. The returned
// artifact owns the temp file; callers must Close it. The tool check happens
// before the subprocess starts so a missing binary never costs a network call.
func (e *Extractor) Extract(ctx context.Context, videoPath string) (*Artifact, error) {
	if err := e.CheckTool(); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "flashscribe-*."+e.format)
	if err != nil {
		return nil, fmt.Errorf("create temp audio file: %w", err)
	}
	dest := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("close temp audio file: %w", err)
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Info("extracting audio track",
		logging.String("source", videoPath),
		logging.String("dest", dest),
	)

	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-vn",
		"-acodec", e.codec(),
		"-ar", strconv.Itoa(e.sampleRate),
		"-ac", strconv.Itoa(e.channels),
		dest,
	}
	cmd := exec.CommandContext(ctx, e.binary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		os.Remove(dest)
		return nil, fmt.Errorf("%w: %w: %s", ErrExtractionFailed, err, strings.TrimSpace(string(output)))
	}
	if info, err := os.Stat(dest); err != nil || info.Size() == 0 {
		os.Remove(dest)
		return nil, fmt.Errorf("%w: output file not created", ErrExtractionFailed)
	}

	return &Artifact{path: dest, logger: e.logger}, nil
}

func (e *Extractor) codec() string {
	if e.format == "mp3" {
		return "libmp3lame"
	}
	return "pcm_s16le"
}

// Artifact is a transient on-disk audio file owned by the single transcription
// call that produced it. Close deletes the file unconditionally unless Retain
// was called first; cleanup is tied to the call's scope, not to whether the
// subsequent network step succeeded.
type Artifact struct {
	path     string
	retained bool
	logger   *slog.Logger
}

// Path returns the location of the extracted audio file.
func (a *Artifact) Path() string {
	return a.path
}

// Retain keeps the file on disk after Close, for diagnostics. The path is
// reported instead of deleted.
func (a *Artifact) Retain() {
	a.retained = true
}

// Close releases the artifact. Safe to call multiple times.
func (a *Artifact) Close() error {
	if a == nil || a.path == "" {
		return nil
	}
	path := a.path
	a.path = ""
	if a.retained {
		a.logger.Info("keeping extracted audio file", logging.String("path", path))
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		a.logger.Warn("failed to remove temp audio file",
			logging.String("path", path),
			logging.Error(err),
		)
		return err
	}
	return nil
}
