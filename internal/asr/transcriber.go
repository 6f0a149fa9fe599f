package asr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"flashscribe/internal/logging"
	"flashscribe/internal/media"
)

// Input describes the audio source for one transcription. Exactly one of URL
// and File must be set.
type Input struct {
	URL  string
	File string
}

func (in Input) validate() error {
	url := strings.TrimSpace(in.URL)
	file := strings.TrimSpace(in.File)
	if url == "" && file == "" {
		return fmt.Errorf("%w: either a url or a file must be provided", ErrInvalidInput)
	}
	if url != "" && file != "" {
		return fmt.Errorf("%w: provide either a url or a file, not both", ErrInvalidInput)
	}
	return nil
}

// Transcriber normalizes heterogeneous inputs into a single recognition
// request: URLs pass through, local audio is inlined, video is converted to a
// scoped temporary audio file first. Each Transcribe call is self-contained;
// there is no shared state across calls.
type Transcriber struct {
	client    *Client
	creds     Credentials
	extractor *media.Extractor
	logger    *slog.Logger
	keepTemp  bool
}

// TranscriberOption customizes a transcriber.
type TranscriberOption func(*Transcriber)

// WithClient overrides the recognition client.
func WithClient(client *Client) TranscriberOption {
	return func(t *Transcriber) {
		if client != nil {
			t.client = client
		}
	}
}

// WithExtractor overrides the audio extractor used for video input.
func WithExtractor(extractor *media.Extractor) TranscriberOption {
	return func(t *Transcriber) {
		if extractor != nil {
			t.extractor = extractor
		}
	}
}

// WithTranscriberLogger attaches a logger.
func WithTranscriberLogger(logger *slog.Logger) TranscriberOption {
	return func(t *Transcriber) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// KeepTemp retains extracted audio files instead of deleting them on scope
// exit, reporting their paths for diagnostics.
func KeepTemp(keep bool) TranscriberOption {
	return func(t *Transcriber) {
		t.keepTemp = keep
	}
}

// NewTranscriber constructs a transcriber with the given credentials.
func NewTranscriber(creds Credentials, opts ...TranscriberOption) *Transcriber {
	transcriber := &Transcriber{
		creds:  creds,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(transcriber)
	}
	if transcriber.client == nil {
		transcriber.client = NewClient(WithLogger(transcriber.logger))
	}
	if transcriber.extractor == nil {
		transcriber.extractor = media.NewExtractor(media.WithLogger(transcriber.logger))
	}
	return transcriber
}

// Transcribe performs one transcription: at most one subprocess invocation and
// at most one network call, in that order. Temporary audio produced for video
// input is deleted when the call returns, success or failure, unless KeepTemp
// was requested.
func (t *Transcriber) Transcribe(ctx context.Context, in Input) (*Result, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if url := strings.TrimSpace(in.URL); url != "" {
		t.logger.Info("transcribing from url", logging.String("url", url))
		payload, err := URLPayload(url)
		if err != nil {
			return nil, err
		}
		return t.client.Submit(ctx, payload, t.creds)
	}

	return t.transcribeFile(ctx, strings.TrimSpace(in.File))
}

func (t *Transcriber) transcribeFile(ctx context.Context, path string) (*Result, error) {
	kind, err := media.Classify(path)
	if err != nil {
		return nil, err
	}

	audioPath := path
	if kind == media.KindVideo {
		t.logger.Info("detected video input", logging.String("path", path))
		artifact, err := t.extractor.Extract(ctx, path)
		if err != nil {
			return nil, err
		}
		if t.keepTemp {
			artifact.Retain()
		}
		defer artifact.Close()
		audioPath = artifact.Path()
	}

	payload, size, err := FilePayload(audioPath)
	if err != nil {
		return nil, err
	}
	t.logger.Info("transcribing file",
		logging.String("path", audioPath),
		logging.String("size", fmt.Sprintf("%.1fMB", float64(size)/1024/1024)),
	)
	if size > RecommendedSize {
		t.logger.Warn("file larger than recommended 20MB, upload may be slow",
			logging.Int64("bytes", size),
		)
	}

	return t.client.Submit(ctx, payload, t.creds)
}
