package asr

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
)

const (
	// MaxFileSize is the hard ceiling on local source size. Exceeding it fails
	// before any read or network work.
	MaxFileSize = 100 * 1024 * 1024
	// RecommendedSize is the advisory threshold above which uploads degrade.
	RecommendedSize = 20 * 1024 * 1024

	defaultUID = "user"
	modelName  = "bigmodel"
)

// Payload is the request body for the recognition endpoint. Audio carries
// exactly one of URL or Data.
type Payload struct {
	User    PayloadUser    `json:"user"`
	Audio   PayloadAudio   `json:"audio"`
	Request PayloadRequest `json:"request"`
}

// PayloadUser identifies the submitting user.
type PayloadUser struct {
	UID string `json:"uid"`
}

// PayloadAudio references the audio either by public URL or as an inline
// base64-encoded payload.
type PayloadAudio struct {
	URL  string `json:"url,omitempty"`
	Data string `json:"data,omitempty"`
}

// PayloadRequest selects the recognition model.
type PayloadRequest struct {
	ModelName string `json:"model_name"`
}

// URLPayload builds a request body that references a publicly accessible
// audio URL. No local I/O happens.
func URLPayload(url string) (Payload, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Payload{}, fmt.Errorf("%w: empty url", ErrInvalidInput)
	}
	return Payload{
		User:    PayloadUser{UID: defaultUID},
		Audio:   PayloadAudio{URL: url},
		Request: PayloadRequest{ModelName: modelName},
	}, nil
}

// FilePayload reads a local audio file and builds a request body carrying its
// contents base64-encoded. The size ceiling is enforced with a stat before any
// bytes are read; the returned size lets callers surface the advisory warning
// for sources above RecommendedSize.
func FilePayload(path string) (Payload, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Payload{}, 0, fmt.Errorf("stat audio source: %w", err)
	}
	size := info.Size()
	if size > MaxFileSize {
		return Payload{}, size, fmt.Errorf("%w: %.1fMB exceeds the %dMB limit",
			ErrFileTooLarge, float64(size)/1024/1024, MaxFileSize/1024/1024)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, size, fmt.Errorf("read audio source: %w", err)
	}

	return Payload{
		User:    PayloadUser{UID: defaultUID},
		Audio:   PayloadAudio{Data: base64.StdEncoding.EncodeToString(data)},
		Request: PayloadRequest{ModelName: modelName},
	}, size, nil
}
