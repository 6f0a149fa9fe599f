package asr

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestURLPayload(t *testing.T) {
	payload, err := URLPayload("https://example.com/audio.mp3")
	if err != nil {
		t.Fatalf("URLPayload: %v", err)
	}
	if payload.Audio.URL != "https://example.com/audio.mp3" {
		t.Fatalf("unexpected url: %q", payload.Audio.URL)
	}
	if payload.Audio.Data != "" {
		t.Fatal("url payload must not carry inline data")
	}
	if payload.Request.ModelName != "bigmodel" {
		t.Fatalf("unexpected model name: %q", payload.Request.ModelName)
	}
}

func TestURLPayloadEmpty(t *testing.T) {
	if _, err := URLPayload("  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFilePayloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech.mp3")
	content := []byte("not really audio, but bytes are bytes")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	payload, size, err := FilePayload(path)
	if err != nil {
		t.Fatalf("FilePayload: %v", err)
	}
	if size != int64(len(content)) {
		t.Fatalf("size = %d, want %d", size, len(content))
	}
	if payload.Audio.URL != "" {
		t.Fatal("file payload must not carry a url")
	}

	decoded, err := base64.StdEncoding.DecodeString(payload.Audio.Data)
	if err != nil {
		t.Fatalf("decode payload data: %v", err)
	}
	if string(decoded) != string(content) {
		t.Fatalf("round trip mismatch: got %q", decoded)
	}
}

func TestFilePayloadExactlyOneSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech.wav")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	payload, _, err := FilePayload(path)
	if err != nil {
		t.Fatalf("FilePayload: %v", err)
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	var decoded map[string]map[string]any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	audio := decoded["audio"]
	_, hasURL := audio["url"]
	_, hasData := audio["data"]
	if hasURL == hasData {
		t.Fatalf("audio must carry exactly one of url/data, got url=%v data=%v", hasURL, hasData)
	}
}

func TestFilePayloadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.mp3")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	// Sparse file: the ceiling check must stat, not read.
	if err := f.Truncate(MaxFileSize + 1); err != nil {
		t.Fatalf("truncate fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	if _, _, err := FilePayload(path); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestFilePayloadMissingFile(t *testing.T) {
	if _, _, err := FilePayload(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFilePayloadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speech.flac")
	if err := os.WriteFile(path, []byte("stable bytes"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	first, _, err := FilePayload(path)
	if err != nil {
		t.Fatalf("first FilePayload: %v", err)
	}
	second, _, err := FilePayload(path)
	if err != nil {
		t.Fatalf("second FilePayload: %v", err)
	}
	if first != second {
		t.Fatalf("payload changed between calls on unchanged input")
	}
}
