package media

import (
	"errors"
	"path/filepath"
	"testing"

	"flashscribe/internal/testsupport"
)

func TestClassifyAudioExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp3", "b.wav", "c.ogg", "d.m4a", "e.flac", "f.aac", "UPPER.MP3"} {
		path := testsupport.WriteMedia(t, dir, name, 16)
		kind, err := Classify(path)
		if err != nil {
			t.Fatalf("Classify(%s): %v", name, err)
		}
		if kind != KindAudio {
			t.Fatalf("Classify(%s) = %v, want audio", name, kind)
		}
	}
}

func TestClassifyVideoExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.mkv", "c.avi", "d.mov", "e.wmv", "f.flv", "g.webm", "h.ts", "i.m4v"} {
		path := testsupport.WriteMedia(t, dir, name, 16)
		kind, err := Classify(path)
		if err != nil {
			t.Fatalf("Classify(%s): %v", name, err)
		}
		if kind != KindVideo {
			t.Fatalf("Classify(%s) = %v, want video", name, kind)
		}
	}
}

func TestClassifyUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteMedia(t, dir, "notes.txt", 16)
	if _, err := Classify(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestClassifyMissingFile(t *testing.T) {
	if _, err := Classify(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestClassifyDirectory(t *testing.T) {
	if _, err := Classify(t.TempDir()); err == nil {
		t.Fatal("expected error for directory")
	}
}

func TestClassifyIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteMedia(t, dir, "speech.mp3", 16)
	first, err := Classify(path)
	if err != nil {
		t.Fatalf("first Classify: %v", err)
	}
	second, err := Classify(path)
	if err != nil {
		t.Fatalf("second Classify: %v", err)
	}
	if first != second {
		t.Fatalf("classification changed between calls: %v then %v", first, second)
	}
}
