package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat marks a local file whose extension matches neither the
// audio nor the video format set.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Kind classifies a local media file.
type Kind int

const (
	// KindAudio is a file the endpoint accepts directly.
	KindAudio Kind = iota + 1
	// KindVideo is a container whose audio track must be extracted first.
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

var audioExtensions = map[string]struct{}{
	".mp3": {}, ".wav": {}, ".ogg": {}, ".m4a": {}, ".flac": {}, ".aac": {},
}

var videoExtensions = map[string]struct{}{
	".mp4": {}, ".mkv": {}, ".avi": {}, ".mov": {}, ".wmv": {},
	".flv": {}, ".webm": {}, ".ts": {}, ".m4v": {},
}

// Classify inspects the file's extension and reports whether it is audio or
// video. The path must reference an existing regular file. No other I/O.
func Classify(path string) (Kind, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("file does not exist: %s", path)
		}
		return 0, fmt.Errorf("inspect file: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := audioExtensions[ext]; ok {
		return KindAudio, nil
	}
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo, nil
	}
	return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}
