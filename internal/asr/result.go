package asr

import (
	"fmt"
	"strings"
)

// Result mirrors the recognition response body. Field names follow the wire
// format; all timestamps are milliseconds.
type Result struct {
	AudioInfo   AudioInfo   `json:"audio_info"`
	Recognition Recognition `json:"result"`
}

// AudioInfo carries metadata the service derived from the submitted audio.
type AudioInfo struct {
	Duration int64 `json:"duration"`
}

// Recognition holds the transcribed text and its sentence-level segmentation.
type Recognition struct {
	Text       string      `json:"text"`
	Utterances []Utterance `json:"utterances"`
}

// Utterance is a sentence-level segment. Utterances arrive ordered by start
// time; consumers may rely on document order.
type Utterance struct {
	Text      string `json:"text"`
	StartTime int64  `json:"start_time"`
	EndTime   int64  `json:"end_time"`
	Words     []Word `json:"words"`
}

// Word is a word-level segment with recognition confidence in [0, 1].
type Word struct {
	Text       string  `json:"text"`
	StartTime  int64   `json:"start_time"`
	EndTime    int64   `json:"end_time"`
	Confidence float64 `json:"confidence"`
}

// Text returns the full transcribed text.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	return r.Recognition.Text
}

// Duration returns the audio duration in seconds.
func (r *Result) Duration() float64 {
	if r == nil {
		return 0
	}
	return float64(r.AudioInfo.Duration) / 1000
}

// SRT renders the utterances as SubRip subtitle blocks with monotonic sequence
// numbers starting at 1. A result without utterances renders to an empty
// string rather than an error.
func (r *Result) SRT() string {
	if r == nil || len(r.Recognition.Utterances) == 0 {
		return ""
	}
	var b strings.Builder
	for i, utt := range r.Recognition.Utterances {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", srtTimestamp(utt.StartTime), srtTimestamp(utt.EndTime))
		b.WriteString(strings.TrimSpace(utt.Text))
		b.WriteString("\n\n")
	}
	return b.String()
}

func srtTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	ms -= hours * 3_600_000
	minutes := ms / 60_000
	ms -= minutes * 60_000
	seconds := ms / 1000
	millis := ms - seconds*1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
