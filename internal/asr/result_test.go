package asr

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func TestResultTextAndDuration(t *testing.T) {
	body := `{"audio_info":{"duration":5230},"result":{"text":"Hello world.","utterances":[]}}`
	var result Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := result.Text(); got != "Hello world." {
		t.Fatalf("Text() = %q", got)
	}
	if got := result.Duration(); got != 5.23 {
		t.Fatalf("Duration() = %v, want 5.23", got)
	}
}

func TestResultNilSafe(t *testing.T) {
	var result *Result
	if result.Text() != "" || result.Duration() != 0 || result.SRT() != "" {
		t.Fatal("nil result accessors must return zero values")
	}
}

func TestSRTRendering(t *testing.T) {
	result := &Result{
		Recognition: Recognition{
			Utterances: []Utterance{
				{Text: "A", StartTime: 0, EndTime: 1500},
				{Text: "B", StartTime: 1500, EndTime: 3200},
			},
		},
	}
	want := "1\n00:00:00,000 --> 00:00:01,500\nA\n\n" +
		"2\n00:00:01,500 --> 00:00:03,200\nB\n\n"
	if got := result.SRT(); got != want {
		t.Fatalf("SRT() = %q, want %q", got, want)
	}
}

func TestSRTTimestampDecomposition(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00,000"},
		{999, "00:00:00,999"},
		{61_001, "00:01:01,001"},
		{3_600_000, "01:00:00,000"},
		{7_325_042, "02:02:05,042"},
	}
	for _, tc := range cases {
		if got := srtTimestamp(tc.ms); got != tc.want {
			t.Fatalf("srtTimestamp(%d) = %q, want %q", tc.ms, got, tc.want)
		}
	}
}

func TestSRTSequenceNumbering(t *testing.T) {
	faker := gofakeit.New(11)
	utterances := make([]Utterance, 8)
	for i := range utterances {
		start := int64(i) * 2000
		utterances[i] = Utterance{
			Text:      faker.Sentence(4),
			StartTime: start,
			EndTime:   start + 1800,
		}
	}
	result := &Result{Recognition: Recognition{Utterances: utterances}}

	blocks := strings.Split(strings.TrimSuffix(result.SRT(), "\n\n"), "\n\n")
	if len(blocks) != len(utterances) {
		t.Fatalf("expected %d blocks, got %d", len(utterances), len(blocks))
	}
	for i, block := range blocks {
		if !strings.HasPrefix(block, fmt.Sprintf("%d\n", i+1)) {
			t.Fatalf("block %d has wrong sequence number: %q", i, block)
		}
	}
}

func TestSRTEmptyUtterances(t *testing.T) {
	result := &Result{Recognition: Recognition{Text: "words without timing"}}
	if got := result.SRT(); got != "" {
		t.Fatalf("expected empty SRT, got %q", got)
	}
}

func TestResultMissingOptionalFields(t *testing.T) {
	body := `{"result":{"text":"hi","utterances":[{"text":"hi","start_time":0,"end_time":400}]}}`
	var result Result
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if words := result.Recognition.Utterances[0].Words; len(words) != 0 {
		t.Fatalf("missing words must decode as empty, got %v", words)
	}
}
