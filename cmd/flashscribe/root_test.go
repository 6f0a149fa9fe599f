package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flashscribe/internal/testsupport"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, endpoint string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf(`
[auth]
app_key = "test-app"
access_token = "test-token"

[api]
endpoint = %q

[logging]
level = "error"
`, endpoint)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRootRequiresInput(t *testing.T) {
	if _, err := executeCommand(t); err == nil {
		t.Fatal("expected error when neither --url nor --file is given")
	}
}

func TestRootRejectsBothInputs(t *testing.T) {
	if _, err := executeCommand(t, "--url", "https://example.com/a.mp3", "--file", "a.mp3"); err == nil {
		t.Fatal("expected error when both --url and --file are given")
	}
}

func TestRootRejectsTextOnlyWithSRT(t *testing.T) {
	if _, err := executeCommand(t, "--url", "https://example.com/a.mp3", "--text-only", "--srt"); err == nil {
		t.Fatal("expected error when --text-only and --srt are combined")
	}
}

func TestRootTranscribesFileEndToEnd(t *testing.T) {
	fake := testsupport.NewFakeRecognizer("20000000",
		`{"audio_info":{"duration":5230},"result":{"text":"Hello world.","utterances":[]}}`)
	defer fake.Close()

	cfgPath := writeTestConfig(t, fake.URL())
	audio := testsupport.WriteMedia(t, t.TempDir(), "speech.mp3", 128)

	out, err := executeCommand(t, "--file", audio, "-c", cfgPath, "--text-only")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Hello world.") {
		t.Fatalf("expected transcript on stdout, got %q", out)
	}

	requests := fake.Requests()
	if len(requests) != 1 {
		t.Fatalf("expected one request, got %d", len(requests))
	}
	if got := requests[0].Header.Get("X-Api-App-Key"); got != "test-app" {
		t.Fatalf("credentials not forwarded from config: %q", got)
	}
}

func TestRootWritesOutputFile(t *testing.T) {
	fake := testsupport.NewFakeRecognizer("20000000",
		`{"audio_info":{"duration":1000},"result":{"text":"hi","utterances":[]}}`)
	defer fake.Close()

	cfgPath := writeTestConfig(t, fake.URL())
	audio := testsupport.WriteMedia(t, t.TempDir(), "speech.wav", 128)
	target := filepath.Join(t.TempDir(), "result.txt")

	out, err := executeCommand(t, "--file", audio, "-c", cfgPath, "--text-only", "-o", target)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !strings.Contains(out, "Result saved to") {
		t.Fatalf("expected save notice, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if string(data) != "hi" {
		t.Fatalf("output file = %q", data)
	}
}

func TestRootSurfacesAPIError(t *testing.T) {
	fake := testsupport.NewFakeRecognizer("55000031", ``)
	fake.Message = "server busy"
	defer fake.Close()

	cfgPath := writeTestConfig(t, fake.URL())
	audio := testsupport.WriteMedia(t, t.TempDir(), "speech.mp3", 128)

	_, err := executeCommand(t, "--file", audio, "-c", cfgPath)
	if err == nil {
		t.Fatal("expected error for non-success status header")
	}
	if !strings.Contains(err.Error(), "55000031") {
		t.Fatalf("error must carry the status code: %v", err)
	}
}

func TestRootMissingCredentials(t *testing.T) {
	fake := testsupport.NewFakeRecognizer("20000000", `{}`)
	defer fake.Close()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := fmt.Sprintf("[api]\nendpoint = %q\n", fake.URL())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VOLCENGINE_APP_ID", "")
	t.Setenv("VOLCENGINE_ACCESS_TOKEN", "")

	audio := testsupport.WriteMedia(t, t.TempDir(), "speech.mp3", 128)
	_, err := executeCommand(t, "--file", audio, "-c", path)
	if err == nil || !strings.Contains(err.Error(), "credentials required") {
		t.Fatalf("expected credentials error, got %v", err)
	}
	if got := len(fake.Requests()); got != 0 {
		t.Fatalf("expected no request without credentials, got %d", got)
	}
}
