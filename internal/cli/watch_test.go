package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cmdgraph/cmdgraph/pkg/pipeline"
)

func TestWatchLoopRegeneratesOnChange(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.json")
	out := filepath.Join(dir, "commands.dot")
	if err := os.WriteFile(in, []byte(sampleTree), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, in, out, pipeline.Options{})
	}()

	// Give the watcher a moment to register, then rewrite the input with a
	// new command and wait for the regenerated output to mention it.
	time.Sleep(200 * time.Millisecond)
	updated := `{"type":"root","children":{"teammsg":{"type":"literal","executable":true}}}`
	if err := os.WriteFile(in, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite input: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		data, err := os.ReadFile(out)
		if err == nil && strings.Contains(string(data), "teammsg") {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("output never regenerated; last contents: %q", data)
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchLoop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("watchLoop did not exit after cancellation")
	}
}

func TestWatchLoopKeepsRunningAfterBadInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "commands.json")
	out := filepath.Join(dir, "commands.dot")
	if err := os.WriteFile(in, []byte(sampleTree), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, in, out, pipeline.Options{})
	}()

	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(in, []byte(`{"type":`), 0o644); err != nil {
		t.Fatalf("rewrite input: %v", err)
	}
	time.Sleep(500 * time.Millisecond)

	// The loop must survive the failed conversion and pick up the fix.
	fixed := `{"type":"root","children":{"mended":{"type":"literal"}}}`
	if err := os.WriteFile(in, []byte(fixed), 0o644); err != nil {
		t.Fatalf("rewrite input: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		data, err := os.ReadFile(out)
		if err == nil && strings.Contains(string(data), "mended") {
			break
		}
		select {
		case <-deadline:
			t.Fatal("watch loop did not recover from a failed conversion")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("watchLoop: %v", err)
	}
}
