package processor

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestRunSkipsNonSubtitles(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/notes.txt", "keep me")
	writeFile(t, fs, "/LOUD.SRT", sampleSRT)
	p, out := newTestProcessor(t, fs, "")

	res := p.Run(context.Background(), []string{"/notes.txt", "/LOUD.SRT"})

	if err := res.Err(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Skipped) != 2 || len(res.Converted) != 0 {
		t.Errorf("Run() = %+v, want two skipped paths", res)
	}
	if text := readFile(t, fs, "/notes.txt"); text != "keep me" {
		t.Errorf("notes.txt changed to %q", text)
	}
	assertExists(t, fs, "/LOUD.SRT", true)
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunConvertsInOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/a.srt", sampleSRT)
	writeFile(t, fs, "/b.en.srt", sampleSRT)
	p, out := newTestProcessor(t, fs, "")

	res := p.Run(context.Background(), []string{"/a.srt", "/readme.md", "/b.en.srt"})

	if err := res.Err(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.Join(res.Converted, ","); got != "/a.txt,/b.txt" {
		t.Errorf("Converted = %q", got)
	}
	if want := "Converted: a.txt\nConverted: b.txt\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunAbortStopsAtFirstFailure(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/first.srt", sampleSRT)
	writeFile(t, fs, "/third.srt", sampleSRT)
	p, out := newTestProcessor(t, fs, "abort")

	res := p.Run(context.Background(), []string{"/first.srt", "/missing.srt", "/third.srt"})

	if res.Err() == nil {
		t.Fatal("Run() should report the failure")
	}
	if len(res.Failed) != 1 || res.Failed[0].Path != "/missing.srt" {
		t.Errorf("Failed = %+v", res.Failed)
	}
	if len(res.Remaining) != 1 || res.Remaining[0] != "/third.srt" {
		t.Errorf("Remaining = %v", res.Remaining)
	}
	assertExists(t, fs, "/first.srt", false)
	assertExists(t, fs, "/first.txt", true)
	assertExists(t, fs, "/third.srt", true)
	assertExists(t, fs, "/third.txt", false)
	if out.String() != "Converted: first.txt\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunContinueIsolatesFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/first.srt", sampleSRT)
	writeFile(t, fs, "/third.srt", sampleSRT)
	p, _ := newTestProcessor(t, fs, "continue")

	res := p.Run(context.Background(), []string{"/first.srt", "/missing.srt", "/third.srt"})

	err := res.Err()
	if err == nil || !strings.Contains(err.Error(), "/missing.srt") {
		t.Fatalf("Err() = %v, want failure naming /missing.srt", err)
	}
	if len(res.Converted) != 2 || len(res.Remaining) != 0 {
		t.Errorf("Run() = %+v, want both good files converted", res)
	}
	assertExists(t, fs, "/third.txt", true)
}

func TestRunCanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/a.srt", sampleSRT)
	p, out := newTestProcessor(t, fs, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := p.Run(ctx, []string{"/a.srt"})

	if res.Interrupted == nil {
		t.Fatal("Run() should record the interruption")
	}
	if len(res.Remaining) != 1 {
		t.Errorf("Remaining = %v", res.Remaining)
	}
	assertExists(t, fs, "/a.srt", true)
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestRunNoArguments(t *testing.T) {
	p, out := newTestProcessor(t, afero.NewMemMapFs(), "")

	res := p.Run(context.Background(), nil)

	if res.Err() != nil || out.Len() != 0 {
		t.Errorf("Run(nil) = %+v, output %q", res, out.String())
	}
}

func TestRunErrorNamesPathOnce(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/latin1.srt", "caf\xe9\n")
	p, _ := newTestProcessor(t, fs, "")

	res := p.Run(context.Background(), []string{"/latin1.srt"})

	err := res.Err()
	if err == nil {
		t.Fatal("Run() should report the decode failure")
	}
	if n := strings.Count(err.Error(), "/latin1.srt"); n != 1 {
		t.Errorf("Err() = %q, names the path %d times, want once", err, n)
	}
	if !strings.Contains(err.Error(), "decode subtitle") {
		t.Errorf("Err() = %q, want the failing step", err)
	}
}
