package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3)

	p.Done("libs/hello", StatusOK)
	p.Done("apps/docs", StatusSkipped)
	p.Done("apps/web", StatusFailed)

	out := buf.String()
	for _, want := range []string{"[1/3] ok libs/hello", "[2/3] skip apps/docs", "[3/3] FAIL apps/web"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if p.Completed() != 3 {
		t.Errorf("Completed() = %d, want 3", p.Completed())
	}
}

func TestProgress_concurrent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 50)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Done("item", StatusOK)
		}()
	}
	wg.Wait()

	if p.Completed() != 50 {
		t.Errorf("Completed() = %d, want 50", p.Completed())
	}
	if !strings.Contains(buf.String(), "[50/50] ok item") {
		t.Errorf("last line missing:\n%s", buf.String())
	}
	if n := strings.Count(buf.String(), "\n"); n != 50 {
		t.Errorf("got %d lines, want 50", n)
	}
}

func TestProgress_nil(t *testing.T) {
	var p *Progress
	p.Done("x", StatusOK)
	p.Log("hello %s", "world")
	if p.Completed() != 0 {
		t.Error("nil Progress should report zero")
	}
}

func TestProgress_Log(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 1)
	p.Log("installing %s", "libs")
	if !strings.Contains(buf.String(), "installing libs") {
		t.Errorf("missing log message: %s", buf.String())
	}
}
