package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestWriteResultJSONEscapesLikeASCIIOnlyEncoders(t *testing.T) {
	var buf bytes.Buffer
	value := map[string]string{"title": "Amélie <&> \x7f 😀 日本"}
	if err := writeResultJSON(&buf, value); err != nil {
		t.Fatalf("writeResultJSON: %v", err)
	}
	want := "{\n    \"title\": \"Am\\u00e9lie <&> \\u007f \\ud83d\\ude00 \\u65e5\\u672c\"\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected encoding\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Keys", statusError, "got genres", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Keys:", "[ERROR] got genres")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
	if got := renderStatusLine("Threshold", statusInfo, "", false); !strings.HasSuffix(got, "[INFO]") {
		t.Fatalf("expected bare label, got %q", got)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Benchmark", statusOK, "score 0.7", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := renderTable("Genres", []string{"#", "Genre"}, [][]string{{"0", "Drama"}, {"1"}}, []columnAlignment{alignRight})
	for _, fragment := range []string{"Genres", "Drama", "#"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in table:\n%s", fragment, out)
		}
	}
	if renderTable("", nil, nil, nil) != "" {
		t.Fatal("expected empty table for no headers")
	}
}

func TestShouldColorizeRejectsBuffers(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("expected buffers not to be colorized")
	}
}
