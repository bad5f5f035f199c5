package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	graphics "github.com/richinsley/gltriangle/graphics"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{fmt.Errorf("%w: %w", graphics.ErrInit, errors.New("X11: The DISPLAY environment variable is missing")), 1},
		{fmt.Errorf("%w: %w", graphics.ErrWindow, errors.New("no GLX")), 2},
		{fmt.Errorf("%w: %w", graphics.ErrLoader, errors.New("glGetString")), 3},
		{fmt.Errorf("%w: bad width", errConfig), 4},
		{errors.New("failed to upload vertices"), 1},
	}
	for _, tt := range tests {
		if have := exitCode(tt.err); have != tt.want {
			t.Errorf("exitCode(%v): expected %d, have %d", tt.err, tt.want, have)
		}
	}
}

func TestExecuteHeadless(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute([]string{"--headless", "--frames=2", "--background=dark"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, have %d (stderr %q)", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "OpenGL ") || !strings.Contains(stdout.String(), ", GLSL ") {
		t.Errorf("expected version line on stdout, have %q", stdout.String())
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	tests := [][]string{
		{"--headless", "--width=0"},
		{"--headless", "--background=purple"},
		{"--headless", "--width=abc"},
		{"--headless", "--no-such-flag"},
		{"--headless", "extra"},
		{"--headless", "--config=" + filepath.Join(t.TempDir(), "missing.yaml")},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := execute(args, &stdout, &stderr); code != 4 {
			t.Errorf("%v: expected exit 4, have %d", args, code)
		}
		if stdout.Len() != 0 {
			t.Errorf("%v: expected nothing on stdout, have %q", args, stdout.String())
		}
		if !strings.Contains(stderr.String(), "invalid configuration") {
			t.Errorf("%v: expected the error on stderr, have %q", args, stderr.String())
		}
	}
}

func TestExecuteConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	cfg := "headless: true\nframes: 1\nwidth: 320\nheight: 200\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := execute([]string{"--config=" + path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, have %d (stderr %q)", code, stderr.String())
	}
}
