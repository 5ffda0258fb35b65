package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreview_Stdout(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	draft := writeDraft(t, root, "post.txt",
		"title: Hello World\ntag: go\nSome //emphasis//.\n\n![assets/cat.png]")

	code, stdout, stderr := run(t, "preview", draft, "--root", root)
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	for _, want := range []string{"<!DOCTYPE html>", "<em>emphasis</em>", "file://"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !fileExists(draft) {
		t.Error("preview must not delete the draft")
	}
	if fileExists(filepath.Join(root, "_posts")) {
		t.Error("preview must not write a post")
	}
}

func TestPreview_OutputFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	draft := writeDraft(t, root, "post.txt", "title: T\ntag:\nbody")
	out := filepath.Join(root, "preview", "t.html")

	code, stdout, stderr := run(t, "preview", draft, "-o", out, "--style", "dark")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("stdout should be empty when -o is set, got %q", stdout)
	}
	if !strings.Contains(readFile(t, out), "<title>T</title>") {
		t.Error("preview file missing title")
	}
	if !strings.Contains(stderr, "preview written") {
		t.Errorf("stderr should report the preview, got %q", stderr)
	}
}

func TestPreview_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	draft := writeDraft(t, root, "post.txt", "title: T\ntag:\nbody")

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{name: "unknown style", args: []string{"preview", draft, "--style", "neon"}, wantCode: ExitUsage},
		{name: "style with path", args: []string{"preview", draft, "--style", "../x"}, wantCode: ExitUsage},
		{name: "missing draft", args: []string{"preview", filepath.Join(root, "none.txt")}, wantCode: ExitIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := run(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
		})
	}
}

func TestPreview_OutputDirectory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		output func(root string) string
	}{
		{
			name: "existing directory",
			output: func(root string) string {
				dir := filepath.Join(root, "out")
				if err := os.Mkdir(dir, 0o755); err != nil {
					t.Fatal(err)
				}
				return dir
			},
		},
		{
			name:   "trailing separator",
			output: func(root string) string { return filepath.Join(root, "new") + string(filepath.Separator) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			draft := writeDraft(t, root, "post.txt", "title: Hello World\ntag:\nbody")
			out := tt.output(root)

			code, _, stderr := run(t, "preview", draft, "-o", out)
			if code != ExitSuccess {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr)
			}
			page := filepath.Join(out, "2024-01-01-hello-world.html")
			if !strings.Contains(readFile(t, page), "<title>Hello World</title>") {
				t.Error("preview page missing title")
			}
		})
	}
}

func TestPreview_UnknownStyleListsStyles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	draft := writeDraft(t, root, "post.txt", "title: T\ntag:\nbody")

	code, _, stderr := run(t, "preview", draft, "--style", "neon")
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr, "available styles: dark, default") {
		t.Errorf("stderr should list the styles, got %q", stderr)
	}
}

func TestPreview_HelpListsStyles(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, "help", "preview")
	if code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "Style: dark, default") {
		t.Errorf("preview help should list the styles, got:\n%s", stdout)
	}
}
