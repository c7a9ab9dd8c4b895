package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

const logo = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32">
<rect width="32" height="32" fill="#336699"/>
<circle cx="16" cy="16" r="8" fill="#ffffff"/>
</svg>`

func setup(t *testing.T, withLogo bool) {
	t.Helper()
	color.NoColor = true
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "public"), 0o755); err != nil {
		t.Fatal(err)
	}
	if withLogo {
		if err := os.WriteFile(filepath.Join(dir, "public", "favicon.svg"), []byte(logo), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
}

func TestRootCmd(t *testing.T) {
	setup(t, true)
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	want := []string{
		"render public/favicon.svg (256px)",
		"wrote  public/favicon.ico (16x16, 32x32, 48x48, 64x64)",
		"wrote  public/logo192.png (192x192)",
		"wrote  public/logo512.png (512x512)",
	}
	got := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout.String(), strings.Join(want, "\n"))
	}
	for _, p := range []string{"public/favicon.ico", "public/logo192.png", "public/logo512.png"} {
		if _, err := os.Stat(p); err != nil {
			t.Error(err)
		}
	}
}

func TestRootCmdMissingSource(t *testing.T) {
	setup(t, false)
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error without public/favicon.svg")
	}
	if !strings.Contains(stderr.String(), "svg source not found") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRootCmdRejectsArgs(t *testing.T) {
	setup(t, true)
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{"logo.svg"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for a positional argument")
	}
	if _, err := os.Stat("public/favicon.ico"); !os.IsNotExist(err) {
		t.Errorf("nothing should be written: %v", err)
	}
}

func TestRootCmdWarnsNotSquare(t *testing.T) {
	setup(t, false)
	const wide = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 32">` +
		`<rect width="64" height="32" fill="#336699"/></svg>`
	if err := os.WriteFile(filepath.Join("public", "favicon.svg"), []byte(wide), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v\n%s", err, stderr.String())
	}
	if got := stderr.String(); !strings.Contains(got, "level=WARN") || !strings.Contains(got, "source is not square") {
		t.Errorf("stderr = %q", got)
	}
	if strings.Contains(stdout.String(), "not square") {
		t.Errorf("warning leaked to stdout: %q", stdout.String())
	}
}
