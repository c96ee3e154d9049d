// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var cmdEnv = []string{
	"TASKLIST_LOG_DIR", "TASKLIST_LOG_LEVEL", "TASKLIST_LOG_FORMAT",
	"TASKLIST_LOG_TIMESTAMPS", "TASKLIST_LOG_CALLER", "TASKLIST_DARK_MODE",
	"TASKLIST_FILTER", "TASKLIST_BLUR_POLICY", "TASKLIST_PLACEHOLDER",
}

// isolate gives the test an empty home and working directory so no real
// config file is picked up.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range cmdEnv {
		t.Setenv(name, "")
	}
	t.Chdir(work)
	return home, work
}

type captured struct {
	out, err bytes.Buffer
}

func (c *captured) streams(stdin string) streams {
	return streams{in: strings.NewReader(stdin), out: &c.out, err: &c.err}
}

func runCaptured(t *testing.T, stdin string, args ...string) (*captured, error) {
	t.Helper()
	c := &captured{}
	err := run(context.Background(), args, c.streams(stdin))
	return c, err
}

const scenarioScript = `{
  "version": 1,
  "intents": [
    {"kind": "add", "text": "Buy milk"},
    {"kind": "add", "text": "Walk dog"},
    {"kind": "toggle", "task": 1},
    {"kind": "filter", "text": "done"}
  ]
}`

func writeScript(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "script.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr string
	}{
		{name: "help flag", args: []string{"--help"}, wantOut: "Usage:"},
		{name: "short help flag", args: []string{"-h"}, wantOut: "Commands:"},
		{name: "help command", args: []string{"help"}, wantOut: "Global Options:"},
		{name: "version flag", args: []string{"-v"}, wantOut: "tasklist version dev"},
		{name: "version command", args: []string{"version"}, wantOut: "tasklist version"},
		{name: "unknown command", args: []string{"unknown-command"}, wantErr: "unknown command"},
		{name: "invalid filter flag", args: []string{"-filter", "later", "version"}, wantErr: "invalid status filter"},
		{name: "replay without file", args: []string{"replay"}, wantErr: "requires a script file"},
		{name: "tui with arguments", args: []string{"tui", "extra"}, wantErr: "unexpected arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := runCaptured(t, "", tt.args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error: got %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(c.out.String(), tt.wantOut) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, c.out.String())
			}
		})
	}
}

func TestReplayCommand(t *testing.T) {
	_, work := isolate(t)
	path := writeScript(t, work, scenarioScript)

	c, err := runCaptured(t, "", "replay", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	out := c.out.String()
	for _, want := range []string{"Filter: done", "[x] Buy milk", "Total: 2  Todo: 1  Done: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Walk dog") {
		t.Errorf("done filter should hide Walk dog:\n%s", out)
	}
}

func TestReplayCommandJSONFromStdin(t *testing.T) {
	isolate(t)

	c, err := runCaptured(t, scenarioScript, "replay", "-json", "-")
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	var view struct {
		Filter string `json:"filter"`
		Tasks  []struct {
			Text      string `json:"text"`
			Completed bool   `json:"completed"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(c.out.Bytes(), &view); err != nil {
		t.Fatalf("decode output: %v\n%s", err, c.out.String())
	}
	if view.Filter != "done" {
		t.Errorf("filter: got %q, want done", view.Filter)
	}
	if len(view.Tasks) != 1 || view.Tasks[0].Text != "Buy milk" || !view.Tasks[0].Completed {
		t.Errorf("tasks: got %+v", view.Tasks)
	}
}

func TestReplayExistingFileAsCommand(t *testing.T) {
	_, work := isolate(t)
	writeScript(t, work, scenarioScript)

	c, err := runCaptured(t, "", "script.json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(c.out.String(), "[x] Buy milk") {
		t.Errorf("unexpected output:\n%s", c.out.String())
	}
}

func TestReplayCommandInvalidScript(t *testing.T) {
	_, work := isolate(t)
	path := writeScript(t, work, `{"version":1,"intents":[{"kind":"shout"}]}`)

	_, err := runCaptured(t, "", "replay", path)
	if err == nil {
		t.Fatal("expected error for unknown intent kind")
	}
	if !strings.Contains(err.Error(), "intents[0].kind") {
		t.Errorf("error should name the bad field, got %v", err)
	}
}

func TestReplayCommandLogsToStderr(t *testing.T) {
	_, work := isolate(t)
	path := writeScript(t, work, scenarioScript)

	c, err := runCaptured(t, "", "-log-level", "debug", "-log-format", "logfmt", "replay", path)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !strings.Contains(c.err.String(), "kind=toggle") {
		t.Errorf("expected intent log on stderr, got:\n%s", c.err.String())
	}
	if strings.Contains(c.out.String(), "kind=") {
		t.Errorf("logs leaked to stdout:\n%s", c.out.String())
	}
}

func TestDoctorCommand(t *testing.T) {
	_, work := isolate(t)
	logDir := filepath.Join(work, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("passes with valid script", func(t *testing.T) {
		path := writeScript(t, work, scenarioScript)
		c, err := runCaptured(t, "", "-log-dir", logDir, "doctor", path)
		if err != nil {
			t.Fatalf("doctor: %v\n%s", err, c.out.String())
		}
		out := c.out.String()
		if !strings.Contains(out, "Valid (4 intents)") {
			t.Errorf("missing script check:\n%s", out)
		}
		if !strings.Contains(out, "All checks passed") {
			t.Errorf("missing summary:\n%s", out)
		}
	})

	t.Run("fails with invalid script", func(t *testing.T) {
		path := writeScript(t, work, `{"version":1,"intents":[{"kind":"toggle"}]}`)
		c, err := runCaptured(t, "", "-log-dir", logDir, "doctor", path)
		if err == nil {
			t.Fatal("expected doctor to fail")
		}
		if !strings.Contains(c.out.String(), "intents[0]") {
			t.Errorf("missing error path:\n%s", c.out.String())
		}
	})

	t.Run("warns on missing log dir", func(t *testing.T) {
		c, err := runCaptured(t, "", "-log-dir", filepath.Join(work, "nope"), "doctor")
		if err != nil {
			t.Fatalf("doctor: %v", err)
		}
		if !strings.Contains(c.out.String(), "Not found") {
			t.Errorf("expected log dir warning:\n%s", c.out.String())
		}
	})
}

func TestConfigCommand(t *testing.T) {
	_, work := isolate(t)
	if err := os.WriteFile(filepath.Join(work, "tasklist.toml"), []byte("filter = \"todo\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TASKLIST_DARK_MODE", "true")

	c, err := runCaptured(t, "", "-blur", "cancel", "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	out := c.out.String()
	for _, want := range []string{"tasklist.toml", "# project", "# env", "# flag", "# default"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	c, err = runCaptured(t, "", "config", "-example")
	if err != nil {
		t.Fatalf("config -example: %v", err)
	}
	if !strings.Contains(c.out.String(), "blur_policy") {
		t.Errorf("example missing blur_policy:\n%s", c.out.String())
	}
}

func TestLogsCommand(t *testing.T) {
	_, work := isolate(t)
	logDir := filepath.Join(work, "logs")

	c, err := runCaptured(t, "", "-log-dir", logDir, "logs")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if !strings.Contains(c.out.String(), "No log files found.") {
		t.Errorf("unexpected output: %s", c.out.String())
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, "20260101-120000-1.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err = runCaptured(t, "", "-log-dir", logDir, "logs", "-n", "2")
	if err != nil {
		t.Fatalf("logs -n: %v", err)
	}
	if got := c.out.String(); got != "two\nthree\n" {
		t.Errorf("tail: got %q, want %q", got, "two\nthree\n")
	}

	c, err = runCaptured(t, "", "-log-dir", logDir, "logs", "-list")
	if err != nil {
		t.Fatalf("logs -list: %v", err)
	}
	if !strings.Contains(c.out.String(), logPath) {
		t.Errorf("list missing %s:\n%s", logPath, c.out.String())
	}
}
