package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/panzoom"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func parsedFlags(t *testing.T, args ...string) (*optionFlags, *cobra.Command) {
	t.Helper()
	var f optionFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return &f, cmd
}

func TestOptionFlags_Defaults(t *testing.T) {
	f, cmd := parsedFlags(t)
	opts, err := f.load(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.CanvasOriginWidth != 2000 || opts.CanvasOriginHeight != 1000 {
		t.Errorf("canvas = %vx%v", opts.CanvasOriginWidth, opts.CanvasOriginHeight)
	}
	if !opts.Movable() || opts.RequireSpaceToDrag {
		t.Errorf("opts = %+v", opts)
	}
}

func TestOptionFlags_OverrideConfig(t *testing.T) {
	path := writeFile(t, t.TempDir(), "panzoom.yaml",
		"canvasOriginWidth: 1200\ncanvasOriginHeight: 800\nkeepInside: 0.25\nrequireSpaceToDrag: true\n")
	f, cmd := parsedFlags(t, "--config", path, "--canvas-width", "640", "--movable=false")
	opts, err := f.load(cmd)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if opts.CanvasOriginWidth != 640 {
		t.Errorf("width = %v, want flag value 640", opts.CanvasOriginWidth)
	}
	if opts.CanvasOriginHeight != 800 {
		t.Errorf("height = %v, want file value 800", opts.CanvasOriginHeight)
	}
	if opts.KeepInside != 0.25 || !opts.RequireSpaceToDrag {
		t.Errorf("file values lost: %+v", opts)
	}
	if opts.Movable() {
		t.Error("--movable=false not applied")
	}
}

func TestOptionFlags_Invalid(t *testing.T) {
	f, cmd := parsedFlags(t, "--keep-inside", "0.9")
	if _, err := f.load(cmd); err == nil || !strings.Contains(err.Error(), "keepInside") {
		t.Errorf("err = %v, want keepInside error", err)
	}
}

func TestReloadChannel_RequiresConfig(t *testing.T) {
	f, cmd := parsedFlags(t)
	if ch, err := f.reloadChannel(cmd, false); ch != nil || err != nil {
		t.Errorf("without --watch got %v, %v", ch, err)
	}
	if _, err := f.reloadChannel(cmd, true); err == nil {
		t.Error("--watch without --config should fail")
	}
}

func TestWatchOptions(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "panzoom.yaml", "canvasOriginWidth: 100\ncanvasOriginHeight: 100\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	loaded := make(chan panzoom.Options, 4)
	errs := make(chan error, 4)
	if err := watchOptions(ctx, path, func(o panzoom.Options) { loaded <- o }, func(err error) { errs <- err }); err != nil {
		t.Fatalf("watchOptions: %v", err)
	}

	writeFile(t, dir, "other.yaml", "ignored: true\n")
	writeFile(t, dir, "panzoom.yaml", "canvasOriginWidth: 300\ncanvasOriginHeight: 200\n")

	select {
	case o := <-loaded:
		if o.CanvasOriginWidth != 300 || o.CanvasOriginHeight != 200 {
			t.Errorf("loaded = %vx%v, want 300x200", o.CanvasOriginWidth, o.CanvasOriginHeight)
		}
	case err := <-errs:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchOptions_MissingDir(t *testing.T) {
	err := watchOptions(context.Background(), filepath.Join(t.TempDir(), "nope", "x.yaml"),
		func(panzoom.Options) {}, func(error) {})
	if err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestScriptCommand_Headless(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "script.json", `{"steps": [
		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 460, "toY": 330, "frames": 4},
		{"action": "wheel", "x": 400, "y": 300, "deltaY": -10, "mods": ["ctrl"]},
		{"action": "screenshot", "label": "done"}
	]}`)
	shots := filepath.Join(dir, "shots")

	cmd := newScriptCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{script, "--width", "800", "--height", "600", "--screenshots", shots})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "scale 0.4800") {
		t.Errorf("output missing scale:\n%s", got)
	}
	if !strings.Contains(got, "screenshot "+shots) {
		t.Errorf("output missing screenshot path:\n%s", got)
	}
	entries, err := os.ReadDir(shots)
	if err != nil || len(entries) != 1 || !strings.HasSuffix(entries[0].Name(), "_done.png") {
		t.Errorf("screenshots = %v, %v", entries, err)
	}
}

func TestRunHeadless_Transform(t *testing.T) {
	runner, err := panzoom.LoadScript([]byte(`{"steps": [{"action": "key", "key": 187, "mods": ["ctrl"]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := runHeadless(&out, runner, panzoom.DefaultOptions(2000, 1000), 800, 600, t.TempDir()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	// The zoom animation finishes before the run ends.
	if !strings.Contains(out.String(), "scale 0.4500") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panzoom.yaml")

	run := func(args ...string) error {
		cmd := newInitCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	if err := run(path, "--canvas-width", "1500", "--movable=false"); err != nil {
		t.Fatalf("init: %v", err)
	}
	opts, err := panzoom.LoadOptionsFile(path)
	if err != nil {
		t.Fatalf("load written file: %v", err)
	}
	if opts.CanvasOriginWidth != 1500 || opts.Movable() {
		t.Errorf("written options = %+v", opts)
	}

	if err := run(path); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second init err = %v, want already exists", err)
	}
	if err := run(path, "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}
