package output_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"tasklist/internal/config"
	"tasklist/internal/output"
	"tasklist/internal/service"
	"tasklist/internal/testutil"
)

func mixedView() service.View {
	return service.View{
		Tasks: []service.Task{
			{ID: 1, Text: "Buy milk"},
			{ID: 2, Text: "Walk the dog", Completed: true},
			{ID: 12, Text: "Call mom"},
		},
		Input: "half typed",
	}
}

func TestFormatView_Empty(t *testing.T) {
	var buf bytes.Buffer
	output.FormatView(&buf, service.View{}, output.Options{})
	testutil.Golden(t, "view_empty", buf.Bytes())
}

func TestFormatView_EmptyQuiet(t *testing.T) {
	var buf bytes.Buffer
	output.FormatView(&buf, service.View{}, output.Options{Quiet: true})

	if strings.Contains(buf.String(), "no tasks") {
		t.Errorf("quiet mode should suppress the empty notice, got %q", buf.String())
	}
}

func TestFormatView_Mixed(t *testing.T) {
	var buf bytes.Buffer
	output.FormatView(&buf, mixedView(), output.Options{})
	testutil.Golden(t, "view_mixed", buf.Bytes())
}

func TestFormatView_MixedColor(t *testing.T) {
	var buf bytes.Buffer
	output.FormatView(&buf, mixedView(), output.Options{Color: true})
	testutil.Golden(t, "view_mixed_color", buf.Bytes())
}

func TestFormatTask_StrikeFollowsCompletion(t *testing.T) {
	task := service.Task{ID: 3, Text: "X"}

	var buf bytes.Buffer
	output.FormatTask(&buf, task, false)
	if got := buf.String(); got != "   3  [ ] X\n" {
		t.Errorf("expected plain row, got %q", got)
	}

	buf.Reset()
	task.Completed = true
	output.FormatTask(&buf, task, false)
	if got := buf.String(); got != "   3  [x] ~~X~~\n" {
		t.Errorf("expected struck-through row, got %q", got)
	}
}

func TestFormatTask_NewlinesFlattened(t *testing.T) {
	var buf bytes.Buffer
	output.FormatTask(&buf, service.Task{ID: 1, Text: "two\nlines"}, false)

	if got := buf.String(); got != "   1  [ ] two lines\n" {
		t.Errorf("expected single line row, got %q", got)
	}
}

func TestFormatYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := output.FormatYAML(&buf, mixedView()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"tasks:", "text: Buy milk", "completed: true", "id: 12", "input: half typed"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected YAML to contain %q, got:\n%s", want, got)
		}
	}
}

func TestFormatYAML_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := output.FormatYAML(&buf, service.View{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "tasks: []") {
		t.Errorf("expected empty sequence, got:\n%s", buf.String())
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	if !output.UseColor(config.ColorAlways, &buf) {
		t.Error("always should enable color")
	}
	if output.UseColor(config.ColorNever, os.Stdout) {
		t.Error("never should disable color")
	}
	if output.UseColor(config.ColorAuto, &buf) {
		t.Error("auto should disable color for a non-terminal writer")
	}
}
