package cli

import (
	"path/filepath"
	"testing"

	"github.com/Keegan-JunBugg/tasks/internal/store"
	"github.com/Keegan-JunBugg/tasks/internal/task"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	return Options{
		File:     filepath.Join(t.TempDir(), "tasks.json"),
		Assignee: task.DefaultAssignee,
	}
}

func loadTasks(t *testing.T, opt Options) []task.Task {
	t.Helper()
	s := store.New()
	if err := s.Load(opt.File); err != nil {
		t.Fatalf("load %s: %v", opt.File, err)
	}
	return s.Tasks(true)
}

func TestFullIndex(t *testing.T) {
	all := []task.Task{
		task.New("first", "", 1, ""),
		task.New("second", "", 2, ""),
		task.New("third", "", 3, ""),
	}
	all[1].MarkDone()

	tests := []struct {
		view, want int
	}{
		{0, 0},
		{1, 2},
		{2, -1},
		{-1, -1},
	}
	for _, tt := range tests {
		if got := fullIndex(all, tt.view); got != tt.want {
			t.Errorf("fullIndex(%d) = %d, want %d", tt.view, got, tt.want)
		}
	}
}

func TestRunAddClampsPriority(t *testing.T) {
	opt := testOptions(t)
	if code := Run([]string{"add", "-p", "5", "Buy milk"}, opt); code != 0 {
		t.Fatalf("add exit code = %d", code)
	}
	got := loadTasks(t, opt)
	if len(got) != 1 {
		t.Fatalf("got %d tasks", len(got))
	}
	if got[0].Title != "Buy milk" || got[0].Priority != task.PriorityLow {
		t.Errorf("task = %+v", got[0])
	}
}

func TestRunAddBadPriorityFallsBack(t *testing.T) {
	opt := testOptions(t)
	if code := Run([]string{"add", "-p", "high", "x"}, opt); code != 0 {
		t.Fatalf("add exit code = %d", code)
	}
	if got := loadTasks(t, opt)[0].Priority; got != task.PriorityMed {
		t.Errorf("priority = %d, want %d", got, task.PriorityMed)
	}
}

func TestRunDoneAndUndone(t *testing.T) {
	opt := testOptions(t)
	Run([]string{"add", "a"}, opt)
	Run([]string{"add", "b"}, opt)

	if code := Run([]string{"done", "2"}, opt); code != 0 {
		t.Fatalf("done exit code = %d", code)
	}
	got := loadTasks(t, opt)
	if got[0].Done || !got[1].Done {
		t.Errorf("after done 2: %+v", got)
	}

	if code := Run([]string{"undone", "2"}, opt); code != 0 {
		t.Fatalf("undone exit code = %d", code)
	}
	if got := loadTasks(t, opt); got[1].Done {
		t.Errorf("after undone 2: %+v", got)
	}
}

func TestRunPendingIndexTranslation(t *testing.T) {
	opt := testOptions(t)
	Run([]string{"add", "first"}, opt)
	Run([]string{"add", "second"}, opt)
	Run([]string{"add", "third"}, opt)
	Run([]string{"done", "2"}, opt)

	// pending view is [first, third]; view index 2 is "third",
	// which sits at underlying index 2
	if code := Run([]string{"done", "-pending", "2"}, opt); code != 0 {
		t.Fatalf("done -pending exit code = %d", code)
	}
	got := loadTasks(t, opt)
	if got[0].Done {
		t.Error("first should still be pending")
	}
	if !got[2].Done {
		t.Error("third should be done")
	}
}

func TestRunRemove(t *testing.T) {
	opt := testOptions(t)
	Run([]string{"add", "a"}, opt)
	Run([]string{"add", "b"}, opt)

	if code := Run([]string{"rm", "1"}, opt); code != 0 {
		t.Fatalf("rm exit code = %d", code)
	}
	got := loadTasks(t, opt)
	if len(got) != 1 || got[0].Title != "b" {
		t.Errorf("after rm 1: %+v", got)
	}
}

func TestRunEdit(t *testing.T) {
	opt := testOptions(t)
	Run([]string{"add", "-n", "old note", "a"}, opt)

	if code := Run([]string{"edit", "-t", "renamed", "-p", "1", "1"}, opt); code != 0 {
		t.Fatalf("edit exit code = %d", code)
	}
	got := loadTasks(t, opt)[0]
	if got.Title != "renamed" || got.Priority != task.PriorityHigh {
		t.Errorf("after edit: %+v", got)
	}
	// untouched fields survive
	if got.Note != "old note" {
		t.Errorf("note = %q", got.Note)
	}
}

func TestRunUsageErrors(t *testing.T) {
	opt := testOptions(t)
	Run([]string{"add", "only"}, opt)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown subcommand", []string{"frobnicate"}},
		{"add without title", []string{"add"}},
		{"done out of range", []string{"done", "9"}},
		{"done not a number", []string{"done", "x"}},
		{"rm out of range", []string{"rm", "0"}},
		{"edit without changes", []string{"edit", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := Run(tt.args, opt); code != 2 {
				t.Errorf("exit code = %d, want 2", code)
			}
		})
	}

	// failed commands leave the file untouched
	if got := loadTasks(t, opt); len(got) != 1 || got[0].Title != "only" {
		t.Errorf("store changed by failed commands: %+v", got)
	}
}
