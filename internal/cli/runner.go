package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Keegan-JunBugg/tasks/internal/store"
	"github.com/Keegan-JunBugg/tasks/internal/task"
	"github.com/Keegan-JunBugg/tasks/internal/tui"
	"github.com/Keegan-JunBugg/tasks/internal/ui"
)

// Options tune runner behavior from root flags and config.
type Options struct {
	File     string // path of the JSON task file
	Assignee string // default assignee for new tasks
	Group    bool   // list grouped by pending/done
	Verbose  bool   // debug trace on stderr
}

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "tasks",
	ReportTimestamp: false,
})

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if opt.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	case "ls":
		return doList(a, opt)
	case "add":
		return doAdd(a, opt)
	case "done":
		return doSetDone(a, opt, true)
	case "undone":
		return doSetDone(a, opt, false)
	case "edit":
		return doEdit(a, opt)
	case "rm":
		return doRemove(a, opt)
	case "tui":
		return doTUI(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tasks - a tiny task tracker

Usage:
  tasks <subcommand> [args]

Subcommands:
  add [-n note] [-p priority] [-a assignee] <title...>
                       Add a task (priority 1=High 2=Med 3=Low, default 2)
  ls [-pending]        List tasks (all, or pending only)
  done [-pending] <index>
                       Mark the task at 1-based index complete
  undone [-pending] <index>
                       Mark the task at 1-based index not complete
  edit [-t title] [-n note] [-p priority] [-a assignee] <index>
                       Change the given fields of the task at index
  rm [-pending] <index>
                       Remove the task at 1-based index
  tui                  Interactive list

With -pending, the index refers to the pending-only listing (tasks ls -pending).

Examples:
  tasks add -p 1 "Buy milk"
  tasks ls -pending
  tasks done 2
  tasks edit -a Sam 2
  tasks rm -pending 1
`)
}

// -------------- subcommand impls ----------------

func loadStore(opt Options) (*store.Store, int) {
	s := store.New()
	if err := s.Load(opt.File); err != nil {
		ui.Fail("load: " + err.Error())
		return nil, 1
	}
	logger.Debug("loaded", "file", opt.File, "tasks", s.Len())
	return s, 0
}

func saveStore(s *store.Store, opt Options) int {
	if err := s.Save(opt.File); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	logger.Debug("saved", "file", opt.File, "tasks", s.Len())
	return 0
}

func doAdd(args []string, opt Options) int {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	note := fs.String("n", "", "note")
	prio := fs.String("p", "", "priority 1-3")
	assignee := fs.String("a", "", "assignee")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	title := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if title == "" {
		ui.Fail("usage: tasks add [-n note] [-p priority] [-a assignee] <title...>")
		return 2
	}

	// A non-numeric priority falls back to the default rather than failing.
	pr := task.PriorityMed
	if *prio != "" {
		if n, err := strconv.Atoi(*prio); err == nil {
			pr = n
		}
	}
	if *assignee == "" {
		*assignee = opt.Assignee
	}

	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	t := task.New(title, *note, pr, *assignee)
	s.Add(t)
	if code := saveStore(s, opt); code != 0 {
		return code
	}
	ui.OK("added: " + t.Display())
	return 0
}

func doList(args []string, opt Options) int {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	pending := fs.Bool("pending", false, "only pending tasks")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	all := s.Tasks(true)
	d, p := stats(all)

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), d,
		ui.PendingStyle.Render("•"), p,
		ui.AccentStyle.Render("Total"), len(all),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.MutedStyle.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	switch {
	case *pending:
		lines = append(lines, taskLines(s.Tasks(false))...)
	case opt.Group:
		lines = append(lines, groupLines(all)...)
	default:
		lines = append(lines, taskLines(all)...)
	}
	ui.Panel(lines)
	return 0
}

func doSetDone(args []string, opt Options, done bool) int {
	name := "done"
	if !done {
		name = "undone"
	}
	idx, pending, code := indexArgs(name, args)
	if code != 0 {
		return code
	}

	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	i, code := resolveIndex(s, idx, pending, name)
	if code != 0 {
		return code
	}
	s.SetDone(i, done)
	if code := saveStore(s, opt); code != 0 {
		return code
	}
	ui.OK(name + ": " + s.Tasks(true)[i].Display())
	return 0
}

func doEdit(args []string, opt Options) int {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	title := fs.String("t", "", "new title")
	note := fs.String("n", "", "new note")
	prio := fs.Int("p", 0, "new priority 1-3")
	assignee := fs.String("a", "", "new assignee")
	pending := fs.Bool("pending", false, "index refers to the pending listing")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		ui.Fail("usage: tasks edit [-t title] [-n note] [-p priority] [-a assignee] <index>")
		return 2
	}
	idx, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		ui.Fail("edit: not a number: " + fs.Arg(0))
		return 2
	}

	// Only flags that were actually set become edits.
	var e store.Edit
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			e.Title = title
		case "n":
			e.Note = note
		case "p":
			e.Priority = prio
		case "a":
			e.Assignee = assignee
		}
	})
	if e == (store.Edit{}) {
		ui.Fail("edit: nothing to change")
		return 2
	}

	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	i, code := resolveIndex(s, idx, *pending, "edit")
	if code != 0 {
		return code
	}
	s.EditAt(i, e)
	if code := saveStore(s, opt); code != 0 {
		return code
	}
	ui.OK("edited: " + s.Tasks(true)[i].Display())
	return 0
}

func doRemove(args []string, opt Options) int {
	idx, pending, code := indexArgs("rm", args)
	if code != 0 {
		return code
	}

	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	i, code := resolveIndex(s, idx, pending, "rm")
	if code != 0 {
		return code
	}
	removed := s.Tasks(true)[i]
	s.RemoveAt(i)
	if code := saveStore(s, opt); code != 0 {
		return code
	}
	ui.OK("removed: " + removed.Display())
	return 0
}

func doTUI(opt Options) int {
	s, code := loadStore(opt)
	if code != 0 {
		return code
	}
	out, changed, err := tui.Run(s.Tasks(true), opt.Assignee)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if changed {
		next := store.New()
		for _, t := range out {
			next.Add(t)
		}
		if code := saveStore(next, opt); code != 0 {
			return code
		}
		ui.OK("saved")
	}
	return 0
}

// -------------- index handling ----------------

// indexArgs parses the shared "[-pending] <index>" argument shape.
func indexArgs(name string, args []string) (idx int, pending bool, code int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	p := fs.Bool("pending", false, "index refers to the pending listing")
	if err := fs.Parse(args); err != nil {
		return 0, false, 2
	}
	if fs.NArg() != 1 {
		ui.Fail(fmt.Sprintf("usage: tasks %s [-pending] <index>", name))
		return 0, false, 2
	}
	n, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		ui.Fail(name + ": not a number: " + fs.Arg(0))
		return 0, false, 2
	}
	return n, *p, 0
}

// resolveIndex turns a 1-based user index into a 0-based index into the
// full list. With pending set, the user index counts only pending tasks
// and is translated back to its position in the full list.
func resolveIndex(s *store.Store, userIndex int, pending bool, name string) (int, int) {
	visible := s.Len()
	if pending {
		visible = len(s.Tasks(false))
	}
	if userIndex < 1 || userIndex > visible {
		ui.Fail(fmt.Sprintf("%s: index out of range: have %d, got %d", name, visible, userIndex))
		ui.Hint("Hint: run `tasks ls` to see valid indexes")
		return 0, 2
	}
	i := userIndex - 1
	if pending {
		i = fullIndex(s.Tasks(true), i)
	}
	return i, 0
}

// fullIndex maps a 0-based position in the pending-only view back to the
// 0-based position in the full list. Returns -1 if viewIdx is past the
// last pending task.
func fullIndex(all []task.Task, viewIdx int) int {
	seen := 0
	for i, t := range all {
		if t.Done {
			continue
		}
		if seen == viewIdx {
			return i
		}
		seen++
	}
	return -1
}

// -------------- rendering helpers --------------

func stats(tasks []task.Task) (done, pending int) {
	for _, t := range tasks {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

func taskLines(tasks []task.Task) []string {
	if len(tasks) == 0 {
		return []string{ui.MutedStyle.Render("no tasks")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.BoxUnchecked
		boxStyle := ui.MutedStyle
		title := t.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		if t.Done {
			box, boxStyle = ui.BoxChecked, ui.SuccessStyle
			title = ui.DoneStyle.Render(title)
		}
		meta := fmt.Sprintf("(%s · %s)", t.PriorityLabel(), t.Assignee)
		line := fmt.Sprintf("%s %s %s %s",
			ui.MutedStyle.Render(idx), boxStyle.Render(box), title, ui.MutedStyle.Render(meta))
		if t.Note != "" {
			line += ui.MutedStyle.Render("  · " + t.Note)
		}
		out = append(out, line)
	}
	return out
}

func groupLines(tasks []task.Task) []string {
	var pend, done []task.Task
	for _, t := range tasks {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	var lines []string
	lines = append(lines, ui.AccentStyle.Render("Pending"))
	lines = append(lines, taskLines(pend)...)
	lines = append(lines, "")
	lines = append(lines, ui.AccentStyle.Render("Done"))
	lines = append(lines, taskLines(done)...)
	return lines
}
