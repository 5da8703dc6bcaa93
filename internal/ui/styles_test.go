package ui

import "testing"

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name  string
		done  int
		total int
		width int
		want  string
	}{
		{"empty", 0, 4, 4, "[░░░░] 0/4"},
		{"half", 2, 4, 4, "[██░░] 2/4"},
		{"full", 4, 4, 4, "[████] 4/4"},
		{"zero total", 0, 0, 4, "[░░░░] 0/0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
				t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
			}
		})
	}
}

func TestProgressBarNeverOverflows(t *testing.T) {
	got := ProgressBar(10, 4, 4)
	if want := "[████] 10/4"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
