package taskplot

import (
	"errors"
	"testing"
)

func TestTaskTypeName_ValidIDs(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "none"},
		{1, "sort"},
		{2, "self"},
		{13, "send"},
		{14, "recv"},
		{21, "count"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := TaskTypeName(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("TaskTypeName(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestSubTypeName_ValidIDs(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "none"},
		{1, "density"},
		{3, "force"},
		{7, "xv"},
		{8, "rho"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := SubTypeName(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SubTypeName(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestTaskTypeName_OutOfRange_IsUnknownCategory(t *testing.T) {
	for _, id := range []int{-1, len(TaskTypes), 999} {
		if _, err := TaskTypeName(id); !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("TaskTypeName(%d) error = %v, want ErrUnknownCategory", id, err)
		}
	}
}

func TestSubTypeName_OutOfRange_IsUnknownCategory(t *testing.T) {
	for _, id := range []int{-1, len(SubTypes), 999} {
		if _, err := SubTypeName(id); !errors.Is(err, ErrUnknownCategory) {
			t.Errorf("SubTypeName(%d) error = %v, want ErrUnknownCategory", id, err)
		}
	}
}

func TestFullTypes_OnlyUseSubtypedTasks(t *testing.T) {
	// Every composite key must belong to a task type whose subtype is
	// meaningful, otherwise Lookup could never reach it.
	for _, full := range FullTypes {
		found := false
		for taskType := range subtypedTasks {
			if len(full) > len(taskType) && full[:len(taskType)+1] == taskType+"/" {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("full type %q does not start with a subtyped task type", full)
		}
	}
}
