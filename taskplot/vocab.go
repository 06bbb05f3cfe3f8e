package taskplot

import (
	"errors"
	"fmt"
)

// Errors reported by the pipeline. Fatal for the whole run: a diagram set is
// produced completely or not at all.
var (
	// ErrMalformedInput marks a trace table that cannot be interpreted at
	// all (non-numeric fields, missing columns, no rows).
	ErrMalformedInput = errors.New("malformed trace table")
	// ErrEmptyWindow means no rank had a qualifying task row and no time
	// limit was given, so the x-axis span cannot be determined.
	ErrEmptyWindow = errors.New("no task rows to derive a time window from")
	// ErrUnknownCategory marks a type or subtype id outside the fixed
	// vocabularies, i.e. a producer/consumer version mismatch.
	ErrUnknownCategory = errors.New("unknown task category")
)

// TaskTypes lists the scheduler task categories, indexed as in the trace
// producer's task enumeration. Order is part of the wire format.
var TaskTypes = []string{
	"none", "sort", "self", "pair", "sub_self", "sub_pair",
	"init_grav", "ghost", "extra_ghost", "drift", "kick1", "kick2",
	"timestep", "send", "recv", "grav_top_level", "grav_long_range",
	"grav_mm", "grav_down", "cooling", "sourceterms", "count",
}

// SubTypes lists the task sub-categories, indexed as in the producer.
var SubTypes = []string{
	"none", "density", "gradient", "force", "grav", "external_grav",
	"tend", "xv", "rho", "gpart", "multipole", "spart", "count",
}

// FullTypes lists the type/subtype combinations whose subtype carries
// independent meaning and therefore gets a colour of its own.
var FullTypes = []string{
	"self/force", "self/density", "self/grav", "sub_self/force",
	"sub_self/density", "pair/force", "pair/density", "pair/grav",
	"sub_pair/force", "sub_pair/density", "recv/xv", "send/xv",
	"recv/rho", "send/rho", "recv/tend", "send/tend",
}

// subtypedTasks is the set of task types for which the subtype
// distinguishes meaningfully different work, driving the composite palette
// lookup in Palette.Lookup.
var subtypedTasks = map[string]bool{
	"self": true, "pair": true, "sub_self": true, "sub_pair": true,
	"send": true, "recv": true,
}

// TaskTypeName resolves a task type id from the trace table.
func TaskTypeName(id int) (string, error) {
	if id < 0 || id >= len(TaskTypes) {
		return "", fmt.Errorf("%w: task type id %d", ErrUnknownCategory, id)
	}
	return TaskTypes[id], nil
}

// SubTypeName resolves a task subtype id from the trace table.
func SubTypeName(id int) (string, error) {
	if id < 0 || id >= len(SubTypes) {
		return "", fmt.Errorf("%w: subtype id %d", ErrUnknownCategory, id)
	}
	return SubTypes[id], nil
}
