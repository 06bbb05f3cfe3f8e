package taskplot

import (
	"image/color"
	"sort"

	"github.com/sirupsen/logrus"
)

// Colour pairs a display name with its RGBA value. The names follow the
// palette the diagrams have historically used.
type Colour struct {
	Name string
	RGBA color.RGBA
}

// colours is the fixed cycle the palette draws from. Order matters: the
// builder assigns colours round-robin and wraps when the cycle is exhausted.
var colours = []Colour{
	{"cyan", color.RGBA{0x00, 0xff, 0xff, 0xff}},
	{"lightgray", color.RGBA{0xd3, 0xd3, 0xd3, 0xff}},
	{"darkblue", color.RGBA{0x00, 0x00, 0x8b, 0xff}},
	{"yellow", color.RGBA{0xff, 0xff, 0x00, 0xff}},
	{"tan", color.RGBA{0xd2, 0xb4, 0x8c, 0xff}},
	{"dodgerblue", color.RGBA{0x1e, 0x90, 0xff, 0xff}},
	{"sienna", color.RGBA{0xa0, 0x52, 0x2d, 0xff}},
	{"aquamarine", color.RGBA{0x7f, 0xff, 0xd4, 0xff}},
	{"bisque", color.RGBA{0xff, 0xe4, 0xc4, 0xff}},
	{"blue", color.RGBA{0x00, 0x00, 0xff, 0xff}},
	{"green", color.RGBA{0x00, 0x80, 0x00, 0xff}},
	{"brown", color.RGBA{0xa5, 0x2a, 0x2a, 0xff}},
	{"purple", color.RGBA{0x80, 0x00, 0x80, 0xff}},
	{"moccasin", color.RGBA{0xff, 0xe4, 0xb5, 0xff}},
	{"olivedrab", color.RGBA{0x6b, 0x8e, 0x23, 0xff}},
	{"chartreuse", color.RGBA{0x7f, 0xff, 0x00, 0xff}},
	{"darksage", color.RGBA{0x59, 0x85, 0x56, 0xff}},
	{"darkgreen", color.RGBA{0x00, 0x64, 0x00, 0xff}},
	{"green", color.RGBA{0x00, 0x80, 0x00, 0xff}},
	{"mediumseagreen", color.RGBA{0x3c, 0xb3, 0x71, 0xff}},
	{"mediumaquamarine", color.RGBA{0x66, 0xcd, 0xaa, 0xff}},
	{"darkslategrey", color.RGBA{0x2f, 0x4f, 0x4f, 0xff}},
	{"mediumturquoise", color.RGBA{0x48, 0xd1, 0xcc, 0xff}},
	{"black", color.RGBA{0x00, 0x00, 0x00, 0xff}},
	{"cadetblue", color.RGBA{0x5f, 0x9e, 0xa0, 0xff}},
	{"skyblue", color.RGBA{0x87, 0xce, 0xeb, 0xff}},
	{"red", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	{"slategray", color.RGBA{0x70, 0x80, 0x90, 0xff}},
	{"gold", color.RGBA{0xff, 0xd7, 0x00, 0xff}},
	{"slateblue", color.RGBA{0x6a, 0x5a, 0xcd, 0xff}},
	{"blueviolet", color.RGBA{0x8a, 0x2b, 0xe2, 0xff}},
	{"mediumorchid", color.RGBA{0xba, 0x55, 0xd3, 0xff}},
	{"firebrick", color.RGBA{0xb2, 0x22, 0x22, 0xff}},
	{"magenta", color.RGBA{0xff, 0x00, 0xff, 0xff}},
	{"hotpink", color.RGBA{0xff, 0x69, 0xb4, 0xff}},
	{"pink", color.RGBA{0xff, 0xc0, 0xcb, 0xff}},
	{"orange", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
	{"lightgreen", color.RGBA{0x90, 0xee, 0x90, 0xff}},
}

// Palette maps category keys (bare types, type/subtype composites and bare
// subtypes) to colours. Built once at startup, read-only afterwards.
type Palette map[string]Colour

// BuildPalette assigns colours round-robin from the fixed cycle: every task
// type first, then every full type, then every subtype. One counter is
// shared across the three passes, so subtype colours continue the cycle
// rather than restarting it and two builds always produce the same mapping.
// The vocabularies share the sentinel keys "none" and "count", so the
// subtype pass overwrites their task-type colours; both sentinels mark
// unused enum slots and never reach Lookup from real trace rows.
func BuildPalette() Palette {
	p := make(Palette, len(TaskTypes)+len(FullTypes)+len(SubTypes))
	next := 0
	for _, vocab := range [][]string{TaskTypes, FullTypes, SubTypes} {
		for _, key := range vocab {
			p[key] = colours[next%len(colours)]
			next++
		}
	}
	return p
}

// Lookup resolves the colour for a task. Types whose subtype is meaningful
// try the composite key first and fall back to the bare subtype; everything
// else uses the bare type.
func (p Palette) Lookup(taskType, subType string) Colour {
	if subtypedTasks[taskType] {
		if c, ok := p[taskType+"/"+subType]; ok {
			return c
		}
		return p[subType]
	}
	return p[taskType]
}

// Dump logs every colour assignment, for fiddling with colours.
func (p Palette) Dump() {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	logrus.Info("Selected colours:")
	for _, key := range keys {
		logrus.Infof("# %s: %s", key, p[key].Name)
	}
}
