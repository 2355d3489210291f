// Package rhythm generates rhythm, beaming and rest-notation questions. All
// durations are counted in eighth-note units.
package rhythm

import "fmt"

// Family classifies how a meter's beats subdivide.
type Family int

const (
	Simple Family = iota
	Compound
	Irregular
)

func (f Family) String() string {
	switch f {
	case Compound:
		return "compound"
	case Irregular:
		return "irregular"
	}
	return "simple"
}

// Meter is a time signature with its canonical beat groups.
type Meter struct {
	ID     string
	Groups []int
	Family Family
}

// TotalUnits is the bar length in eighths.
func (m Meter) TotalUnits() int {
	total := 0
	for _, g := range m.Groups {
		total += g
	}
	return total
}

// Boundaries returns the cumulative group ends, e.g. 6/8 gives [3 6].
func (m Meter) Boundaries() []int {
	out := make([]int, len(m.Groups))
	pos := 0
	for i, g := range m.Groups {
		pos += g
		out[i] = pos
	}
	return out
}

var meters = map[string]Meter{
	"2/4":  {ID: "2/4", Groups: []int{2, 2}, Family: Simple},
	"3/4":  {ID: "3/4", Groups: []int{2, 2, 2}, Family: Simple},
	"4/4":  {ID: "4/4", Groups: []int{2, 2, 2, 2}, Family: Simple},
	"5/4":  {ID: "5/4", Groups: []int{4, 2, 4}, Family: Irregular},
	"5/8":  {ID: "5/8", Groups: []int{2, 3}, Family: Irregular},
	"6/8":  {ID: "6/8", Groups: []int{3, 3}, Family: Compound},
	"7/8":  {ID: "7/8", Groups: []int{2, 2, 3}, Family: Irregular},
	"9/8":  {ID: "9/8", Groups: []int{3, 3, 3}, Family: Compound},
	"9/4":  {ID: "9/4", Groups: []int{6, 6, 6}, Family: Compound},
	"12/8": {ID: "12/8", Groups: []int{3, 3, 3, 3}, Family: Compound},
}

// Meter lists per question type.
var (
	TimeSignatureIDs   = []string{"2/4", "3/4", "4/4", "5/4", "6/8", "7/8", "9/8", "12/8"}
	BeamingIDs         = []string{"3/4", "4/4", "6/8", "5/8", "7/8"}
	CompoundBeamingIDs = []string{"9/8", "12/8", "9/4", "5/8"}
	RestIDs            = []string{"2/4", "3/4", "4/4", "6/8", "9/8", "12/8"}
	RestAuditIDs       = []string{"4/4", "3/4", "6/8"}
)

// LookupMeter returns the meter for a signature such as "6/8".
func LookupMeter(id string) (Meter, bool) {
	m, ok := meters[id]
	return m, ok
}

func mustMeter(id string) Meter {
	m, ok := meters[id]
	if !ok {
		panic(fmt.Sprintf("rhythm: no meter %q", id))
	}
	return m
}

// groupsToIndexes turns group sizes into beamed index lists, dropping
// single-note groups.
func groupsToIndexes(groups []int) [][]int {
	var out [][]int
	cursor := 0
	for _, size := range groups {
		if size > 1 {
			idx := make([]int, size)
			for i := range idx {
				idx[i] = cursor + i
			}
			out = append(out, idx)
		}
		cursor += size
	}
	return out
}
