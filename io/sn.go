package io

import (
	"os"

	"github.com/phil-mansfield/table"
)

// SNEvent is one supernova explosion from the simulation's SN dump.
type SNEvent struct {
	Time float64 // code units
	X, Y float64 // explosion position, pc
	NAvg float64 // ambient hydrogen number density at explosion, cm^-3
}

// ReadSNEvents reads a supernova dump: a whitespace table whose first four
// columns are time, x, y, and ambient density.
func ReadSNEvents(fname string) ([]SNEvent, error) {
	text, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	cols := table.Text(text).ReadFloat64s([]int{0, 1, 2, 3})

	times, xs, ys, ns := cols[0], cols[1], cols[2], cols[3]
	events := make([]SNEvent, len(times))
	for i := range events {
		events[i] = SNEvent{times[i], xs[i], ys[i], ns[i]}
	}
	return events, nil
}
