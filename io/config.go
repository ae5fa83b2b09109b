package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/tigress-gc/gcpost/grid"
)

const (
	ExampleSumFieldsFile = `[SumFields]

#######################
# Required Parameters #
#######################

# Printf-style pattern for the snapshot files, e.g. out/gc.%04d.nc
Input = path/to/snapshots/gc.%04d.nc
# Output file the time-summed dataset will be written to.
Output = path/to/output/sum.nc

# (Inclusive) snapshot index range to sum over.
Start = 200
End = 300

# Domain geometry: edges in pc and cell counts per axis. These must match
# the snapshot files.
LeX = -1024
LeY = -1024
LeZ = -512
ReX = 1024
ReY = 1024
ReZ = 512
NxX = 256
NxY = 256
NxZ = 128

#######################
# Optional Parameters #
#######################

# Restrict the sum to two-phase (T < 2e4 K) gas. The gravitational
# potential is kept unfiltered either way.
# Twophase = true

# Tabulated cooling function (columns: T, T1, cooling rate, heating
# rate). Defaults to the built-in Koyama & Inutsuka table.
# CoolFile = path/to/cool.dat

# Redirect log output to a file.
# LogFile = log.out`

	ExampleCountSNeFile = `[CountSNe]

#######################
# Required Parameters #
#######################

# Supernova dump: a whitespace table with columns time, x, y, navg.
SNFile = path/to/sn.dat
# Output file the SN count map will be written to.
Output = path/to/output/nsne.nc

# Time window (exclusive on both ends) in code units.
TStart = 200
TEnd = 300

# Domain geometry, as in [SumFields]. Only x and y are used for binning,
# but all three axes must be given.
LeX = -1024
LeY = -1024
LeZ = -512
ReX = 1024
ReY = 1024
ReZ = 512
NxX = 256
NxY = 256
NxZ = 128

#######################
# Optional Parameters #
#######################

# Discard SNe that exploded below this ambient hydrogen number density.
# NCrit = 10

# Redirect log output to a file.
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Output string
	// Optional
	LogFile string
}

func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// DomainConfig is the grid geometry block shared by every mode.
type DomainConfig struct {
	LeX, LeY, LeZ float64
	ReX, ReY, ReZ float64
	NxX, NxY, NxZ int
}

func (con *DomainConfig) ValidDomain() bool {
	_, err := con.Domain()
	return err == nil
}

// Domain builds the grid.Domain described by the config block.
func (con *DomainConfig) Domain() (*grid.Domain, error) {
	return grid.NewDomain(
		[3]float64{con.LeX, con.LeY, con.LeZ},
		[3]float64{con.ReX, con.ReY, con.ReZ},
		[3]int{con.NxX, con.NxY, con.NxZ},
	)
}

type SumFieldsConfig struct {
	SharedConfig
	DomainConfig

	// Required
	Input      string
	Start, End int

	// Optional
	Twophase bool
	CoolFile string
}

func (con *SumFieldsConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SumFieldsConfig) ValidRange() bool {
	return con.Start >= 0 && con.End >= con.Start
}

type CountSNeConfig struct {
	SharedConfig
	DomainConfig

	// Required
	SNFile       string
	TStart, TEnd float64

	// Optional
	NCrit float64
}

func (con *CountSNeConfig) ValidSNFile() bool {
	return con.SNFile != ""
}
func (con *CountSNeConfig) ValidWindow() bool {
	return con.TEnd > con.TStart
}

type SumFieldsWrapper struct {
	SumFields SumFieldsConfig
}

type CountSNeWrapper struct {
	CountSNe CountSNeConfig
}

func DefaultSumFieldsWrapper() *SumFieldsWrapper {
	con := SumFieldsConfig{}
	con.End = -1
	return &SumFieldsWrapper{con}
}

func DefaultCountSNeWrapper() *CountSNeWrapper {
	con := CountSNeConfig{}
	con.NCrit = 0
	return &CountSNeWrapper{con}
}

// ReadSumFieldsConfig reads and validates a [SumFields] config file.
func ReadSumFieldsConfig(fname string) (*SumFieldsConfig, error) {
	wrap := DefaultSumFieldsWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.SumFields
	switch {
	case !con.ValidInput():
		return nil, fmt.Errorf("Invalid/non-existent 'Input' value.")
	case !con.ValidOutput():
		return nil, fmt.Errorf("Invalid/non-existent 'Output' value.")
	case !con.ValidRange():
		return nil, fmt.Errorf("Invalid 'Start'/'End' range.")
	case !con.ValidDomain():
		return nil, fmt.Errorf("Invalid domain geometry.")
	}
	return con, nil
}

// ReadCountSNeConfig reads and validates a [CountSNe] config file.
func ReadCountSNeConfig(fname string) (*CountSNeConfig, error) {
	wrap := DefaultCountSNeWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	con := &wrap.CountSNe
	switch {
	case !con.ValidSNFile():
		return nil, fmt.Errorf("Invalid/non-existent 'SNFile' value.")
	case !con.ValidOutput():
		return nil, fmt.Errorf("Invalid/non-existent 'Output' value.")
	case !con.ValidWindow():
		return nil, fmt.Errorf("Invalid 'TStart'/'TEnd' window.")
	case !con.ValidDomain():
		return nil, fmt.Errorf("Invalid domain geometry.")
	}
	return con, nil
}
