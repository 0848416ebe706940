package gflake

import (
	"sync"
	"time"
)

// Generator is a thread-safe Snowflake ID factory. Each instance owns its
// own machine-ID slot and sequence counter, so multiple isolated generators
// can coexist in one process (useful for tests); the package-level functions
// operate on a shared default instance.
type Generator struct {
	mu        sync.Mutex
	machineID int64
	sequence  int64
	now       func() time.Time
}

// NewGenerator creates a generator with an explicitly provisioned machine
// ID. The machine ID must be in [0, MaxMachineID]; callers obtain one from
// configuration, MachineIDFromEnv or RandomMachineID.
func NewGenerator(machineID int64) (*Generator, error) {
	return NewGeneratorWithClock(machineID, time.Now)
}

// NewGeneratorWithClock creates a generator with a custom time source.
// This is primarily useful for testing with a frozen or stepped clock.
func NewGeneratorWithClock(machineID int64, now func() time.Time) (*Generator, error) {
	if machineID < 0 || machineID > MaxMachineID {
		return nil, &OutOfRangeError{Field: "MachineID", Value: machineID, Max: MaxMachineID}
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{machineID: machineID, now: now}, nil
}

// New generates a new ID at the current time.
// This method is thread-safe.
func (g *Generator) New() (ID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates a new ID with the specified wall-clock instant,
// the generator's machine ID and the next sequence value.
//
// The timestamp bound is checked before the sequence counter advances, so a
// failed call never consumes a sequence value. A time before Epoch or more
// than ~69.7 years after it fails with *OutOfRangeError; the latter is
// effectively fatal for the process, since time does not decrease.
func (g *Generator) NewWithTime(t time.Time) (ID, error) {
	ms := t.UTC().UnixMilli() - Epoch

	g.mu.Lock()
	defer g.mu.Unlock()

	if ms < 0 || ms > MaxTimestamp {
		return 0, &OutOfRangeError{Field: "Timestamp", Value: ms, Max: MaxTimestamp}
	}
	seq := g.nextSequenceLocked()
	return ID(ms<<timestampShift | g.machineID<<machineIDShift | seq), nil
}

// NextSequence increments the shared counter and returns its new value,
// wrapping to 0 after MaxSequence. The counter is a pure cycler: it does
// not consult the clock, and it does not wait for the next millisecond
// when it wraps. A single machine ID requesting more than 4096 IDs within
// one millisecond can therefore collide with itself; callers needing more
// throughput must shard across machine IDs.
func (g *Generator) NextSequence() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextSequenceLocked()
}

func (g *Generator) nextSequenceLocked() int64 {
	g.sequence = (g.sequence + 1) & MaxSequence
	return g.sequence
}

// MachineID returns the generator's machine ID
func (g *Generator) MachineID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.machineID
}

// SetMachineID replaces the generator's machine ID. Writes share the
// sequence lock, so readers always observe a fully-written value.
func (g *Generator) SetMachineID(machineID int64) error {
	if machineID < 0 || machineID > MaxMachineID {
		return &OutOfRangeError{Field: "MachineID", Value: machineID, Max: MaxMachineID}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.machineID = machineID
	return nil
}

// defaultGenerator is the package-level generator used by the convenience
// functions. Its machine ID is seeded from a random UUID at startup;
// applications that coordinate machine IDs externally should call
// SetDefaultMachineID before minting.
var defaultGenerator = &Generator{machineID: RandomMachineID(), now: time.Now}

// New generates a new ID using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (ID, error) {
	return defaultGenerator.New()
}

// NextSequence advances and returns the default generator's sequence counter
func NextSequence() int64 {
	return defaultGenerator.NextSequence()
}

// DefaultMachineID returns the default generator's machine ID
func DefaultMachineID() int64 {
	return defaultGenerator.MachineID()
}

// SetDefaultMachineID replaces the default generator's machine ID.
// Call it once at startup, before any IDs are minted.
func SetDefaultMachineID(machineID int64) error {
	return defaultGenerator.SetMachineID(machineID)
}
