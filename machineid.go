package gflake

import (
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
)

// RandomMachineID derives a machine ID in [0, MaxMachineID] from a freshly
// generated random UUID. Two processes picking machine IDs this way can
// still collide (1024 slots only); it is a convenience for single-node use
// and development, not a substitute for externally coordinated assignment.
func RandomMachineID() int64 {
	u := uuid.New()
	return int64(binary.BigEndian.Uint16(u[14:16])) & MaxMachineID
}

// MachineIDFromEnv reads a machine ID from the named environment variable.
// The value must be a base-10 integer in [0, MaxMachineID]; an unset or
// empty variable, a non-numeric value, or an out-of-bounds value is an
// error rather than a silent fallback.
func MachineIDFromEnv(key string) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return 0, fmt.Errorf("gflake: environment variable %s is not set", key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("gflake: environment variable %s: %w", key, ErrInvalidFormat)
	}
	if v < 0 || v > MaxMachineID {
		return 0, &OutOfRangeError{Field: "MachineID", Value: v, Max: MaxMachineID}
	}
	return v, nil
}
