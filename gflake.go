package gflake

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// ID represents a Snowflake identifier: a 64-bit signed integer packing a
// 41-bit millisecond timestamp, a 10-bit machine ID and a 12-bit sequence
// counter, high to low. The sign bit is always 0 for IDs produced by this
// package, so IDs sort chronologically as plain integers.
type ID int64

const (
	// Epoch is the fixed reference instant from which the timestamp field
	// counts elapsed milliseconds: 2023-01-01 00:00:00 UTC. Changing it
	// breaks comparability with previously generated IDs.
	Epoch int64 = 1672531200000

	// TimestampBits is the number of bits for the millisecond timestamp
	// (max ~69.7 years after Epoch)
	TimestampBits = 41

	// MachineIDBits is the number of bits for the machine ID (max 1024 nodes)
	MachineIDBits = 10

	// SequenceBits is the number of bits for the per-millisecond sequence
	// (max 4096 IDs/ms per machine)
	SequenceBits = 12

	// MaxTimestamp is the maximum valid timestamp field value (2^41-1)
	MaxTimestamp int64 = -1 ^ (-1 << TimestampBits)

	// MaxMachineID is the maximum valid machine ID (1023)
	MaxMachineID int64 = -1 ^ (-1 << MachineIDBits)

	// MaxSequence is the maximum valid sequence value (4095)
	MaxSequence int64 = -1 ^ (-1 << SequenceBits)

	timestampShift = MachineIDBits + SequenceBits // 22
	machineIDShift = SequenceBits                 // 12
)

// FromParts builds an ID from its three fields. Each field is validated
// against its bit-width bound before any bit is packed; a violation returns
// an *OutOfRangeError naming the field, and never truncates or wraps.
func FromParts(timestamp, machineID, sequence int64) (ID, error) {
	if timestamp < 0 || timestamp > MaxTimestamp {
		return 0, &OutOfRangeError{Field: "Timestamp", Value: timestamp, Max: MaxTimestamp}
	}
	if machineID < 0 || machineID > MaxMachineID {
		return 0, &OutOfRangeError{Field: "MachineID", Value: machineID, Max: MaxMachineID}
	}
	if sequence < 0 || sequence > MaxSequence {
		return 0, &OutOfRangeError{Field: "Sequence", Value: sequence, Max: MaxSequence}
	}
	return ID(timestamp<<timestampShift | machineID<<machineIDShift | sequence), nil
}

// Empty returns the all-zero ID, the sentinel for "not yet assigned".
//
// Note: FromParts(0, 0, 0) is bit-identical to Empty(). An ID minted in the
// very first millisecond of the epoch by machine 0 with sequence 0 is
// indistinguishable from the unset sentinel.
func Empty() ID { return 0 }

// IsEmpty returns true if the ID is the all-zero sentinel
func (id ID) IsEmpty() bool { return id == 0 }

// Timestamp extracts the millisecond timestamp field (bits 22..62).
// Extraction is unconditional: any 64-bit value decodes into some field
// triple, including values never produced by FromParts.
func (id ID) Timestamp() int64 {
	return (int64(id) >> timestampShift) & MaxTimestamp
}

// MachineID extracts the machine ID field (bits 12..21)
func (id ID) MachineID() int64 {
	return (int64(id) >> machineIDShift) & MaxMachineID
}

// Sequence extracts the sequence field (bits 0..11)
func (id ID) Sequence() int64 {
	return int64(id) & MaxSequence
}

// Time returns the timestamp field as a wall-clock instant in UTC
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp() + Epoch).UTC()
}

// SetTimestamp returns a copy of the ID with the timestamp field replaced.
// The old bits are cleared before the new value is OR-ed in, so a nonzero
// current value is overwritten, not accumulated.
func (id ID) SetTimestamp(timestamp int64) (ID, error) {
	if timestamp < 0 || timestamp > MaxTimestamp {
		return id, &OutOfRangeError{Field: "Timestamp", Value: timestamp, Max: MaxTimestamp}
	}
	return ID(int64(id)&^(MaxTimestamp<<timestampShift) | timestamp<<timestampShift), nil
}

// SetMachineID returns a copy of the ID with the machine ID field replaced
func (id ID) SetMachineID(machineID int64) (ID, error) {
	if machineID < 0 || machineID > MaxMachineID {
		return id, &OutOfRangeError{Field: "MachineID", Value: machineID, Max: MaxMachineID}
	}
	return ID(int64(id)&^(MaxMachineID<<machineIDShift) | machineID<<machineIDShift), nil
}

// SetSequence returns a copy of the ID with the sequence field replaced
func (id ID) SetSequence(sequence int64) (ID, error) {
	if sequence < 0 || sequence > MaxSequence {
		return id, &OutOfRangeError{Field: "Sequence", Value: sequence, Max: MaxSequence}
	}
	return ID(int64(id)&^MaxSequence | sequence), nil
}

// Int64 returns the canonical packed form of the ID
func (id ID) Int64() int64 {
	return int64(id)
}

// Equal returns true if id and other have the same packed 64-bit value
func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare returns an integer comparing two IDs by their packed values.
// The result will be 0 if id==other, -1 if id < other, and +1 if id > other.
// For IDs produced by this package this order is chronological.
func (id ID) Compare(other ID) int {
	switch {
	case id < other:
		return -1
	case id > other:
		return 1
	default:
		return 0
	}
}

// String returns the base-10 string representation of the ID
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Parse parses an ID from its base-10 string representation. The packed
// value is accepted as-is; field bounds are not re-checked, since any
// 64-bit value has a well-defined field decomposition.
func Parse(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidFormat
	}
	return ID(v), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("gflake: Parse(%q): %v", s, err))
	}
	return id
}

// Must is a helper that wraps a call to a function returning (ID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = gflake.Must(gen.New())
func Must(id ID, err error) ID {
	if err != nil {
		panic(err)
	}
	return id
}

// MarshalText implements the encoding.TextMarshaler interface. The ID is
// rendered as a base-10 string, which also makes encoding/json emit it as
// a JSON string and sidesteps the 53-bit precision limit of JSON numbers
// in JavaScript consumers.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility
func (id *ID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case int64:
		*id = ID(src)
		return nil
	case string:
		parsed, err := Parse(src)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		if len(src) == 0 {
			return nil
		}
		parsed, err := Parse(string(src))
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	default:
		return fmt.Errorf("gflake: cannot scan type %T into ID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
// The canonical external form is the packed 64-bit integer.
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}
