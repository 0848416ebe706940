package gflake

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{
			name:  "typical ID",
			input: "7130867741421539370",
			want:  ID(7130867741421539370),
		},
		{
			name:  "zero",
			input: "0",
			want:  Empty(),
		},
		{
			name:  "external negative value still decodes",
			input: "-1",
			want:  ID(-1),
		},
		{
			name:    "non-numeric",
			input:   "not-an-id",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "overflows int64",
			input:   "9223372036854775808",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("errors.Is(err, ErrInvalidFormat) = false for %v", err)
				}
				return
			}
			if id != tt.want {
				t.Errorf("Parse() = %v, want %v", id, tt.want)
			}
			// Round-trip
			if got := id.String(); got != tt.input {
				t.Errorf("String() = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("42"); got != ID(42) {
		t.Errorf("MustParse() = %v, want 42", got)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse() did not panic on invalid input")
		}
	}()
	MustParse("bogus")
}

func TestID_Bytes(t *testing.T) {
	id, _ := FromParts(1700000000000, 5, 42)

	b := id.Bytes()
	if len(b) != 8 {
		t.Fatalf("Bytes() length = %d, want 8", len(b))
	}

	back, err := FromBytes(b)
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if !back.Equal(id) {
		t.Errorf("FromBytes(Bytes()) = %v, want %v", back, id)
	}

	// Big-endian: byte order preserves integer order.
	later, _ := FromParts(1700000000001, 5, 42)
	if bytes.Compare(id.Bytes(), later.Bytes()) >= 0 {
		t.Error("byte comparison does not preserve chronological order")
	}

	if _, err := FromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("FromBytes(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestMustFromBytes(t *testing.T) {
	id, _ := FromParts(1000, 1, 1)
	if got := MustFromBytes(id.Bytes()); !got.Equal(id) {
		t.Errorf("MustFromBytes() = %v, want %v", got, id)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on invalid input")
		}
	}()
	MustFromBytes([]byte{0x01})
}

func TestEncodingRoundTrips(t *testing.T) {
	gen, err := NewGenerator(7)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	ids := []ID{Empty(), MustParse("1"), Must(FromParts(MaxTimestamp, MaxMachineID, MaxSequence))}
	for i := 0; i < 10; i++ {
		ids = append(ids, Must(gen.New()))
	}

	for _, id := range ids {
		// Hex round-trip
		h := id.EncodeToHex()
		fromHex, err := DecodeFromHex(h)
		if err != nil {
			t.Errorf("Hex round-trip decode error: %v", err)
		}
		if !fromHex.Equal(id) {
			t.Errorf("Hex round-trip failed: got %v, want %v", fromHex, id)
		}

		// Base64 round-trip
		b64 := id.EncodeToBase64()
		fromB64, err := DecodeFromBase64(b64)
		if err != nil {
			t.Errorf("Base64 round-trip decode error: %v", err)
		}
		if !fromB64.Equal(id) {
			t.Errorf("Base64 round-trip failed: got %v, want %v", fromB64, id)
		}

		// Base64 Std round-trip
		b64std := id.EncodeToBase64Std()
		fromB64Std, err := DecodeFromBase64Std(b64std)
		if err != nil {
			t.Errorf("Base64Std round-trip decode error: %v", err)
		}
		if !fromB64Std.Equal(id) {
			t.Errorf("Base64Std round-trip failed: got %v, want %v", fromB64Std, id)
		}

		// Base62 round-trip
		b62 := id.EncodeToBase62()
		fromB62, err := DecodeFromBase62(b62)
		if err != nil {
			t.Errorf("Base62 round-trip decode error: %v", err)
		}
		if !fromB62.Equal(id) {
			t.Errorf("Base62 round-trip failed: got %v, want %v", fromB62, id)
		}
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong length", input: "abcdef"},
		{name: "bad characters", input: "zzzzzzzzzzzzzzzz"},
		{name: "empty", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromHex(tt.input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeFromHex(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestDecodeFromBase62_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "bad characters", input: "abc-def"},
		{name: "too long", input: "zzzzzzzzzzzz"},
		{name: "overflows uint64", input: "zzzzzzzzzzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromBase62(tt.input); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("DecodeFromBase62(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestID_MarshalUnmarshalText(t *testing.T) {
	id, _ := FromParts(1700000000000, 5, 42)

	text, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(text) != id.String() {
		t.Errorf("MarshalText() = %q, want %q", text, id.String())
	}

	var back ID
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if !back.Equal(id) {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", back, id)
	}
}

func TestID_MarshalUnmarshalBinary(t *testing.T) {
	id, _ := FromParts(1700000000000, 5, 42)

	data, err := id.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary() error = %v", err)
	}
	if !bytes.Equal(data, id.Bytes()) {
		t.Errorf("MarshalBinary() = %x, want %x", data, id.Bytes())
	}

	var back ID
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary() error = %v", err)
	}
	if !back.Equal(id) {
		t.Errorf("Marshal/Unmarshal mismatch: got %v, want %v", back, id)
	}

	if err := back.UnmarshalBinary([]byte{1, 2}); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("UnmarshalBinary(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestID_JSON(t *testing.T) {
	id, _ := FromParts(1700000000000, 5, 42)

	// Text marshaling makes the ID a JSON string, keeping it safe for
	// consumers limited to 53-bit number precision.
	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	want := `"` + id.String() + `"`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back ID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !back.Equal(id) {
		t.Errorf("JSON round-trip mismatch: got %v, want %v", back, id)
	}
}

func TestID_ScanValue(t *testing.T) {
	id, _ := FromParts(1700000000000, 5, 42)

	v, err := id.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if v != id.Int64() {
		t.Errorf("Value() = %v, want %d", v, id.Int64())
	}

	tests := []struct {
		name string
		src  interface{}
		want ID
	}{
		{name: "int64", src: id.Int64(), want: id},
		{name: "string", src: id.String(), want: id},
		{name: "bytes", src: []byte(id.String()), want: id},
		{name: "nil leaves value", src: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ID
			if err := got.Scan(tt.src); err != nil {
				t.Fatalf("Scan(%T) error = %v", tt.src, err)
			}
			if got != tt.want {
				t.Errorf("Scan(%T) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}

	var bad ID
	if err := bad.Scan(3.14); err == nil {
		t.Error("Scan(float64) did not fail")
	}
}
