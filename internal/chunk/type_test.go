package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromBytes(t *testing.T) {
	typ := TypeFromBytes([4]byte{82, 117, 83, 116})
	assert.Equal(t, [4]byte{82, 117, 83, 116}, typ.Bytes())
	assert.Equal(t, "RuSt", typ.String())
}

func TestTypeFromString(t *testing.T) {
	typ, err := TypeFromString("RuSt")
	require.NoError(t, err)
	assert.Equal(t, TypeFromBytes([4]byte{82, 117, 83, 116}), typ)
}

func TestTypeFromStringRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "too short", input: "Rus", wantErr: ErrTypeLength},
		{name: "too long", input: "RuStX", wantErr: ErrTypeLength},
		{name: "empty", input: "", wantErr: ErrTypeLength},
		{name: "digit", input: "Ru1t", wantErr: ErrTypeNotAlphabetic},
		{name: "space", input: "Ru t", wantErr: ErrTypeNotAlphabetic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TypeFromString(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTypeFlags(t *testing.T) {
	tests := []struct {
		input      string
		critical   bool
		public     bool
		reserved   bool
		safeToCopy bool
		valid      bool
	}{
		{input: "RuSt", critical: true, public: false, reserved: true, safeToCopy: true, valid: true},
		{input: "ruSt", critical: false, public: false, reserved: true, safeToCopy: true, valid: true},
		{input: "RUSt", critical: true, public: true, reserved: true, safeToCopy: true, valid: true},
		{input: "Rust", critical: true, public: false, reserved: false, safeToCopy: true, valid: false},
		{input: "RuST", critical: true, public: false, reserved: true, safeToCopy: false, valid: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, err := TypeFromString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.critical, typ.IsCritical(), "IsCritical")
			assert.Equal(t, tt.public, typ.IsPublic(), "IsPublic")
			assert.Equal(t, tt.reserved, typ.IsReservedBitValid(), "IsReservedBitValid")
			assert.Equal(t, tt.safeToCopy, typ.IsSafeToCopy(), "IsSafeToCopy")
			assert.Equal(t, tt.valid, typ.IsValid(), "IsValid")
		})
	}
}

func TestTypeFromBytesSkipsValidation(t *testing.T) {
	// The decode path may carry tags that TypeFromString would reject.
	typ := TypeFromBytes([4]byte{'R', 'u', '1', 't'})
	assert.Equal(t, "Ru1t", typ.String())
	assert.False(t, typ.IsValid())
}

func TestTypeEquality(t *testing.T) {
	a, err := TypeFromString("RuSt")
	require.NoError(t, err)
	b := TypeFromBytes([4]byte{82, 117, 83, 116})
	c, err := TypeFromString("ruSt")
	require.NoError(t, err)

	assert.True(t, a == b)
	assert.False(t, a == c)
}
