package contract

import (
	"testing"

	stellar "github.com/stellar/go/keypair"
	"github.com/stretchr/testify/require"
)

func TestAddressHexRendering(t *testing.T) {
	a := NewAddress([]byte{1, 2, 3})
	require.Equal(t, "0x010203", a.String())

	require.Equal(t, "0x", NewAddress(nil).String())
}

func TestAddressByteContentEquality(t *testing.T) {
	a := NewAddress([]byte{1, 2, 3})
	b := NewAddress([]byte{1, 2, 3})
	c := NewAddress([]byte{3, 2, 1})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	// same content must land on the same map slot
	m := map[Address]bool{a: true}
	require.True(t, m[b])
	require.False(t, m[c])
}

func TestAddressFromKeypair(t *testing.T) {
	kp, err := stellar.Random()
	require.NoError(t, err)

	a := NewAddressFromKeypair(kp)
	require.Equal(t, []byte(kp.Address()), a.Bytes())

	b := NewAddress([]byte(kp.Address()))
	require.True(t, a.Equal(b))
}

func TestAddressTextRoundTrip(t *testing.T) {
	a := NewAddress([]byte{0xde, 0xad, 0xbe, 0xef})

	encoded, err := a.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "0xdeadbeef", string(encoded))

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(encoded))
	require.True(t, a.Equal(decoded))

	require.Error(t, decoded.UnmarshalText([]byte("0xkillme")))
}

func TestAddressBytesIsACopy(t *testing.T) {
	a := NewAddress([]byte{1, 2, 3})

	b := a.Bytes()
	b[0] = 99

	require.Equal(t, "0x010203", a.String())
}
