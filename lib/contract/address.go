package contract

import (
	"encoding/hex"
	"strings"

	"github.com/stellar/go/keypair"
)

// Address identifies a participant or admin by its raw byte content.
// Two addresses built from the same bytes are the same address; the
// underlying string type keeps it usable as a map key.
type Address string

func NewAddress(b []byte) Address {
	return Address(b)
}

// NewAddressFromKeypair derives an `Address` from a stellar keypair,
// the same account representation the rest of the stack uses.
func NewAddressFromKeypair(kp keypair.KP) Address {
	return Address(kp.Address())
}

func (a Address) Bytes() []byte {
	return []byte(a)
}

func (a Address) Equal(b Address) bool {
	return a == b
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString([]byte(a))
}

// MarshalText renders the hex form, so addresses stay readable as JSON
// map keys and fields.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	decoded, err := hex.DecodeString(strings.TrimPrefix(string(b), "0x"))
	if err != nil {
		return err
	}

	*a = Address(decoded)

	return nil
}
