package common

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/argon2"
)

var HashSalt = []byte("agora")

func MakeHash(b []byte) []byte {
	return argon2.Key(b, HashSalt, 3, 32*1024, 4, 32)
}

func MakeObjectHash(i interface{}) (b []byte, err error) {
	var e []byte
	if e, err = rlp.EncodeToBytes(i); err != nil {
		return
	}

	b = MakeHash(e)

	return
}

func MustMakeObjectHash(i interface{}) (b []byte) {
	b, _ = MakeObjectHash(i)
	return
}

// MakeObjectHashString is `MakeObjectHash`, base58-rendered for log
// context and event payloads.
func MakeObjectHashString(i interface{}) (string, error) {
	b, err := MakeObjectHash(i)
	if err != nil {
		return "", err
	}

	return base58.Encode(b), nil
}
