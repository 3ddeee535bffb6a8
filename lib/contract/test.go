// Provides utilities to use in test code
package contract

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	stellar "github.com/stellar/go/keypair"

	"boscoin.io/agora/lib/common"
)

// TestGenesisTime is where test clocks start.
var TestGenesisTime = time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

//
// Create a new random address to be used by test code
//
func RandomAddress() Address {
	if kp, err := stellar.Random(); err != nil {
		panic(err)
	} else {
		return NewAddressFromKeypair(kp)
	}
}

// NewTestContract makes a contract driven by a `ManualClock`; when no
// admins are given, a random one is created.
func NewTestContract(admins ...Address) (*VotingContract, *common.ManualClock) {
	if len(admins) < 1 {
		admins = append(admins, RandomAddress())
	}

	config, clock := common.NewTestConfig(TestGenesisTime)
	vc, err := NewVotingContract(config, admins...)
	if err != nil {
		panic(err)
	}

	return vc, clock
}

func TestFakePollTitle() string {
	return gofakeit.Question()
}

func TestFakePollDescription() string {
	return gofakeit.Sentence(8)
}
