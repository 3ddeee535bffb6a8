package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boscoin.io/agora/lib/common"
	"boscoin.io/agora/lib/errors"
)

func runVoteChecker(p *Poll, voter Address, optionIndex int, now time.Time) error {
	return common.RunChecker(newVoteChecker(p, voter, optionIndex, now), common.DefaultDeferFunc)
}

func TestVoteCheckerPasses(t *testing.T) {
	p := newPoll(0, "findme", "description", []string{"yes", "no"}, TestGenesisTime.Add(100*time.Second), RandomAddress())

	require.NoError(t, runVoteChecker(p, RandomAddress(), 0, TestGenesisTime))
}

func TestVoteCheckerGates(t *testing.T) {
	endTime := TestGenesisTime.Add(100 * time.Second)
	voter := RandomAddress()

	{ // expired
		p := newPoll(0, "findme", "description", []string{"yes", "no"}, endTime, RandomAddress())
		require.Equal(t, errors.PollEnded, runVoteChecker(p, voter, 0, endTime))
	}

	{ // deactivated
		p := newPoll(0, "findme", "description", []string{"yes", "no"}, endTime, RandomAddress())
		p.IsActive = false
		require.Equal(t, errors.PollInactive, runVoteChecker(p, voter, 0, TestGenesisTime))
	}

	{ // option out of range, both directions
		p := newPoll(0, "findme", "description", []string{"yes", "no"}, endTime, RandomAddress())
		require.Equal(t, errors.InvalidOption, runVoteChecker(p, voter, 2, TestGenesisTime))
		require.Equal(t, errors.InvalidOption, runVoteChecker(p, voter, -1, TestGenesisTime))
	}

	{ // duplicate voter
		p := newPoll(0, "findme", "description", []string{"yes", "no"}, endTime, RandomAddress())
		p.Voters[voter] = 0
		require.Equal(t, errors.AlreadyVoted, runVoteChecker(p, voter, 1, TestGenesisTime))
	}
}

// A poll both deactivated and expired must report `PollInactive`;
// explicit deactivation wins over mere expiry.
func TestVoteCheckerDeactivationBeatsExpiry(t *testing.T) {
	endTime := TestGenesisTime.Add(100 * time.Second)
	p := newPoll(0, "findme", "description", []string{"yes", "no"}, endTime, RandomAddress())
	p.IsActive = false

	require.Equal(t, errors.PollInactive, runVoteChecker(p, RandomAddress(), 0, endTime.Add(time.Hour)))
}
