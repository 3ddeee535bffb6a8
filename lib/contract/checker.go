package contract

import (
	"time"

	"boscoin.io/agora/lib/common"
	"boscoin.io/agora/lib/errors"
)

// VoteChecker runs the admission gates for one vote attempt. The gate
// order is fixed and observable through the returned error:
// deactivation beats expiry, expiry beats a bad option index, and the
// duplicate-voter check comes last.
type VoteChecker struct {
	common.DefaultChecker

	Poll        *Poll
	Voter       Address
	OptionIndex int
	Now         time.Time
}

var handleVoteCheckerFuncs = []common.CheckerFunc{
	CheckPollIsActive,
	CheckPollNotEnded,
	CheckOptionInRange,
	CheckNotAlreadyVoted,
}

func newVoteChecker(poll *Poll, voter Address, optionIndex int, now time.Time) *VoteChecker {
	return &VoteChecker{
		DefaultChecker: common.DefaultChecker{Funcs: handleVoteCheckerFuncs},
		Poll:           poll,
		Voter:          voter,
		OptionIndex:    optionIndex,
		Now:            now,
	}
}

func CheckPollIsActive(c common.Checker, args ...interface{}) error {
	checker := c.(*VoteChecker)
	if !checker.Poll.IsActive {
		return errors.PollInactive
	}

	return nil
}

func CheckPollNotEnded(c common.Checker, args ...interface{}) error {
	checker := c.(*VoteChecker)
	if checker.Poll.Expired(checker.Now) {
		return errors.PollEnded
	}

	return nil
}

func CheckOptionInRange(c common.Checker, args ...interface{}) error {
	checker := c.(*VoteChecker)
	if checker.OptionIndex < 0 || checker.OptionIndex >= len(checker.Poll.Options) {
		return errors.InvalidOption
	}

	return nil
}

func CheckNotAlreadyVoted(c common.Checker, args ...interface{}) error {
	checker := c.(*VoteChecker)
	if checker.Poll.HasVoted(checker.Voter) {
		return errors.AlreadyVoted
	}

	return nil
}
