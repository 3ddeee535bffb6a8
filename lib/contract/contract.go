package contract

import (
	"sort"
	"sync"
	"time"

	"boscoin.io/agora/lib/common"
	"boscoin.io/agora/lib/common/observer"
	"boscoin.io/agora/lib/errors"
	"boscoin.io/agora/lib/metrics"
)

// observer event names published on `observer.PollObserver`
const (
	EventPollCreated     string = "created"
	EventPollVoted       string = "voted"
	EventPollDeactivated string = "deactivated"
)

// VotingContract is the single owner of every poll and of the admin
// set. All state transitions go through its methods under one
// coarse-grained lock; queries hand out copies, never the stored
// structures, so no caller can alias contract state.
type VotingContract struct {
	sync.RWMutex

	id     string
	config common.Config

	admins     map[Address]bool
	polls      map[uint64]*Poll
	pollIDs    []uint64 // ascending; insertion order = creation order
	nextPollID uint64
}

// NewVotingContract sets up a contract with its initial admin set. At
// least one admin is required; the admin set must never become empty.
func NewVotingContract(config common.Config, initialAdmins ...Address) (vc *VotingContract, err error) {
	if len(initialAdmins) < 1 {
		err = errors.EmptyAdminSet
		return
	}

	if config.Clock == nil {
		config.Clock = common.LocalClock{}
	}

	admins := map[Address]bool{}
	for _, admin := range initialAdmins {
		admins[admin] = true
	}

	vc = &VotingContract{
		id:         common.GetUniqueIDFromUUID(),
		config:     config,
		admins:     admins,
		polls:      map[uint64]*Poll{},
		nextPollID: config.InitialPollID,
	}

	log.Debug("new `VotingContract`", "contract", vc.id, "admins", len(admins))

	return
}

func (vc *VotingContract) ID() string {
	return vc.id
}

// IsAdmin reports membership in the admin set; voting itself is never
// admin-gated.
func (vc *VotingContract) IsAdmin(address Address) bool {
	vc.RLock()
	defer vc.RUnlock()

	return vc.admins[address]
}

// Admins returns the current admin set, sorted for determinism.
func (vc *VotingContract) Admins() []Address {
	vc.RLock()
	defer vc.RUnlock()

	admins := make([]Address, 0, len(vc.admins))
	for admin := range vc.admins {
		admins = append(admins, admin)
	}
	sort.Slice(admins, func(i, j int) bool { return admins[i] < admins[j] })

	return admins
}

// AddAdmin lets a current admin add another one. Adding an address
// which already is an admin fails with `errors.AlreadyAdmin`.
func (vc *VotingContract) AddAdmin(caller, newAdmin Address) error {
	vc.Lock()
	defer vc.Unlock()

	if !vc.admins[caller] {
		return errors.Unauthorized
	}
	if vc.admins[newAdmin] {
		return errors.AlreadyAdmin
	}

	vc.admins[newAdmin] = true

	log.Info("admin added", "contract", vc.id, "admin", newAdmin)

	return nil
}

// RemoveAdmin lets a current admin drop another one. Removing the last
// remaining admin fails with `errors.LastAdminRemoval`, so the
// contract can never become unmanageable. Removing an address which is
// not an admin is a no-op.
func (vc *VotingContract) RemoveAdmin(caller, target Address) error {
	vc.Lock()
	defer vc.Unlock()

	if !vc.admins[caller] {
		return errors.Unauthorized
	}
	if !vc.admins[target] {
		return nil
	}
	if len(vc.admins) < 2 {
		return errors.LastAdminRemoval
	}

	delete(vc.admins, target)

	log.Info("admin removed", "contract", vc.id, "admin", target)

	return nil
}

// CreatePoll registers a new poll and returns its id. Ids are handed
// out sequentially and never reused, even after deactivation.
func (vc *VotingContract) CreatePoll(caller Address, title, description string, options []string, duration time.Duration) (pollID uint64, err error) {
	vc.Lock()
	defer vc.Unlock()

	if !vc.admins[caller] {
		err = errors.Unauthorized
		return
	}
	if len(options) < vc.config.MinPollOptions {
		err = errors.InvalidOptions
		return
	}
	if duration <= 0 {
		err = errors.InvalidDuration
		return
	}

	pollID = vc.nextPollID

	copied := make([]string, len(options))
	copy(copied, options)

	poll := newPoll(pollID, title, description, copied, vc.config.Clock.Now().Add(duration), caller)

	vc.polls[pollID] = poll
	vc.pollIDs = append(vc.pollIDs, pollID)
	vc.nextPollID++

	metrics.Contract.PollsCreatedTotal.Add(1)
	metrics.Contract.ActivePolls.Add(1)
	observer.PollObserver.Trigger(EventPollCreated, pollID)

	log.Info("new poll created",
		"contract", vc.id,
		"poll", pollID,
		"hash", poll.GetHash(),
		"creator", caller,
		"end-time", poll.EndTime,
	)

	return
}

// CastVote records one vote. The admission gates run in a fixed order
// (see `VoteChecker`); on any failure the contract state is left
// untouched, and on success the tally increment and the voter record
// land together under the lock.
func (vc *VotingContract) CastVote(voter Address, pollID uint64, optionIndex int) error {
	vc.Lock()
	defer vc.Unlock()

	poll, ok := vc.polls[pollID]
	if !ok {
		return errors.PollNotFound
	}

	checker := newVoteChecker(poll, voter, optionIndex, vc.config.Clock.Now())
	if err := common.RunChecker(checker, common.DefaultDeferFunc); err != nil {
		if e, ok := err.(*errors.Error); ok {
			metrics.Contract.VoteErrorsTotal.With("reason", e.Message).Add(1)
		}
		return err
	}

	poll.Votes[optionIndex]++
	poll.Voters[voter] = optionIndex

	metrics.Contract.VotesCastTotal.Add(1)
	observer.PollObserver.Trigger(EventPollVoted, pollID)

	log.Debug("vote cast", "contract", vc.id, "poll", pollID, "voter", voter, "option", optionIndex)

	return nil
}

// DeactivatePoll closes a poll for good. Deactivating an already
// closed poll succeeds without doing anything; the end state is the
// same either way.
func (vc *VotingContract) DeactivatePoll(caller Address, pollID uint64) error {
	vc.Lock()
	defer vc.Unlock()

	if !vc.admins[caller] {
		return errors.Unauthorized
	}

	poll, ok := vc.polls[pollID]
	if !ok {
		return errors.PollNotFound
	}
	if !poll.IsActive {
		return nil
	}

	poll.IsActive = false

	metrics.Contract.PollsDeactivated.Add(1)
	metrics.Contract.ActivePolls.Add(-1)
	observer.PollObserver.Trigger(EventPollDeactivated, pollID)

	log.Info("poll deactivated", "contract", vc.id, "poll", pollID, "by", caller)

	return nil
}

// GetPoll returns a deep-copied snapshot of the poll.
func (vc *VotingContract) GetPoll(pollID uint64) (*Poll, error) {
	vc.RLock()
	defer vc.RUnlock()

	poll, ok := vc.polls[pollID]
	if !ok {
		return nil, errors.PollNotFound
	}

	return poll.clone(), nil
}

// GetPollResults reports the tallies in option order. Results stay
// queryable after expiry and after deactivation; only casting is
// gated.
func (vc *VotingContract) GetPollResults(pollID uint64) ([]PollResult, error) {
	vc.RLock()
	defer vc.RUnlock()

	poll, ok := vc.polls[pollID]
	if !ok {
		return nil, errors.PollNotFound
	}

	return poll.Results(), nil
}

// ListActivePolls returns the ids of every poll still accepting votes,
// ascending. A poll past its deadline is excluded here even when its
// `IsActive` flag was never flipped.
func (vc *VotingContract) ListActivePolls() []uint64 {
	vc.RLock()
	defer vc.RUnlock()

	now := vc.config.Clock.Now()

	var active []uint64
	for _, pollID := range vc.pollIDs {
		if vc.polls[pollID].AcceptsVotes(now) {
			active = append(active, pollID)
		}
	}

	return active
}

// HasVoted reports whether the address already voted on the poll.
func (vc *VotingContract) HasVoted(pollID uint64, address Address) (bool, error) {
	vc.RLock()
	defer vc.RUnlock()

	poll, ok := vc.polls[pollID]
	if !ok {
		return false, errors.PollNotFound
	}

	return poll.HasVoted(address), nil
}

// VotedOption returns the option index the address voted for, and
// whether it voted at all.
func (vc *VotingContract) VotedOption(pollID uint64, address Address) (int, bool, error) {
	vc.RLock()
	defer vc.RUnlock()

	poll, ok := vc.polls[pollID]
	if !ok {
		return 0, false, errors.PollNotFound
	}

	optionIndex, voted := poll.Voters[address]

	return optionIndex, voted, nil
}

// VoterParticipation counts the polls the address has voted on.
func (vc *VotingContract) VoterParticipation(address Address) (count int) {
	vc.RLock()
	defer vc.RUnlock()

	for _, poll := range vc.polls {
		if poll.HasVoted(address) {
			count++
		}
	}

	return
}

// NextPollID exposes the id the next created poll will get.
func (vc *VotingContract) NextPollID() uint64 {
	vc.RLock()
	defer vc.RUnlock()

	return vc.nextPollID
}
