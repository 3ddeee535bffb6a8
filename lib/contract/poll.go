package contract

import (
	"encoding/json"
	"time"

	"boscoin.io/agora/lib/common"
)

// Poll is one ballot: a fixed option list, a deadline and the
// accumulating tallies. Polls are created and mutated only through
// `VotingContract`; everything handed out of the contract is a copy.
type Poll struct {
	ID          uint64          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Options     []string        `json:"options"`
	Votes       []uint64        `json:"votes"`
	Voters      map[Address]int `json:"voters"` // voter -> chosen option index
	EndTime     time.Time       `json:"end_time"`
	Creator     Address         `json:"creator"`
	IsActive    bool            `json:"is_active"`
	Hash        string          `json:"hash"`
}

// PollResult pairs one option label with its tally, in option order.
type PollResult struct {
	Option string `json:"option"`
	Votes  uint64 `json:"votes"`
}

func newPoll(id uint64, title, description string, options []string, endTime time.Time, creator Address) *Poll {
	p := &Poll{
		ID:          id,
		Title:       title,
		Description: description,
		Options:     options,
		Votes:       make([]uint64, len(options)),
		Voters:      map[Address]int{},
		EndTime:     endTime,
		Creator:     creator,
		IsActive:    true,
	}
	p.Hash = p.makeHashString()

	return p
}

// makeHashString hashes the creation-time fields only; tallies and
// voters never feed the hash, so it stays stable for the poll's life.
func (p *Poll) makeHashString() string {
	hash, _ := common.MakeObjectHashString(struct {
		ID          uint64
		Title       string
		Description string
		Options     []string
		Creator     []byte
	}{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Options:     p.Options,
		Creator:     p.Creator.Bytes(),
	})

	return hash
}

func (p *Poll) GetHash() string {
	return p.Hash
}

// Expired reports whether `now` has reached the deadline; the deadline
// instant itself no longer accepts votes.
func (p *Poll) Expired(now time.Time) bool {
	return !now.Before(p.EndTime)
}

// AcceptsVotes needs both gates open: not deactivated and not expired.
func (p *Poll) AcceptsVotes(now time.Time) bool {
	return p.IsActive && !p.Expired(now)
}

func (p *Poll) HasVoted(voter Address) bool {
	_, ok := p.Voters[voter]
	return ok
}

func (p *Poll) TotalVotes() (total uint64) {
	for _, v := range p.Votes {
		total += v
	}

	return
}

func (p *Poll) Results() []PollResult {
	results := make([]PollResult, len(p.Options))
	for i, option := range p.Options {
		results[i] = PollResult{Option: option, Votes: p.Votes[i]}
	}

	return results
}

// clone returns a deep copy; callers outside the contract never see
// the stored poll itself.
func (p *Poll) clone() *Poll {
	copied := *p

	copied.Options = make([]string, len(p.Options))
	copy(copied.Options, p.Options)

	copied.Votes = make([]uint64, len(p.Votes))
	copy(copied.Votes, p.Votes)

	copied.Voters = make(map[Address]int, len(p.Voters))
	for voter, optionIndex := range p.Voters {
		copied.Voters[voter] = optionIndex
	}

	return &copied
}

func (p *Poll) Serialize() (encoded []byte, err error) {
	encoded, err = json.Marshal(p)
	return
}

func (p *Poll) String() string {
	encoded, _ := common.JSONMarshalIndent(p)
	return string(encoded)
}
