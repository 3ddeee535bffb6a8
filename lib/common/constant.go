package common

const (
	// InitialPollID is where poll numbering starts. The counter only
	// ever moves forward, even across deactivations.
	InitialPollID uint64 = 0

	// MinPollOptions rejects degenerate ballots at creation time.
	MinPollOptions int = 2
)
