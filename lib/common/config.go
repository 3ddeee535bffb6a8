package common

//
// Config collects the knobs of a voting contract. Every value has a
// working default from `NewConfig`, so callers only touch what they
// need to change.
//
type Config struct {
	// InitialPollID is the id handed to the first created poll; ids
	// grow by one from there and are never reused.
	InitialPollID uint64

	// MinPollOptions is the smallest allowed option count for a new
	// poll. A ballot with a single option is not a choice.
	MinPollOptions int

	Clock Clock
}

func NewConfig() Config {
	p := Config{}

	p.InitialPollID = InitialPollID
	p.MinPollOptions = MinPollOptions
	p.Clock = LocalClock{}

	return p
}
