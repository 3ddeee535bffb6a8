package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// PollObserver publishes poll lifecycle changes: `"created"`, `"voted"`
// and `"deactivated"`, each with the poll id as payload.
var PollObserver = observable.New()
