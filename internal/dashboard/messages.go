package dashboard

import (
	"time"

	"github.com/sentinel-lite/sentinel/internal/render"
)

// tickMsg fires the periodic dashboard counter refresh.
type tickMsg time.Time

// loadRequestMsg asks Update to start a load; Init uses it because Init can't
// mutate the model.
type loadRequestMsg struct {
	section Section
}

// loadedMsg carries a completed section load.
type loadedMsg struct {
	section Section
	seq     uint64
	table   render.Table
	err     error
	at      time.Time
}

// actionDoneMsg reports the outcome of a mutating action.
type actionDoneMsg struct {
	section Section
	success string // notification on success
	failure string // notification on failure
	err     error
}

// dismissMsg removes one notification after its TTL.
type dismissMsg struct {
	id uint64
}
