package tui

import (
	"time"

	"github.com/ionut-t/tourbillon/store/snapshots"
)

// frameMsg drives one frame of the session at the given host time.
type frameMsg time.Time

type snapshotSavedMsg struct {
	record snapshots.Record
}

type notificationErrorMsg struct {
	err error
}

type copiedMsg struct {
	label string
}
