package tui

import "time"

type view int

const (
	viewMain view = iota
	viewHelp
)

// Layout constants
const (
	panelWidth        = 38
	panelMinTermWidth = 90
	statusBarHeight   = 1
	borderSize        = 1
)

const NotificationDuration = 2 * time.Second
