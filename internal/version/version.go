package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Overridden with -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	apply(info)
}

func apply(info *debug.BuildInfo) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		version = v
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = shortRevision(setting.Value, commit)
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
				date = t.Format("2006-01-02")
			}
		}
	}
}

func shortRevision(rev, fallback string) string {
	switch {
	case rev == "":
		return fallback
	case len(rev) > 7:
		return rev[:7]
	default:
		return rev
	}
}

func Version() string {
	return version
}

func Commit() string {
	return commit
}

func Date() string {
	return date
}

// String is the one-line form used in logs.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}
