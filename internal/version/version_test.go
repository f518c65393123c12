package version

import (
	"runtime/debug"
	"testing"
)

func TestShortRevision(t *testing.T) {
	tests := []struct {
		rev, want string
	}{
		{"", "unknown"},
		{"abc", "abc"},
		{"0123456789abcdef", "0123456"},
	}

	for _, tt := range tests {
		if got := shortRevision(tt.rev, "unknown"); got != tt.want {
			t.Errorf("shortRevision(%q) = %q, want %q", tt.rev, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() { version, commit, date = oldVersion, oldCommit, oldDate })

	apply(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "feedfacecafebeef"},
			{Key: "vcs.time", Value: "2025-06-01T10:00:00Z"},
		},
	})

	if Version() != "v1.2.3" || Commit() != "feedfac" || Date() != "2025-06-01" {
		t.Errorf("unexpected build info: %s", String())
	}
}
