package version

import (
	"runtime/debug"
	"testing"

	"internhasha/internal/platform/testkit"
)

func TestInfo_FallsBackToVCSStamp(t *testing.T) {
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0f3c2a1"},
			{Key: "vcs.time", Value: "2026-03-02T09:00:00Z"},
		}}, true
	})
	got := Info()
	want := BuildInfo{Service: "internhasha", Version: "dev", Commit: "0f3c2a1", Date: "2026-03-02T09:00:00Z"}
	if got != want {
		t.Fatalf("got %+v", got)
	}
}

func TestInfo_LdflagsWin(t *testing.T) {
	testkit.Swap(t, &commit, "abcd")
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0f3c2a1"}}}, true
	})
	if got := Info(); got.Commit != "abcd" || got.Date != "unknown" {
		t.Fatalf("got %+v", got)
	}
}

func TestInfo_NoBuildInfo(t *testing.T) {
	testkit.Swap(t, &readBuildInfo, func() (*debug.BuildInfo, bool) { return nil, false })
	if got := Info(); got.Commit != "none" || got.Date != "unknown" {
		t.Fatalf("got %+v", got)
	}
}
