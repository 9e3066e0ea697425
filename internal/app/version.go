package app

import "strings"

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/myenglish-srs/internal/app.Version=1.2.0 -X github.com/heartmarshall/myenglish-srs/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/deck
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the string printed by `deck --version`: the version,
// followed by the commit and build time when they were stamped in.
func BuildVersion() string {
	var extra []string
	if Commit != "" {
		extra = append(extra, "commit "+Commit)
	}
	if BuildTime != "" {
		extra = append(extra, "built "+BuildTime)
	}
	if len(extra) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(extra, ", ") + ")"
}
