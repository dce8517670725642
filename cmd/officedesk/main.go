// Package main is the entry point for the officedesk CLI application.
package main

import (
	"github.com/dbmrq/officedesk/cmd/officedesk/cmd"
	"github.com/dbmrq/officedesk/internal/version"
)

// Build information, set via ldflags:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 -X main.buildCommit=abc -X main.buildDate=2026-01-01"
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	cmd.Execute()
}
