package main

import "github.com/boot-sandre/ouch/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the ouch cli
func main() {
	cmd.Run(version, commit, date)
}
