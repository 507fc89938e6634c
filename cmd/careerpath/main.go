// cmd/careerpath/main.go
package main

import (
	"github.com/mwiater/careerpath/internal/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main starts the careerpath CLI by delegating to the cobra root command.
func main() {
	commands.SetVersionInfo(version, commit, date)
	commands.Execute()
}
