// main is the entry point for the healthdash CLI.
package main

import (
	"github.com/huangsam/healthdash/cmd"
	"github.com/huangsam/healthdash/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run healthdash", err)
	}
}
