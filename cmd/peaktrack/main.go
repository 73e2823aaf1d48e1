package main

import (
	"github.com/c9s/peaktrack/pkg/cmd"
)

func main() {
	cmd.Execute()
}
