// gscd runs the sanctuary side of the BiblePay reward-distribution consensus.
package main

import (
	"os"

	"github.com/biblepay/go-gsc/cmd"
	"github.com/biblepay/go-gsc/node"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := node.GetCommand().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
