// lm is the CLI for querying and authoring libman manifest trees.
package main

import (
	"os"

	"github.com/libman-dev/libman/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
