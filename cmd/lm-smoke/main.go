// lm-smoke is a minimal installation check for the lm library: it
// calls lm.CalculateValue once, reports the outcome on stdout, and
// exits 0 on the expected value and 1 otherwise.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/libman-dev/libman/lm"
)

func run(w io.Writer, calc func() int) int {
	if calc() == lm.ExpectedValue {
		fmt.Fprintln(w, "We calculated the value correctly")
		return 0
	}
	fmt.Fprintln(w, "The value was incorrect!")
	return 1
}

func main() {
	os.Exit(run(os.Stdout, lm.CalculateValue))
}
