// Package lm is the public entry point of the libman toolkit.
package lm

// ExpectedValue is the value CalculateValue is contracted to return.
// The smoke binary checks the library against it.
const ExpectedValue = 42

// CalculateValue returns the library's well-known check value. It is
// deterministic and exists so installations can verify they linked a
// working copy of the library.
func CalculateValue() int {
	return ExpectedValue
}
