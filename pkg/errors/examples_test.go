package errors_test

import (
	"fmt"
	"strconv"

	"github.com/agentstation/ctrlmap/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := errors.NewConfigError("allowlist", "cannot open controls.txt", nil)

	if errors.IsConfigError(err) {
		fmt.Println("Configuration problem")
	}

	// Output: Configuration problem
}

// Example_formatError demonstrates wrapping a conversion failure.
func Example_formatError() {
	_, convErr := strconv.Atoi("1.1")
	err := errors.NewFormatError("safeguard", "1.1", convErr)

	fmt.Println(errors.IsFormatError(err))
	// Output: true
}

// Example_parseError demonstrates classifying malformed input.
func Example_parseError() {
	err := &errors.ParseError{
		Format:  "json",
		File:    "priorities.json",
		Message: "entry 3: missing rank",
	}

	switch {
	case errors.IsConfigError(err):
		fmt.Println("fix the settings document")
	case errors.IsParseError(err):
		fmt.Println("fix the input file")
	}

	// Output: fix the input file
}
