package constants_test

import (
	"fmt"
	"strings"

	"github.com/agentstation/ctrlmap/pkg/constants"
)

// Example demonstrates the report naming constants
func Example() {
	fmt.Println(constants.TechniqueReportFile)
	fmt.Println(constants.ControlReportDetailedFile)
	// Output:
	// attack_priorities_with_nist.csv
	// nist_with_techniques_detailed.csv
}

// Example_join demonstrates how report cells are joined
func Example_join() {
	cells := []string{constants.SafeguardPrefix + "4", constants.SafeguardPrefix + "12"}
	fmt.Println(strings.Join(cells, constants.JoinSeparator))
	fmt.Printf("%o\n", constants.DirPermissions)
	// Output:
	// CIS-4|CIS-12
	// 755
}
