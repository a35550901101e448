package main

import (
	"fmt"
	"log"
	"os"

	"github.com/savthe/prediction-confidence/domain/confidence"
)

// Reads one observation from stdin and prints its two-sided confidence level
// under the reference distribution.
func main() {
	table, err := confidence.Build(confidence.DefaultConfig())
	if err != nil {
		log.Fatalf("failed to build confidence table: %v", err)
	}

	var x float64
	if _, err := fmt.Fscan(os.Stdin, &x); err != nil {
		log.Fatalf("failed to read observation: %v", err)
	}

	fmt.Println(table.Evaluate(x))
}
