// Command parse prints the intent for each line of input, one per line.
// Lines come from the arguments when given, otherwise from stdin.
//
//	$ parse "use golden key on chest" "N"
//	use golden key on chest => UseOn(golden key, chest)
//	N => North
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jwebster45206/room-engine/pkg/intent"
)

func main() {
	if len(os.Args) > 1 {
		for _, line := range os.Args[1:] {
			printIntent(line)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		printIntent(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}
}

func printIntent(line string) {
	fmt.Printf("%s => %s\n", line, intent.Parse(line))
}
