// Command bitvec inspects, encodes and combines integer sets from the
// command line.
//
//	bitvec info 1 3 5 1000
//	bitvec encode --format json 1 3 5
//	bitvec decode 2a
//	bitvec op union --left "1 2 3" --right "3 4"
//	bitvec range add --start 10 --end 20 1 2
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bitvec: %v\n", err)
		os.Exit(1)
	}
}
