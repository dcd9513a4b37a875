// Command patmatch prints the best pattern-match alignment position of Q
// within T: the minimal last-row distance and the text index attaining it.
//
// Usage:
//
//	patmatch Q T
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/blockdtw/blockdtw"
	"github.com/blockdtw/blockdtw/block"
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		log.Fatal("usage: patmatch Q T")
	}

	q, t := args[0], args[1]

	row, err := blockdtw.BlockDTWPatternMatch(q, t)
	if err != nil {
		switch {
		case errors.Is(err, blockdtw.ErrEmptyInput):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		case errors.Is(err, block.ErrInconsistentBorders):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(3)
		default:
			log.Fatal(err)
		}
	}

	best, bestJ := row[0], 0
	for j := 1; j < len(row); j++ {
		if row[j] <= best {
			best, bestJ = row[j], j
		}
	}

	fmt.Printf("%d %d\n", best, bestJ)
}
