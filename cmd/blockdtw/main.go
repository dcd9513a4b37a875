// Command blockdtw prints the Global-mode block DTW distance between two
// strings.
//
// Usage:
//
//	blockdtw Q T [max_value]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/blockdtw/blockdtw"
	"github.com/blockdtw/blockdtw/block"
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		log.Fatal("usage: blockdtw Q T [max_value]")
	}

	q, t := args[0], args[1]

	var maxValue []int64
	if len(args) == 3 {
		v, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			log.Fatalf("invalid max_value %q: %v", args[2], err)
		}
		maxValue = []int64{v}
	}

	dist, err := blockdtw.BlockDTW(q, t, blockdtw.Global, maxValue...)
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

	fmt.Println(dist)
}
