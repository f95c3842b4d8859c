// Command avlreplay replays insert/remove/get workloads against an AVL map
// and checks the tree after every step.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "avlreplay: %v\n", err)
		os.Exit(1)
	}
}
