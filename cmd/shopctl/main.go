// shopctl is a terminal client for the storefront backend: search the
// catalog, browse categories, inspect products, and exercise the
// recommendation models, all scoped to the same persisted visitor id a
// browser session would carry.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
