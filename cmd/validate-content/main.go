// Package main provides an offline validator for the rules catalog.
// It loads every definition, runs cross-reference checks, and reports
// findings without touching the database or the network.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cory-johannsen/sheet/internal/game/catalog"
)

func main() {
	contentDir := flag.String("content", "content", "path to rules catalog directory")
	flag.Parse()

	start := time.Now()
	reg, err := catalog.Load(*contentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	findings := catalog.ValidateRefs(reg)
	for _, f := range findings {
		fmt.Fprintln(os.Stderr, f.String())
	}
	if len(findings) > 0 {
		fmt.Fprintf(os.Stderr, "%d finding(s)\n", len(findings))
		os.Exit(1)
	}

	fmt.Printf("catalog ok: %d ancestries, %d classes, %d feats in %s\n",
		len(reg.Ancestries()), len(reg.Classes()), len(reg.Feats()),
		time.Since(start).Round(time.Millisecond))
}
