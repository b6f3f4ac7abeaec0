// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Addressbook.
//
// Usage:
//
//	go run . [flags] <command>
//	./addressbook [flags] <command>
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/addressbook/ui/cli"
)

func main() {
	// Cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
