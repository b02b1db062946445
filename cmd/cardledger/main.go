// Command cardledger processes credit card ledger events.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/cardledger/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitProcessing)
	}
}
