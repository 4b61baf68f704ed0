// ghostctl is the ops companion to the server: it talks to the same
// Postgres store for migrations, seeding and quick stats without going
// through the HTTP gateway.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
