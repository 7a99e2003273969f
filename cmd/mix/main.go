// Command mix is the command line front end of the Mix language: it
// scaffolds projects and parses them, reporting diagnostics.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newRootCommand(newGlobalState(ctx)).execute()
}
