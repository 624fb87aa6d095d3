// Command evacroute plans fire-aware evacuation routes over floor layout
// files and prints the result as JSON.
//
//	evacroute plan --floor-file ground.csv --start 0,0,0 --exit 0,10,10 \
//	    --fire 0,5,5 --stage spread
//	evacroute fire --floor-file ground.csv --fire 0,5,5 --stage growth
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
