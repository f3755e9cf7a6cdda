// relgen resolves @relation directives in GraphQL schemas and writes the
// relation report and input-name constants used by code generators.
//
//	relgen resolve ./graph
//	relgen gen --target ./relations ./graph
//	relgen watch --target ./relations ./graph
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
