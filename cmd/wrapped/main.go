// Command wrapped queries the League of Legends wrapped stats backend.
//
// Usage:
//
//	wrapped stats "Hide on bush" KR1
//	wrapped games Caps EUW --region euw1 --page 2 --page-size 20
//	wrapped games Caps EUW --all
//	wrapped analyze Caps EUW EUW1_7012345678 --region euw1
//	wrapped overview Caps EUW
//	wrapped champion-image "Kai'Sa" --latest
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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
