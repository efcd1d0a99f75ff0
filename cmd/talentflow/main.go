// Command talentflow runs the job/seeker recommendation engine.
//
//	@title			TalentFlow Engine API
//	@version		1.0
//	@description	Job and seeker recommendations by text similarity.
//	@BasePath		/
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
