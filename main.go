package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carson-networks/decline-insights/api"
	"github.com/carson-networks/decline-insights/internal/generator"
	"github.com/carson-networks/decline-insights/internal/service"
	"github.com/carson-networks/decline-insights/internal/storage"
)

func main() {
	store := storage.NewStorage(generator.GeneratePopulation())
	svc := service.NewService(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := api.NewCLI(svc, os.Stdin, os.Stdout, os.Stderr)
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "decline-insights: %v\n", err)
		stop()
		os.Exit(1)
	}
}
