package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cerl-tools/ample"
	"github.com/cerl-tools/ample/internal/config"
	"github.com/cerl-tools/ample/internal/exit"
	"github.com/cerl-tools/ample/internal/httpclient"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, exitResult := config.Parse(os.Args)
	if exitResult != nil {
		exitResult.Print()
		return exitResult.ExitCode
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if result := execute(ctx, cfg); result != nil {
		result.Print()
		return result.ExitCode
	}
	return 0
}

func execute(ctx context.Context, cfg *config.Config) *exit.Result {
	hosts := ample.DefaultHosts()
	if cfg.HostsFile != "" {
		loaded, err := ample.LoadHostsFile(cfg.HostsFile)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		hosts = loaded
	}

	client := ample.New(ample.Config{
		HTTPClient: httpclient.New(cfg.RequestTimeout),
		Hosts:      hosts,
		RateLimit:  cfg.RateLimit,
	})
	host := client.Host(cfg.Target())

	switch cfg.Command {
	case config.CommandHits:
		hits, err := client.Hits(ctx, host, cfg.Arg)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Println(hits)

	case config.CommandSearch:
		result, err := client.Search(ctx, host, cfg.Arg)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "%d hits\n", result.Hits)
		for _, id := range result.IDs() {
			fmt.Println(id)
		}

	case config.CommandRecord:
		record, err := client.Record(ctx, host, cfg.Arg)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Println(string(out))

	case config.CommandExport:
		body, err := client.RecordExport(ctx, host, cfg.Arg, ample.ExportFormat(cfg.Format))
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		os.Stdout.Write(body)

	case config.CommandType:
		record, err := client.Record(ctx, host, cfg.Arg)
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		fmt.Println(ample.RecordType(record))
	}

	return nil
}
