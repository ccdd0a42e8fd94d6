// Command graphsim-httpd serves the graph-state simulator's scenario API
// over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kegliz/graphstate/internal/config"
	"github.com/kegliz/graphstate/internal/httpapi"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml/json/toml), optional")
	port := flag.Int("port", 0, "port to listen on (overrides config when > 0)")
	localOnly := flag.Bool("local-only", false, "bind to 127.0.0.1 only")
	flag.Parse()

	c, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphsim-httpd: loading config: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		c.Server.Port = *port
	}
	if *localOnly {
		c.Server.LocalOnly = true
	}

	srv, err := httpapi.NewServer(httpapi.ServerOptions{C: c, Version: version})
	if err != nil {
		fmt.Fprintf(os.Stderr, "graphsim-httpd: building server: %v\n", err)
		os.Exit(1)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(c.Server.Port, c.Server.LocalOnly)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(os.Stderr, "graphsim-httpd: server exited: %v\n", err)
			os.Exit(1)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "graphsim-httpd: shutdown: %v\n", err)
			os.Exit(1)
		}
	}
}
