package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/LiXi/internal/config"
	"github.com/janpfeifer/LiXi/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagAddr   = flag.String("addr", "", "Address to listen on (default: $LIXI_ADDR, or auto-port on localhost)")
	flagWebDir = flag.String("web", "", "Directory with the static assets (default: $LIXI_WEB_DIR, or ./web)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load()
	if err != nil {
		klog.Fatalf("Failed to load config: %v", err)
	}
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}
	if *flagWebDir != "" {
		cfg.WebDir = *flagWebDir
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("LiXi server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		klog.Fatal(err)
	}
}
