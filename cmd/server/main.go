package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"

	"github.com/qnkhuat/tetriterm/pkg"
)

func main() {
	listen := flag.String("listen", pkg.SshPort, "SSH address to listen on")
	binary := flag.String("binary", "tetriterm", "path to the tetriterm client")
	hostKey := flag.String("hostkey", "", "path to SSH host key, generated when empty")
	logPath := flag.String("log", "./server.log", "path to log file")
	flag.Parse()

	pkg.InitLog(*logPath, "SERVER: ")

	s, err := pkg.NewServer(*listen, *binary, *hostKey)
	if err != nil {
		color.Red("Failed to start server: %s", err)
		os.Exit(1)
	}

	go func() {
		log.Printf("Listening at %s", *listen)
		color.Green("tetriterm server listening at %s", *listen)
		color.Cyan("Play with: ssh -p <port> <host>")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Wait for terminate signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	<-sigc

	color.Yellow("Shutting down, %d players connected", s.Players.Len())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %s", err)
	}
	log.Println("Server stopped")
}
