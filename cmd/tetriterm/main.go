package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/qnkhuat/tetriterm/pkg"
	"github.com/qnkhuat/tetriterm/pkg/config"
	"github.com/qnkhuat/tetriterm/pkg/game"
	"github.com/qnkhuat/tetriterm/pkg/mino"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	logPath := flag.String("log", "", "path to log file")
	nick := flag.String("nick", "", "nickname")
	seed := flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	themeName := flag.String("theme", "", "color theme")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "tetriterm needs an interactive terminal")
		os.Exit(1)
	}

	c, err := config.Load(*configPath, *configPath != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *logPath != "" {
		c.Log = *logPath
	}
	if *seed != 0 {
		c.Seed = *seed
	}
	if *themeName != "" {
		c.Theme = *themeName
	}

	pkg.InitLog(c.Log, "CLIENT: ")

	theme, err := c.ResolveTheme()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	name := pkg.Nickname(*nick)
	log.Printf("New client %s", name)

	e := game.NewEngine(c.Game, game.WithRandomizer(mino.NewRandomizer(c.Seed)))
	cl := pkg.NewClient(e, theme, name, c.Game.Rows, c.Game.Cols)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cl.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Printf("Client %s quit", name)
}
