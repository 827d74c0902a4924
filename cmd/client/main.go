// lkcli — консольный клиент LinkKeeper.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"LinkKeeper/internal/cli/commands"
	"LinkKeeper/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// одна команда — один-два HTTP запроса
const commandTimeout = 30 * time.Second

func main() {
	os.Exit(run())
}

// run возвращает код выхода; os.Exit вызывается только после отработки defer.
func run() int {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Fprintf(commands.Out, "lkcli %s (built %s)\nserver: %s\n", version, buildDate, cfg.ServerURL)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	return commands.Dispatch(ctx, cfg, flag.Args())
}
