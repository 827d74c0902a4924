package commands

import (
	"LinkKeeper/internal/config"
	"context"
	"errors"
	"fmt"
)

// коды выхода lkcli
const (
	exitOK          = 0
	exitFailed      = 1
	exitUsage       = 2
	exitNotSignedIn = 3
)

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help" || s == "-help"
}

// Dispatch выполняет команду из args (аргументы после глобальных флагов)
// и возвращает код выхода процесса.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}
	if isHelpFlag(args[0]) || args[0] == "help" {
		return help(args[1:])
	}

	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	rest := args[1:]
	if len(rest) > 0 && isHelpFlag(rest[0]) {
		printCommandUsage(c)
		return exitOK
	}

	err := c.Run(ctx, cfg, rest)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		printCommandUsage(c)
		return exitUsage
	case errors.Is(err, ErrNotSignedIn):
		fmt.Fprintln(Out, err)
		return exitNotSignedIn
	default:
		fmt.Fprintf(Out, "%s error: %v\n", c.Name(), err)
		return exitFailed
	}
}

// help: "lkcli help" или "lkcli help <command>"
func help(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitOK
	}
	c, ok := Get(args[0])
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[0])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}
	printCommandUsage(c)
	return exitOK
}

func printCommandUsage(c Command) {
	fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
	fmt.Fprintf(Out, "  %s\n", c.Description())
	if a, ok := c.(aliased); ok && len(a.Aliases()) > 0 {
		fmt.Fprintf(Out, "  aliases: %v\n", a.Aliases())
	}
}
