package commands

import (
	"LinkKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
)

// ErrUsage — неверные аргументы, dispatcher печатает usage команды.
var ErrUsage = errors.New("usage")

// Command — подкоманда lkcli.
type Command interface {
	Name() string
	Description() string
	// Usage — строка вида "add <type> <link> <title> <tag>".
	Usage() string
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// grouped — команда относится к разделу справки (Account, Content, Sharing).
type grouped interface {
	Group() string
}

// aliased — у команды есть короткие имена.
type aliased interface {
	Aliases() []string
}

const otherGroup = "Other"

// порядок разделов в справке
var groupOrder = []string{"Account", "Content", "Sharing", otherGroup}

var (
	registry = map[string]Command{}
	aliases  = map[string]string{}
)

// Out — writer для вывода CLI, в тестах подменяется.
var Out io.Writer = os.Stdout

// RegisterCmd регистрирует команду и её алиасы. Вызывается из init().
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
	if a, ok := cmd.(aliased); ok {
		for _, alias := range a.Aliases() {
			aliases[alias] = cmd.Name()
		}
	}
}

// Get ищет команду по имени или алиасу, без учёта регистра.
func Get(name string) (Command, bool) {
	name = strings.ToLower(name)
	if target, ok := aliases[name]; ok {
		name = target
	}
	c, ok := registry[name]
	return c, ok
}

// List возвращает команды, отсортированные по имени.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

func groupOf(c Command) string {
	if g, ok := c.(grouped); ok && g.Group() != "" {
		return g.Group()
	}
	return otherGroup
}

func usageLine(c Command) string {
	line := c.Usage()
	if a, ok := c.(aliased); ok && len(a.Aliases()) > 0 {
		line += " (" + strings.Join(a.Aliases(), ", ") + ")"
	}
	return line
}

// FormatGlobalUsage собирает общую справку по разделам.
func FormatGlobalUsage() string {
	byGroup := map[string][]Command{}
	for _, c := range List() {
		g := groupOf(c)
		byGroup[g] = append(byGroup[g], c)
	}

	var b strings.Builder
	b.WriteString("LinkKeeper CLI\n\n")
	b.WriteString("Usage:\n  lkcli [-base-url <host:port>] [-https] [-token-file <path>] <command> [args]\n")
	b.WriteString("  lkcli help <command>\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 3, ' ', 0)
	for _, g := range groupOrder {
		cmds := byGroup[g]
		if len(cmds) == 0 {
			continue
		}
		fmt.Fprintf(tw, "\n%s:\n", g)
		for _, c := range cmds {
			fmt.Fprintf(tw, "  %s\t%s\n", usageLine(c), c.Description())
		}
	}
	_ = tw.Flush()
	return b.String()
}
