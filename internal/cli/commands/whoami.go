package commands

import (
	"LinkKeeper/internal/config"
	"context"
	"fmt"
)

type whoamiCmd struct{}

func (whoamiCmd) Name() string        { return "whoami" }
func (whoamiCmd) Description() string { return "Show the locally signed in user" }
func (whoamiCmd) Usage() string       { return "whoami" }
func (whoamiCmd) Group() string       { return "Account" }

func (whoamiCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if _, err := loadToken(cfg); err != nil {
		return err
	}
	name, err := authStore(cfg).LoadUserName()
	if err != nil {
		name = "(unknown)"
	}
	fmt.Fprintln(Out, name)
	return nil
}

func init() { RegisterCmd(whoamiCmd{}) }
