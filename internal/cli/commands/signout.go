package commands

import (
	"LinkKeeper/internal/cli/api"
	"LinkKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type signoutCmd struct{}

func (signoutCmd) Name() string        { return "signout" }
func (signoutCmd) Description() string { return "Sign out and forget the local session" }
func (signoutCmd) Usage() string       { return "signout" }
func (signoutCmd) Group() string       { return "Account" }
func (signoutCmd) Aliases() []string   { return []string{"logout"} }

// Run удаляет локальную сессию даже если сервер недоступен.
func (signoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	tok, err := loadToken(cfg)
	if errors.Is(err, ErrNotSignedIn) {
		fmt.Fprintln(Out, "Not signed in")
		return nil
	}
	if _, _, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/v1/Signout"), nil, tok); err != nil {
		fmt.Fprintln(Out, "warning: server signout failed:", err)
	}
	if err := authStore(cfg).Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	fmt.Fprintln(Out, "Signed out")
	return nil
}

func init() { RegisterCmd(signoutCmd{}) }
