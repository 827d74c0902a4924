package commands

import (
	"LinkKeeper/internal/cli/api"
	"LinkKeeper/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
)

type signinCmd struct{}

func (signinCmd) Name() string        { return "signin" }
func (signinCmd) Description() string { return "Sign in and store the session cookie" }
func (signinCmd) Usage() string       { return "signin <userName> <password>" }
func (signinCmd) Group() string       { return "Account" }
func (signinCmd) Aliases() []string   { return []string{"login"} }

func (signinCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/v1/Signin"),
		credentials{UserName: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return errors.New("invalid user name or password")
	default:
		return api.ServerError(resp.StatusCode, body)
	}

	tok, err := api.SessionFromResponse(resp)
	if err != nil {
		return err
	}
	store := authStore(cfg)
	if err := store.Save(tok); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	if err := store.SaveUserName(args[0]); err != nil {
		return fmt.Errorf("saving user name: %w", err)
	}
	fmt.Fprintln(Out, "Signed in as", args[0])
	return nil
}

func init() { RegisterCmd(signinCmd{}) }
