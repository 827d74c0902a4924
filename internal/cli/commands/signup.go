package commands

import (
	"LinkKeeper/internal/cli/api"
	"LinkKeeper/internal/config"
	"context"
	"fmt"
	"net/http"
)

type credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type signupCmd struct{}

func (signupCmd) Name() string        { return "signup" }
func (signupCmd) Description() string { return "Create an account" }
func (signupCmd) Usage() string       { return "signup <userName> <password>" }
func (signupCmd) Group() string       { return "Account" }

func (signupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/v1/Signup"),
		credentials{UserName: args[0], Password: args[1]}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp.StatusCode, body)
	}
	fmt.Fprintln(Out, "Signed up successfully. Now run: lkcli signin", args[0], "<password>")
	return nil
}

func init() { RegisterCmd(signupCmd{}) }
