package commands

import (
	"LinkKeeper/internal/cli/api"
	"LinkKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
)

type shareResponse struct {
	Message string `json:"message"`
	Hash    string `json:"hash"`
	User    string `json:"user"`
}

// toggleShare всегда шлёт POST: сервер принимает и GET с телом, но не все прокси его пропускают.
func toggleShare(ctx context.Context, cfg *config.Config, enable bool) (*shareResponse, error) {
	tok, err := loadToken(cfg)
	if err != nil {
		return nil, err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/v1/share"),
		map[string]bool{"share": enable}, tok)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, api.ServerError(resp.StatusCode, body)
	}
	var sr shareResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &sr, nil
}

type shareCmd struct{}

func (shareCmd) Name() string        { return "share" }
func (shareCmd) Description() string { return "Publish your collection and print the public link" }
func (shareCmd) Usage() string       { return "share" }
func (shareCmd) Group() string       { return "Sharing" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sr, err := toggleShare(ctx, cfg, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Hash:", sr.Hash)
	fmt.Fprintln(Out, "Link:", endpoint(cfg, "/api/v1/"+sr.Hash))
	return nil
}

type unshareCmd struct{}

func (unshareCmd) Name() string        { return "unshare" }
func (unshareCmd) Description() string { return "Revoke your public link" }
func (unshareCmd) Usage() string       { return "unshare" }
func (unshareCmd) Group() string       { return "Sharing" }

func (unshareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	sr, err := toggleShare(ctx, cfg, false)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, sr.Message)
	return nil
}

type sharedCmd struct{}

func (sharedCmd) Name() string        { return "shared" }
func (sharedCmd) Description() string { return "Show a collection by its public hash or link" }
func (sharedCmd) Usage() string       { return "shared <hash|link>" }
func (sharedCmd) Group() string       { return "Sharing" }
func (sharedCmd) Aliases() []string   { return []string{"view"} }

func (sharedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	hash := hashFromArg(args[0])
	if hash == "" {
		return ErrUsage
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "/api/v1/"+url.PathEscape(hash)), nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp.StatusCode, body)
	}
	var lr contentListResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(lr.Content) > 0 && lr.Content[0].UserID != nil {
		fmt.Fprintln(Out, "Shared by", lr.Content[0].UserID.UserName)
	}
	printContent(Out, lr.Content)
	return nil
}

// hashFromArg принимает hash или полную публичную ссылку
func hashFromArg(arg string) string {
	if u, err := url.Parse(arg); err == nil && u.Scheme != "" && u.Host != "" {
		return path.Base(strings.TrimRight(u.Path, "/"))
	}
	return strings.Trim(arg, "/")
}

func init() {
	RegisterCmd(shareCmd{})
	RegisterCmd(unshareCmd{})
	RegisterCmd(sharedCmd{})
}
