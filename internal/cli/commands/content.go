package commands

import (
	"LinkKeeper/internal/cli/api"
	"LinkKeeper/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
)

// contentItem — элемент списка контента в ответе сервера.
type contentItem struct {
	ID    string `json:"_id"`
	Link  string `json:"link"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Tags  *struct {
		Title string `json:"title"`
	} `json:"tags"`
	UserID *struct {
		UserName string `json:"userName"`
	} `json:"userId"`
}

type contentListResponse struct {
	Message string        `json:"message"`
	Content []contentItem `json:"content"`
}

func printContent(w io.Writer, items []contentItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No content")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tTAG\tLINK")
	for _, it := range items {
		tag := ""
		if it.Tags != nil {
			tag = it.Tags.Title
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.ID, it.Type, it.Title, tag, it.Link)
	}
	_ = tw.Flush()
}

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Save a link (type: Youtube|Document|image|audio)" }
func (addCmd) Usage() string       { return "add <type> <link> <title> <tag>" }
func (addCmd) Group() string       { return "Content" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	tok, err := loadToken(cfg)
	if err != nil {
		return err
	}
	payload := map[string]string{"type": args[0], "link": args[1], "title": args[2], "tags": args[3]}
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint(cfg, "/api/v1/content"), payload, tok)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp.StatusCode, body)
	}
	fmt.Fprintln(Out, "Saved:", args[2])
	return nil
}

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "List your saved content" }
func (listCmd) Usage() string       { return "list" }
func (listCmd) Group() string       { return "Content" }
func (listCmd) Aliases() []string   { return []string{"ls"} }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	tok, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint(cfg, "/api/v1/content"), nil, tok)
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
	printContent(Out, lr.Content)
	return nil
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete saved content by id" }
func (deleteCmd) Usage() string       { return "delete <contentId>" }
func (deleteCmd) Group() string       { return "Content" }
func (deleteCmd) Aliases() []string   { return []string{"rm"} }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	tok, err := loadToken(cfg)
	if err != nil {
		return err
	}
	resp, body, err := api.DoJSON(ctx, http.MethodDelete, endpoint(cfg, "/api/v1/content"),
		map[string]string{"contentId": args[0]}, tok)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return api.ServerError(resp.StatusCode, body)
	}
	fmt.Fprintln(Out, "Deleted", args[0])
	return nil
}

func init() {
	RegisterCmd(addCmd{})
	RegisterCmd(listCmd{})
	RegisterCmd(deleteCmd{})
}
