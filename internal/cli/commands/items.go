package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"GopherMarket/internal/cli/api"
	"GopherMarket/internal/config"
)

type itemRow struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать каталог товаров"
}
func (itemsCmd) Usage() string { return "items" }

func (itemsCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/items"
	resp, body, err := api.GetJSON(endpoint, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var list []itemRow
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Каталог пуст")
		return nil
	}
	for _, it := range list {
		desc := ""
		if it.Description != nil {
			desc = "  " + *it.Description
		}
		fmt.Fprintf(Out, "- #%d  %s%s\n", it.ID, it.Title, desc)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
