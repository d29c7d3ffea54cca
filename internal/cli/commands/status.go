package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"GopherMarket/internal/cli/api"
	fsrepo "GopherMarket/internal/cli/repo/fs"
	"GopherMarket/internal/config"
)

type meResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show current account" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return errors.New("not logged in, run: login <email> <password>")
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/auth/me"
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("token expired, login again")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var me meResponse
	if err := json.Unmarshal(body, &me); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Logged in as %s <%s> (id=%d)\n", me.Username, me.Email, me.ID)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
