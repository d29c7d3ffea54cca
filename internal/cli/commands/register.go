package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"GopherMarket/internal/cli/api"
	fsrepo "GopherMarket/internal/cli/repo/fs"
	"GopherMarket/internal/config"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and store auth token" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	username, email, password := args[0], args[1], args[2]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/auth/register"
	req := RegisterRequest{Username: username, Email: email, Password: password}
	resp, body, err := api.PostJSON(endpoint, req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusOK {
		if err := api.PersistAuthFromBody(body); err != nil {
			return fmt.Errorf("saving auth: %w", err)
		}
		_ = fsrepo.AuthFSStore{}.SaveLogin(email)
		fmt.Fprintln(Out, "Registered successfully")
		return nil
	}
	if resp.StatusCode == http.StatusConflict {
		return errors.New("email already in use")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
