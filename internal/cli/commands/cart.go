package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"GopherMarket/internal/cli/api"
	fsrepo "GopherMarket/internal/cli/repo/fs"
	"GopherMarket/internal/config"
)

type cartAddRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity,omitempty"`
}

type cartRemoveRequest struct {
	ItemID int64 `json:"item_id"`
}

type cartRow struct {
	CartID   int64  `json:"cart_id"`
	Quantity int    `json:"quantity"`
	ItemID   int64  `json:"item_id"`
	Title    string `json:"title"`
}

func loadToken() (string, error) {
	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return "", errors.New("not logged in, run: login <email> <password>")
	}
	return token, nil
}

// cartCmd показывает содержимое корзины текущего пользователя.
type cartCmd struct{}

func (cartCmd) Name() string        { return "cart" }
func (cartCmd) Description() string { return "Показать корзину" }
func (cartCmd) Usage() string       { return "cart" }

func (cartCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	token, err := loadToken()
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/cart"
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
	var rows []cartRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintln(Out, "Корзина пуста")
		return nil
	}
	total := 0
	for _, row := range rows {
		fmt.Fprintf(Out, "- #%d  %s  x%d\n", row.ItemID, row.Title, row.Quantity)
		total += row.Quantity
	}
	fmt.Fprintf(Out, "Всего позиций: %d, товаров: %d\n", len(rows), total)
	return nil
}

// cartAddCmd добавляет товар в корзину (или увеличивает количество).
type cartAddCmd struct{}

func (cartAddCmd) Name() string        { return "cart-add" }
func (cartAddCmd) Description() string { return "Добавить товар в корзину" }
func (cartAddCmd) Usage() string       { return "cart-add <item_id> [quantity]" }

func (cartAddCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	quantity := 0
	if len(args) == 2 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			return ErrUsage
		}
	}
	token, err := loadToken()
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/cart/add"
	resp, body, err := api.PostJSON(endpoint, cartAddRequest{ItemID: itemID, Quantity: quantity}, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		var entry struct {
			Quantity int `json:"quantity"`
		}
		_ = json.Unmarshal(body, &entry)
		fmt.Fprintf(Out, "Added, item #%d quantity is now %d\n", itemID, entry.Quantity)
		return nil
	case http.StatusUnauthorized:
		return errors.New("token expired, login again")
	case http.StatusNotFound:
		return fmt.Errorf("item %d not found", itemID)
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

// cartRemoveCmd убирает товар из корзины целиком.
type cartRemoveCmd struct{}

func (cartRemoveCmd) Name() string        { return "cart-remove" }
func (cartRemoveCmd) Description() string { return "Убрать товар из корзины" }
func (cartRemoveCmd) Usage() string       { return "cart-remove <item_id>" }

func (cartRemoveCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	token, err := loadToken()
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/cart/remove"
	resp, body, err := api.DoJSON(http.MethodDelete, endpoint, cartRemoveRequest{ItemID: itemID}, token)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		fmt.Fprintf(Out, "Removed item #%d from cart\n", itemID)
		return nil
	case http.StatusUnauthorized:
		return errors.New("token expired, login again")
	case http.StatusNotFound:
		return fmt.Errorf("item %d is not in the cart", itemID)
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() {
	RegisterCmd(cartCmd{})
	RegisterCmd(cartAddCmd{})
	RegisterCmd(cartRemoveCmd{})
}
