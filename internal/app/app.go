// Package app wires configuration, the game and the Telegram runtime together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m3rciful/gamebot/core/bootstrap"
	corecmd "github.com/m3rciful/gamebot/core/cmd"
	coreconfig "github.com/m3rciful/gamebot/core/config"
	"github.com/m3rciful/gamebot/core/logger"
	tg "github.com/m3rciful/gamebot/core/telegram"
	"github.com/m3rciful/gamebot/core/telegram/commands"
	"github.com/m3rciful/gamebot/core/telegram/router"
	"github.com/m3rciful/gamebot/internal/access"
	"github.com/m3rciful/gamebot/internal/event"
	"github.com/m3rciful/gamebot/internal/game"
	"github.com/m3rciful/gamebot/internal/gateway"
	"github.com/m3rciful/gamebot/internal/transport"
)

// App holds the long-lived components of the bot.
type App struct {
	cfg     *coreconfig.Config
	gate    *access.Gate
	gateway *transport.Telegram
	game    *game.Coordinator
	inbound *transport.Inbound
}

// Bootstrap initialises logging and builds the game for cfg.
func Bootstrap(cfg *coreconfig.Config) (corecmd.TelegramApp, error) {
	if err := bootstrap.Run(bootstrap.Options{Config: cfg}); err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// New builds the app without touching global state.
func New(cfg *coreconfig.Config) *App {
	gate := access.NewGate(cfg.Telegram.AdminIDs)
	gw := transport.NewTelegram(nil)
	coord := game.New(gate, gw, gateway.ChatID(cfg.Telegram.GroupChatID))
	return &App{
		cfg:     cfg,
		gate:    gate,
		gateway: gw,
		game:    coord,
		inbound: transport.NewInbound(coord),
	}
}

// Registry declares the /start command and one callback per button.
func (a *App) Registry() (*tg.Registry, error) {
	reg := tg.NewRegistry()
	if err := reg.RegisterCommand("/start", commands.Command{
		Handler:     a.inbound.Command("start"),
		Description: "Open the admin menu",
		AdminOnly:   true,
	}); err != nil {
		return nil, err
	}
	for _, b := range event.Buttons() {
		if err := reg.RegisterCallback(b.String(), a.inbound.Press(b)); err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}
	return reg, nil
}

// TelegramRunOptions assembles middlewares, routes and lifecycle hooks.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg, err := a.Registry()
	if err != nil {
		return tg.RunOptions{}, err
	}

	routes := []tg.Route{router.CallbackRoute(reg, router.CallbackOptions{})}
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		IsAdmin: a.gate.IsPrivileged,
	})...)
	routes = append(routes, router.TextRoutes(a.inbound, reg, router.TextOptions{})...)

	return tg.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt tg.Runtime) error {
			if rt.Bot == nil {
				return fmt.Errorf("app: runtime has no bot")
			}
			a.gateway.Bind(rt.Bot)
			logger.Info(ctx, "app", "game.ready",
				slog.Int64("chat_id", a.cfg.Telegram.GroupChatID),
				slog.Int("admins", len(a.gate.Admins())),
			)
			return nil
		},
	}, nil
}
