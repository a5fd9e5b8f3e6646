// portal-admin заводит учётные записи портала:
//
//	portal-admin -config ./local.yaml -email admin@fund.org -role admin
//
// Пароль берётся из -password или переменной PORTAL_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pribylovaa/foundation-portal/internal/config"
	"github.com/pribylovaa/foundation-portal/internal/models"
	"github.com/pribylovaa/foundation-portal/internal/pkg/redact"
	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/storage/postgres"
	logctx "github.com/pribylovaa/foundation-portal/pkg/log"
)

func main() {
	var (
		configPath string
		email      string
		password   string
		role       string
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&email, "email", "", "account email")
	flag.StringVar(&password, "password", os.Getenv("PORTAL_PASSWORD"), "account password")
	flag.StringVar(&role, "role", string(models.RoleTeacher), "account role: admin or teacher")
	flag.Parse()

	if email == "" || password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	ctx = logctx.Into(ctx, log)

	st, err := postgres.New(ctx, cfg.DB.URL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	// Объектное хранилище для создания пользователя не нужно.
	svc := service.New(st, nil, cfg)

	user, err := svc.CreateUser(ctx, email, password, models.Role(role))
	if err != nil {
		log.Error("create_user_failed",
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		st.Close()
		os.Exit(1)
	}

	fmt.Println(user.ID.String())
}
