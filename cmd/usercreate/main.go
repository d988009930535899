// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command usercreate registers a user account with one or more roles in the
// configured storage backend. Storage and security settings are read from the
// same environment variables and JSON file as the server.
//
//	usercreate -name "Jane" -email jane@example.com -password secret -role admin
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-travel-api/internal/config"
	"github.com/MKhiriev/go-travel-api/internal/logger"
	"github.com/MKhiriev/go-travel-api/internal/service"
	"github.com/MKhiriev/go-travel-api/internal/store"
	"github.com/MKhiriev/go-travel-api/models"
)

var errMissingFlags = errors.New("-email, -password and -role are required")

// roleList collects -role values. Both repeated flags and comma-separated
// lists are accepted.
type roleList []models.Role

func (r *roleList) String() string {
	parts := make([]string, len(*r))
	for i, role := range *r {
		parts[i] = string(role)
	}
	return strings.Join(parts, ",")
}

func (r *roleList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		role := models.Role(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		if !role.IsKnown() {
			return fmt.Errorf("unknown role %q", role)
		}
		*r = append(*r, role)
	}
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("usercreate", flag.ContinueOnError)

	var (
		name     string
		email    string
		password string
		roles    roleList
	)
	fs.StringVar(&name, "name", "", "Display name")
	fs.StringVar(&email, "email", "", "Login email")
	fs.StringVar(&password, "password", "", "Plain text password, hashed before storing")
	fs.Var(&roles, "role", "Role to assign: admin or editor (repeatable, comma-separated)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if email == "" || password == "" || len(roles) == 0 {
		return errMissingFlags
	}

	log := logger.NewLogger("go-travel-usercreate")
	ctx = log.WithContext(ctx)

	cfg, err := config.GetEnvConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.Storage.DB.Driver == config.DriverMemory {
		log.Warn().Msg("memory driver selected, the user is discarded on exit")
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	auth := service.NewAuthService(storages.UserRepository, storages.TokenRepository, cfg.App, log)
	user, err := auth.RegisterUser(ctx, models.User{
		Name:     name,
		Email:    email,
		Password: password,
		Roles:    roles,
	})
	if err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Str("email", user.Email).Msg("user created")
	fmt.Fprintf(stdout, "User %s created with roles %s\n", user.Email, roles.String())
	return nil
}
