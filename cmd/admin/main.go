// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command admin creates superuser accounts directly in the database.
//
//	ADMIN_PASSWORD=secret admin -email root@example.com -name Root
//
// Without ADMIN_PASSWORD the password is read from the first line of stdin.
// Storage settings come from the same environment and CONFIG file as the
// server.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const passwordEnv = "ADMIN_PASSWORD"

var (
	errEmailRequired = errors.New("-email is required")
	errEmptyPassword = errors.New("password is empty")
)

type options struct {
	email string
	name  string
}

func main() {
	log := logger.NewConsoleLogger("recipe-admin", os.Stderr)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid arguments")
	}

	cfg, err := config.LoadStructuredConfig(nil)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	password, err := readPassword(os.Getenv(passwordEnv), os.Stdin)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading password")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if _, err = db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	hasher := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	users := service.NewUserService(store.NewUserRepository(db, log), hasher, log)

	user, err := createSuperuser(ctx, users, opts, password)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating superuser")
	}

	fmt.Printf("Superuser %s created successfully.\n", user.Email)
}

func parseArgs(args []string) (options, error) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts options
	fs.StringVar(&opts.email, "email", "", "superuser email")
	fs.StringVar(&opts.name, "name", "", "superuser display name")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("error parsing flags: %w", err)
	}
	if strings.TrimSpace(opts.email) == "" {
		return options{}, errEmailRequired
	}
	return opts, nil
}

// readPassword prefers fromEnv and falls back to the first line of in.
func readPassword(fromEnv string, in io.Reader) (string, error) {
	if fromEnv != "" {
		return fromEnv, nil
	}

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", errEmptyPassword
	}

	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

// createSuperuser applies the same password policy as registration before
// creating the account.
func createSuperuser(ctx context.Context, users service.UserService, opts options, password string) (models.User, error) {
	permissions := models.SuperuserPermissions()
	params := models.CreateUserParams{
		Email:       opts.email,
		Password:    &password,
		Name:        opts.name,
		Permissions: &permissions,
	}

	err := validators.NewUserValidator().Validate(ctx, params, validators.FieldEmail, validators.FieldPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid superuser: %w", err)
	}

	if opts.name == "" {
		return users.CreateSuperuser(ctx, opts.email, password)
	}
	return users.CreateUser(ctx, params)
}
