// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	api      adapter.APIClient
	out      io.Writer
	commands map[string]command

	logger *logger.Logger
}

// NewApp constructs the client around api. Results are written to out.
func NewApp(api adapter.APIClient, out io.Writer, logger *logger.Logger) *App {
	a := &App{api: api, out: out, logger: logger}
	a.commands = map[string]command{
		"register":       {usage: "register -email E -password P -name N", run: a.register},
		"login":          {usage: "login -email E -password P", run: a.login},
		"me":             {usage: "me", run: a.me},
		"update-me":      {usage: "update-me [-name N] [-password P]", run: a.updateMe},
		"tags":           {usage: "tags", run: a.listTags},
		"add-tag":        {usage: "add-tag -name N", run: a.addTag},
		"ingredients":    {usage: "ingredients", run: a.listIngredients},
		"add-ingredient": {usage: "add-ingredient -name N", run: a.addIngredient},
		"recipes":        {usage: "recipes", run: a.listRecipes},
		"recipe":         {usage: "recipe ID", run: a.getRecipe},
		"add-recipe":     {usage: "add-recipe -title T -minutes M -price P [-description D] [-link L] [-tags 1,2] [-ingredients 3,4]", run: a.addRecipe},
		"delete-recipe":  {usage: "delete-recipe ID", run: a.deleteRecipe},
		"upload-image":   {usage: "upload-image ID PATH", run: a.uploadImage},
		"health":         {usage: "health", run: a.health},
		"version":        {usage: "version", run: a.version},
	}
	return a
}

// Run executes the sub-command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; available commands:\n%s", ErrNoCommand, a.Usage())
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q; available commands:\n%s", ErrUnknownCommand, args[0], a.Usage())
	}

	a.logger.Debug().Str("command", args[0]).Msg("running client command")
	if err := cmd.run(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}

// Usage lists the sub-commands, one per line.
func (a *App) Usage() string {
	lines := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		lines = append(lines, "  "+cmd.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.api.Register(ctx, models.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.api.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	return a.print(models.TokenResponse{Token: token})
}

func (a *App) me(ctx context.Context, _ []string) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) updateMe(ctx context.Context, args []string) error {
	fs := newFlagSet("update-me")
	name := fs.String("name", "", "new display name")
	password := fs.String("password", "", "new password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var update models.UserUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			update.Name = name
		case "password":
			update.Password = password
		}
	})
	if update.IsEmpty() {
		return fmt.Errorf("%w: -name or -password", ErrMissingArgument)
	}

	user, err := a.api.UpdateMe(ctx, update)
	if err != nil {
		return err
	}
	return a.print(user)
}

func (a *App) listTags(ctx context.Context, _ []string) error {
	tags, err := a.api.ListTags(ctx)
	if err != nil {
		return err
	}
	return a.print(tags)
}

func (a *App) addTag(ctx context.Context, args []string) error {
	name, err := parseName("add-tag", args)
	if err != nil {
		return err
	}

	tag, err := a.api.CreateTag(ctx, name)
	if err != nil {
		return err
	}
	return a.print(tag)
}

func (a *App) listIngredients(ctx context.Context, _ []string) error {
	ingredients, err := a.api.ListIngredients(ctx)
	if err != nil {
		return err
	}
	return a.print(ingredients)
}

func (a *App) addIngredient(ctx context.Context, args []string) error {
	name, err := parseName("add-ingredient", args)
	if err != nil {
		return err
	}

	ingredient, err := a.api.CreateIngredient(ctx, name)
	if err != nil {
		return err
	}
	return a.print(ingredient)
}

func (a *App) listRecipes(ctx context.Context, _ []string) error {
	recipes, err := a.api.ListRecipes(ctx)
	if err != nil {
		return err
	}
	return a.print(recipes)
}

func (a *App) getRecipe(ctx context.Context, args []string) error {
	recipeID, err := parseID(args)
	if err != nil {
		return err
	}

	recipe, err := a.api.GetRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	return a.print(recipe)
}

func (a *App) addRecipe(ctx context.Context, args []string) error {
	fs := newFlagSet("add-recipe")
	title := fs.String("title", "", "recipe title")
	minutes := fs.Int("minutes", 0, "preparation time in minutes")
	price := fs.String("price", "", "price, e.g. 5.50")
	description := fs.String("description", "", "free-form description")
	link := fs.String("link", "", "external link")
	tags := fs.String("tags", "", "comma-separated tag IDs")
	ingredients := fs.String("ingredients", "", "comma-separated ingredient IDs")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RecipeRequest{
		Title:       title,
		TimeMinutes: minutes,
		Description: *description,
		Link:        *link,
	}

	parsedPrice, err := models.ParsePrice(*price)
	if err != nil {
		return fmt.Errorf("%w: price: %w", ErrInvalidArgument, err)
	}
	req.Price = &parsedPrice

	if req.Tags, err = parseIDList(*tags); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	if req.Ingredients, err = parseIDList(*ingredients); err != nil {
		return fmt.Errorf("ingredients: %w", err)
	}

	recipe, err := a.api.CreateRecipe(ctx, req)
	if err != nil {
		return err
	}
	return a.print(recipe)
}

func (a *App) deleteRecipe(ctx context.Context, args []string) error {
	recipeID, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.api.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "recipe %d deleted\n", recipeID)
	return err
}

func (a *App) uploadImage(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: recipe ID and image path", ErrMissingArgument)
	}

	recipeID, err := parseID(args[:1])
	if err != nil {
		return err
	}

	file, err := os.Open(args[1])
	if err != nil {
		return fmt.Errorf("error opening image: %w", err)
	}
	defer file.Close()

	image, err := a.api.UploadRecipeImage(ctx, recipeID, filepath.Base(args[1]), file)
	if err != nil {
		return err
	}
	return a.print(image)
}

func (a *App) health(ctx context.Context, _ []string) error {
	health, err := a.api.Health(ctx)
	if err != nil {
		return err
	}
	return a.print(health)
}

func (a *App) version(ctx context.Context, _ []string) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseName(cmd string, args []string) (string, error) {
	fs := newFlagSet(cmd)
	name := fs.String("name", "", "name")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *name, nil
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: recipe ID", ErrMissingArgument)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: recipe ID %q", ErrInvalidArgument, args[0])
	}
	return id, nil
}

func parseIDList(raw string) ([]int64, error) {
	ids := []int64{}
	if strings.TrimSpace(raw) == "" {
		return ids, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: ID %q", ErrInvalidArgument, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

var _ Client = (*App)(nil)
