// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var recipeColumns = []string{
	"recipe_id", "user_id", "title", "description",
	"time_minutes", "price", "link", "image",
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// recipeLink describes a join table between recipes and a named table.
type recipeLink struct {
	joinTable string
	target    namedTable
}

var (
	recipeTagsLink        = recipeLink{joinTable: "recipe_tags", target: tagsTable}
	recipeIngredientsLink = recipeLink{joinTable: "recipe_ingredients", target: ingredientsTable}
)

type recipeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipeRepository constructs a [RecipeRepository] over the "recipes"
// table and its join tables.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{db: db, logger: logger}
}

// CreateRecipe inserts the recipe row and its tag and ingredient links in a
// single transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	tagIDs := uniqueIDs(recipe.TagIDs())
	ingredientIDs := uniqueIDs(recipe.IngredientIDs())

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.checkOwned(ctx, tx, tagsTable, recipe.UserID, tagIDs); err != nil {
			return err
		}
		if err := r.checkOwned(ctx, tx, ingredientsTable, recipe.UserID, ingredientIDs); err != nil {
			return err
		}

		query, args, err := r.db.builder.
			Insert("recipes").
			Columns("user_id", "title", "description", "time_minutes", "price", "link").
			Values(recipe.UserID, recipe.Title, recipe.Description, recipe.TimeMinutes, recipe.Price, recipe.Link).
			Suffix("RETURNING recipe_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = tx.QueryRowContext(ctx, query, args...).Scan(&recipe.RecipeID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err = r.link(ctx, tx, recipeTagsLink, recipe.RecipeID, tagIDs); err != nil {
			return err
		}
		if err = r.link(ctx, tx, recipeIngredientsLink, recipe.RecipeID, ingredientIDs); err != nil {
			return err
		}

		return r.loadLinks(ctx, tx, []*models.Recipe{&recipe})
	})
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error creating recipe")
		return models.Recipe{}, err
	}

	return recipe, nil
}

// ListRecipes returns every recipe of userID, newest first.
func (r *recipeRepository) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(recipeColumns...).
		From("recipes").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("recipe_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error selecting recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, scanErr := scanRecipe(rows)
		if scanErr != nil {
			rows.Close()
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	ptrs := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		ptrs[i] = &recipes[i]
	}
	if err = r.loadLinks(ctx, r.db, ptrs); err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error loading recipe links")
		return nil, err
	}

	return recipes, nil
}

// GetRecipe returns the recipe recipeID if it belongs to userID.
func (r *recipeRepository) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(recipeColumns...).
		From("recipes").
		Where(sq.Eq{"recipe_id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Recipe{}, ErrRecipeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Msg("error selecting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = r.loadLinks(ctx, r.db, []*models.Recipe{&recipe}); err != nil {
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Msg("error loading recipe links")
		return models.Recipe{}, err
	}

	return recipe, nil
}

// DeleteRecipe removes the recipe; join rows go with it by cascade.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete("recipes").
		Where(sq.Eq{"recipe_id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Msg("error deleting recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// SetRecipeImage replaces the image key of the recipe and returns the key it
// had before.
func (r *recipeRepository) SetRecipeImage(ctx context.Context, userID, recipeID int64, image string) (*string, error) {
	log := logger.FromContext(ctx)

	selectQuery, selectArgs, err := r.db.builder.
		Select("image").
		From("recipes").
		Where(sq.Eq{"recipe_id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updateQuery, updateArgs, err := r.db.builder.
		Update("recipes").
		Set("image", image).
		Where(sq.Eq{"recipe_id": recipeID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var previous sql.NullString
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&previous); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SetRecipeImage").Msg("error setting recipe image")
		return nil, err
	}

	if !previous.Valid {
		return nil, nil
	}
	return &previous.String, nil
}

// checkOwned fails with the table's [ErrForeignReference] variant unless every id in ids names a
// row of t owned by userID.
func (r *recipeRepository) checkOwned(ctx context.Context, q queryer, t namedTable, userID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From(t.table).
		Where(sq.Eq{"user_id": userID, t.idColumn: ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = q.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if count != len(ids) {
		return t.errUnknown
	}
	return nil
}

func (r *recipeRepository) link(ctx context.Context, q queryer, l recipeLink, recipeID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	insert := r.db.builder.Insert(l.joinTable).Columns("recipe_id", l.target.idColumn)
	for _, id := range ids {
		insert = insert.Values(recipeID, id)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// loadLinks fills Tags and Ingredients of every recipe.
func (r *recipeRepository) loadLinks(ctx context.Context, q queryer, recipes []*models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Recipe, len(recipes))
	ids := make([]int64, 0, len(recipes))
	for _, recipe := range recipes {
		recipe.Tags = make([]models.Tag, 0)
		recipe.Ingredients = make([]models.Ingredient, 0)
		byID[recipe.RecipeID] = recipe
		ids = append(ids, recipe.RecipeID)
	}

	err := r.selectLinked(ctx, q, recipeTagsLink, ids, func(recipeID int64, row namedRow) {
		recipe := byID[recipeID]
		recipe.Tags = append(recipe.Tags, models.Tag{TagID: row.id, UserID: recipe.UserID, Name: row.name})
	})
	if err != nil {
		return err
	}

	return r.selectLinked(ctx, q, recipeIngredientsLink, ids, func(recipeID int64, row namedRow) {
		recipe := byID[recipeID]
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{IngredientID: row.id, UserID: recipe.UserID, Name: row.name})
	})
}

func (r *recipeRepository) selectLinked(ctx context.Context, q queryer, l recipeLink, recipeIDs []int64, add func(recipeID int64, row namedRow)) error {
	query, args, err := r.db.builder.
		Select("j.recipe_id", "t."+l.target.idColumn, "t.name").
		From(l.joinTable + " j").
		Join(fmt.Sprintf("%s t ON t.%s = j.%s", l.target.table, l.target.idColumn, l.target.idColumn)).
		Where(sq.Eq{"j.recipe_id": recipeIDs}).
		OrderBy("t." + l.target.idColumn).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			recipeID int64
			row      namedRow
		)
		if err = rows.Scan(&recipeID, &row.id, &row.name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		add(recipeID, row)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var (
		recipe models.Recipe
		image  sql.NullString
	)
	err := row.Scan(
		&recipe.RecipeID, &recipe.UserID, &recipe.Title, &recipe.Description,
		&recipe.TimeMinutes, &recipe.Price, &recipe.Link, &image,
	)
	if err != nil {
		return models.Recipe{}, err
	}
	if image.Valid {
		recipe.Image = &image.String
	}
	return recipe, nil
}

func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
