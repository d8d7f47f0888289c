// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// namedTable describes a user-owned table with an id and a name column:
// tags and ingredients share this shape.
type namedTable struct {
	table    string
	idColumn string
	// errUnknown is returned when a recipe links to a missing row.
	errUnknown error
}

var (
	tagsTable        = namedTable{table: "tags", idColumn: "tag_id", errUnknown: ErrUnknownTag}
	ingredientsTable = namedTable{table: "ingredients", idColumn: "ingredient_id", errUnknown: ErrUnknownIngredient}
)

type namedRow struct {
	id   int64
	name string
}

func (t namedTable) create(ctx context.Context, db *DB, userID int64, name string) (int64, error) {
	query, args, err := db.builder.
		Insert(t.table).
		Columns("user_id", "name").
		Values(userID, name).
		Suffix("RETURNING " + t.idColumn).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func (t namedTable) list(ctx context.Context, db *DB, userID int64) ([]namedRow, error) {
	query, args, err := db.builder.
		Select(t.idColumn, "name").
		From(t.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", t.idColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]namedRow, 0)
	for rows.Next() {
		var row namedRow
		if err = rows.Scan(&row.id, &row.name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return result, nil
}

type tagRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTagRepository constructs a [TagRepository] over the "tags" table.
func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{db: db, logger: logger}
}

func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	id, err := tagsTable.create(ctx, r.db, tag.UserID, tag.Name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.CreateTag").Msg("error inserting tag")
		return models.Tag{}, err
	}

	tag.TagID = id
	return tag, nil
}

func (r *tagRepository) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	rows, err := tagsTable.list(ctx, r.db, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.ListTags").Msg("error listing tags")
		return nil, err
	}

	tags := make([]models.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, models.Tag{TagID: row.id, UserID: userID, Name: row.name})
	}
	return tags, nil
}

type ingredientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIngredientRepository constructs an [IngredientRepository] over the
// "ingredients" table.
func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &ingredientRepository{db: db, logger: logger}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error) {
	id, err := ingredientsTable.create(ctx, r.db, ingredient.UserID, ingredient.Name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ingredientRepository.CreateIngredient").Msg("error inserting ingredient")
		return models.Ingredient{}, err
	}

	ingredient.IngredientID = id
	return ingredient, nil
}

func (r *ingredientRepository) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	rows, err := ingredientsTable.list(ctx, r.db, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ingredientRepository.ListIngredients").Msg("error listing ingredients")
		return nil, err
	}

	ingredients := make([]models.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, models.Ingredient{IngredientID: row.id, UserID: userID, Name: row.name})
	}
	return ingredients, nil
}
