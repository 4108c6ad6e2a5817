package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/gen/ent/category"
	"github.com/docledger/docledger/internal/entity"
)

type CategoryRepository interface {
	// GetOrCreateDefault returns the user's catch-all category, creating it
	// on first use.
	GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*entity.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
}

type categoryRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCategoryRepository(entc *ent.Client, log *slog.Logger) CategoryRepository {
	return &categoryRepo{ent: entc, log: log}
}

func (r *categoryRepo) GetOrCreateDefault(ctx context.Context, userID uuid.UUID) (*entity.Category, error) {
	c, err := r.ent.Category.Query().
		Where(category.UserID(userID), category.Name(constants.DefaultCategoryName)).
		First(ctx)
	if err == nil {
		return toCategory(c), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	c, err = r.ent.Category.Create().
		SetUserID(userID).
		SetName(constants.DefaultCategoryName).
		Save(ctx)
	if err != nil {
		// Lost a race with a concurrent create; the unique index guarantees
		// the row now exists.
		if ent.IsConstraintError(err) {
			c, err = r.ent.Category.Query().
				Where(category.UserID(userID), category.Name(constants.DefaultCategoryName)).
				First(ctx)
			if err != nil {
				return nil, err
			}
			return toCategory(c), nil
		}
		r.log.Error("default category create failed", "user_id", userID, "error", err)
		return nil, err
	}
	r.log.Info("default category created", "user_id", userID, "category_id", c.ID)
	return toCategory(c), nil
}

func (r *categoryRepo) List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	cats, err := r.ent.Category.Query().
		Where(category.UserID(userID)).
		Order(ent.Asc(category.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Category, len(cats))
	for i, c := range cats {
		out[i] = toCategory(c)
	}
	return out, nil
}
