package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByPhone matches a normalized sender number against phone_number,
	// tolerating a stored leading "+". Returns (nil, nil) on no match.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	// FindByIncomingNumber matches the business number messages arrive on.
	FindByIncomingNumber(ctx context.Context, phone string) (*entity.User, error)
	Create(ctx context.Context, name string, phone, incoming *string) (*entity.User, error)
}

type userRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUserRepository(entc *ent.Client, log *slog.Logger) UserRepository {
	return &userRepo{ent: entc, log: log}
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.ent.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toUser(u), nil
}

func (r *userRepo) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.findByNumber(ctx, user.PhoneNumberIn, phone)
}

func (r *userRepo) FindByIncomingNumber(ctx context.Context, phone string) (*entity.User, error) {
	return r.findByNumber(ctx, user.WhatsappIncomingNumberIn, phone)
}

func (r *userRepo) findByNumber(ctx context.Context, pred func(...string) predicate.User, phone string) (*entity.User, error) {
	phone = strings.TrimPrefix(phone, "+")
	if phone == "" {
		return nil, nil
	}
	// Stored numbers may or may not carry a leading "+".
	u, err := r.ent.User.Query().
		Where(pred(phone, "+"+phone)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toUser(u), nil
}

func (r *userRepo) Create(ctx context.Context, name string, phone, incoming *string) (*entity.User, error) {
	u, err := r.ent.User.Create().
		SetName(name).
		SetNillablePhoneNumber(phone).
		SetNillableWhatsappIncomingNumber(incoming).
		Save(ctx)
	if err != nil {
		r.log.Error("user create failed", "name", name, "error", err)
		return nil, err
	}
	r.log.Info("user created", "user_id", u.ID)
	return toUser(u), nil
}
