package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/gen/ent/transaction"
	"github.com/docledger/docledger/internal/entity"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Transaction, error)
}

type transactionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTransactionRepository(entc *ent.Client, log *slog.Logger) TransactionRepository {
	return &transactionRepo{ent: entc, log: log}
}

func (r *transactionRepo) Create(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	created, err := r.ent.Transaction.Create().
		SetUserID(tx.UserID).
		SetCategoryID(tx.CategoryID).
		SetType(tx.Type).
		SetDate(tx.Date).
		SetAmount(tx.Amount).
		SetCurrency(tx.Currency).
		SetVendor(tx.Vendor).
		SetNillableDescription(tx.Description).
		Save(ctx)
	if err != nil {
		r.log.Error("transaction create failed", "user_id", tx.UserID, "error", err)
		return nil, err
	}
	r.log.Info("transaction created", "transaction_id", created.ID, "user_id", tx.UserID, "amount", tx.Amount)
	return toTransaction(created), nil
}

func (r *transactionRepo) List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Transaction, error) {
	q := r.ent.Transaction.Query().Where(transaction.UserID(userID))
	if from != nil {
		q = q.Where(transaction.DateGTE(*from))
	}
	if to != nil {
		q = q.Where(transaction.DateLTE(*to))
	}
	txs, err := q.Order(ent.Desc(transaction.FieldDate)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Transaction, len(txs))
	for i, t := range txs {
		out[i] = toTransaction(t)
	}
	return out, nil
}
