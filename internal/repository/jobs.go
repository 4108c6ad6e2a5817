package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/docledger/docledger/constants"
	"github.com/docledger/docledger/gen/ent"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/internal/common"
	"github.com/docledger/docledger/internal/entity"
)

// JobRepository is the durable work queue backing extraction. One row per
// document; re-enqueueing an existing document resets the row in place.
type JobRepository interface {
	// Enqueue inserts a pending job for the document, or resets the
	// existing one back to pending. Attempts are preserved across
	// re-enqueues; use Reset for a clean slate.
	Enqueue(ctx context.Context, userID, docID uuid.UUID) error
	// Reset zeroes attempts and clears bookkeeping so a manual retry gets
	// the full attempt budget again.
	Reset(ctx context.Context, docID uuid.UUID) error
	// NextEligible returns the oldest pending job whose next_run_at is
	// null or has passed and whose attempt budget remains, or (nil, nil)
	// when the queue is drained.
	NextEligible(ctx context.Context, now time.Time, maxAttempts int) (*entity.OCRJob, error)
	// Claim flips pending -> running and increments attempts. Returns
	// false when another worker won the row.
	Claim(ctx context.Context, jobID uuid.UUID, now time.Time) (bool, error)
	MarkSuccess(ctx context.Context, jobID uuid.UUID, now time.Time) error
	// ScheduleRetry puts the job back to pending with a future run time.
	ScheduleRetry(ctx context.Context, jobID uuid.UUID, runAt time.Time, errMsg string) error
	// MarkFailed terminates the job; the document keeps the error text.
	MarkFailed(ctx context.Context, jobID uuid.UUID, now time.Time, errMsg string) error
	// ReclaimStale returns running jobs that started before cutoff and
	// still have attempts left to pending, covering workers that died
	// mid-claim. Rows with no attempts left belong to FailStale.
	ReclaimStale(ctx context.Context, cutoff time.Time, maxAttempts int) (int, error)
	// FailStale terminally fails running jobs that started before cutoff
	// with the attempt budget spent, returning them so callers can mark
	// the documents.
	FailStale(ctx context.Context, cutoff time.Time, maxAttempts int, now time.Time, errMsg string) ([]*entity.OCRJob, error)
	GetByDocID(ctx context.Context, docID uuid.UUID) (*entity.OCRJob, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, log: log}
}

func (r *jobRepo) Enqueue(ctx context.Context, userID, docID uuid.UUID) error {
	err := r.ent.OCRJob.Create().
		SetUserID(userID).
		SetDocID(docID).
		SetStatus(string(constants.JobPending)).
		OnConflictColumns(ocrjob.FieldDocID).
		Update(func(u *ent.OCRJobUpsert) {
			u.SetStatus(string(constants.JobPending))
			u.ClearNextRunAt()
			u.ClearLastError()
		}).
		Exec(ctx)
	if err != nil {
		r.log.Error("job enqueue failed", "doc_id", docID, "error", err)
		return err
	}
	r.log.Info("job enqueued", "doc_id", docID, "user_id", userID)
	return nil
}

func (r *jobRepo) Reset(ctx context.Context, docID uuid.UUID) error {
	n, err := r.ent.OCRJob.Update().
		Where(ocrjob.DocID(docID)).
		SetStatus(string(constants.JobPending)).
		SetAttempts(0).
		ClearNextRunAt().
		ClearLastError().
		ClearStartedAt().
		ClearFinishedAt().
		Save(ctx)
	if err != nil {
		r.log.Error("job reset failed", "doc_id", docID, "error", err)
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *jobRepo) NextEligible(ctx context.Context, now time.Time, maxAttempts int) (*entity.OCRJob, error) {
	j, err := r.ent.OCRJob.Query().
		Where(
			ocrjob.StatusEQ(string(constants.JobPending)),
			ocrjob.AttemptsLT(maxAttempts),
			ocrjob.Or(
				ocrjob.NextRunAtIsNil(),
				ocrjob.NextRunAtLTE(now),
			),
		).
		Order(
			ocrjob.ByNextRunAt(entsql.OrderNullsFirst()),
			ocrjob.ByCreatedAt(),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toJob(j), nil
}

func (r *jobRepo) Claim(ctx context.Context, jobID uuid.UUID, now time.Time) (bool, error) {
	// Conditional update is the claim: only one worker sees the row flip.
	n, err := r.ent.OCRJob.Update().
		Where(
			ocrjob.ID(jobID),
			ocrjob.StatusEQ(string(constants.JobPending)),
		).
		SetStatus(string(constants.JobRunning)).
		SetStartedAt(now).
		AddAttempts(1).
		ClearNextRunAt().
		Save(ctx)
	if err != nil {
		r.log.Error("job claim failed", "job_id", jobID, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobRepo) MarkSuccess(ctx context.Context, jobID uuid.UUID, now time.Time) error {
	return r.ent.OCRJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobSuccess)).
		SetFinishedAt(now).
		ClearLastError().
		Exec(ctx)
}

func (r *jobRepo) ScheduleRetry(ctx context.Context, jobID uuid.UUID, runAt time.Time, errMsg string) error {
	err := r.ent.OCRJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobPending)).
		SetNextRunAt(runAt).
		SetLastError(common.Truncate(errMsg, constants.MaxErrorLen)).
		Exec(ctx)
	if err != nil {
		r.log.Error("job retry schedule failed", "job_id", jobID, "error", err)
	}
	return err
}

func (r *jobRepo) MarkFailed(ctx context.Context, jobID uuid.UUID, now time.Time, errMsg string) error {
	err := r.ent.OCRJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobFailed)).
		SetFinishedAt(now).
		SetLastError(common.Truncate(errMsg, constants.MaxErrorLen)).
		Exec(ctx)
	if err != nil {
		r.log.Error("job fail mark failed", "job_id", jobID, "error", err)
	}
	return err
}

func (r *jobRepo) ReclaimStale(ctx context.Context, cutoff time.Time, maxAttempts int) (int, error) {
	n, err := r.ent.OCRJob.Update().
		Where(
			ocrjob.StatusEQ(string(constants.JobRunning)),
			ocrjob.StartedAtLT(cutoff),
			ocrjob.AttemptsLT(maxAttempts),
		).
		SetStatus(string(constants.JobPending)).
		ClearStartedAt().
		Save(ctx)
	if err != nil {
		r.log.Error("stale job reclaim failed", "error", err)
		return 0, err
	}
	if n > 0 {
		r.log.Warn("reclaimed stale running jobs", "count", n)
	}
	return n, nil
}

func (r *jobRepo) FailStale(ctx context.Context, cutoff time.Time, maxAttempts int, now time.Time, errMsg string) ([]*entity.OCRJob, error) {
	rows, err := r.ent.OCRJob.Query().
		Where(
			ocrjob.StatusEQ(string(constants.JobRunning)),
			ocrjob.StartedAtLT(cutoff),
			ocrjob.AttemptsGTE(maxAttempts),
		).
		All(ctx)
	if err != nil {
		r.log.Error("stale job scan failed", "error", err)
		return nil, err
	}

	out := make([]*entity.OCRJob, 0, len(rows))
	for _, row := range rows {
		err := r.ent.OCRJob.UpdateOneID(row.ID).
			SetStatus(string(constants.JobFailed)).
			SetFinishedAt(now).
			SetLastError(common.Truncate(errMsg, constants.MaxErrorLen)).
			Exec(ctx)
		if err != nil {
			r.log.Error("stale job fail mark failed", "job_id", row.ID, "error", err)
			return out, err
		}
		out = append(out, toJob(row))
	}
	if len(out) > 0 {
		r.log.Warn("failed stale jobs with no attempts left", "count", len(out))
	}
	return out, nil
}

func (r *jobRepo) GetByDocID(ctx context.Context, docID uuid.UUID) (*entity.OCRJob, error) {
	j, err := r.ent.OCRJob.Query().
		Where(ocrjob.DocID(docID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toJob(j), nil
}
