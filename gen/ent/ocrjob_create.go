// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/google/uuid"
)

// OCRJobCreate is the builder for creating a OCRJob entity.
type OCRJobCreate struct {
	config
	mutation *OCRJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *OCRJobCreate) SetUserID(v uuid.UUID) *OCRJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDocID sets the "doc_id" field.
func (_c *OCRJobCreate) SetDocID(v uuid.UUID) *OCRJobCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *OCRJobCreate) SetStatus(v string) *OCRJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableStatus(v *string) *OCRJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *OCRJobCreate) SetAttempts(v int) *OCRJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableAttempts(v *int) *OCRJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *OCRJobCreate) SetNextRunAt(v time.Time) *OCRJobCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableNextRunAt(v *time.Time) *OCRJobCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *OCRJobCreate) SetLastError(v string) *OCRJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableLastError(v *string) *OCRJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *OCRJobCreate) SetStartedAt(v time.Time) *OCRJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableStartedAt(v *time.Time) *OCRJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *OCRJobCreate) SetFinishedAt(v time.Time) *OCRJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableFinishedAt(v *time.Time) *OCRJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OCRJobCreate) SetCreatedAt(v time.Time) *OCRJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableCreatedAt(v *time.Time) *OCRJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OCRJobCreate) SetID(v uuid.UUID) *OCRJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OCRJobCreate) SetNillableID(v *uuid.UUID) *OCRJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *OCRJobCreate) SetUser(v *User) *OCRJobCreate {
	return _c.SetUserID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_c *OCRJobCreate) SetDocumentID(id uuid.UUID) *OCRJobCreate {
	_c.mutation.SetDocumentID(id)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *OCRJobCreate) SetDocument(v *Document) *OCRJobCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the OCRJobMutation object of the builder.
func (_c *OCRJobCreate) Mutation() *OCRJobMutation {
	return _c.mutation
}

// Save creates the OCRJob in the database.
func (_c *OCRJobCreate) Save(ctx context.Context) (*OCRJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRJobCreate) SaveX(ctx context.Context) *OCRJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ocrjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := ocrjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRJobCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "OCRJob.user_id"`)}
	}
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "OCRJob.doc_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "OCRJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OCRJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "OCRJob.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := ocrjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "OCRJob.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OCRJob.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "OCRJob.user"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "OCRJob.document"`)}
	}
	return nil
}

func (_c *OCRJobCreate) sqlSave(ctx context.Context) (*OCRJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OCRJobCreate) createSpec() (*OCRJob, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrjob.Table, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(ocrjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(ocrjob.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(ocrjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ocrjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrjob.UserTable,
			Columns: []string{ocrjob.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   ocrjob.DocumentTable,
			Columns: []string{ocrjob.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRJob.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRJobUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OCRJobCreate) OnConflict(opts ...sql.ConflictOption) *OCRJobUpsertOne {
	_c.conflict = opts
	return &OCRJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OCRJobCreate) OnConflictColumns(columns ...string) *OCRJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OCRJobUpsertOne{
		create: _c,
	}
}

type (
	// OCRJobUpsertOne is the builder for "upsert"-ing
	//  one OCRJob node.
	OCRJobUpsertOne struct {
		create *OCRJobCreate
	}

	// OCRJobUpsert is the "OnConflict" setter.
	OCRJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *OCRJobUpsert) SetUserID(v uuid.UUID) *OCRJobUpsert {
	u.Set(ocrjob.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateUserID() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldUserID)
	return u
}

// SetDocID sets the "doc_id" field.
func (u *OCRJobUpsert) SetDocID(v uuid.UUID) *OCRJobUpsert {
	u.Set(ocrjob.FieldDocID, v)
	return u
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateDocID() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldDocID)
	return u
}

// SetStatus sets the "status" field.
func (u *OCRJobUpsert) SetStatus(v string) *OCRJobUpsert {
	u.Set(ocrjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateStatus() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *OCRJobUpsert) SetAttempts(v int) *OCRJobUpsert {
	u.Set(ocrjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateAttempts() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *OCRJobUpsert) AddAttempts(v int) *OCRJobUpsert {
	u.Add(ocrjob.FieldAttempts, v)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *OCRJobUpsert) SetNextRunAt(v time.Time) *OCRJobUpsert {
	u.Set(ocrjob.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateNextRunAt() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *OCRJobUpsert) ClearNextRunAt() *OCRJobUpsert {
	u.SetNull(ocrjob.FieldNextRunAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *OCRJobUpsert) SetLastError(v string) *OCRJobUpsert {
	u.Set(ocrjob.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateLastError() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *OCRJobUpsert) ClearLastError() *OCRJobUpsert {
	u.SetNull(ocrjob.FieldLastError)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *OCRJobUpsert) SetStartedAt(v time.Time) *OCRJobUpsert {
	u.Set(ocrjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateStartedAt() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OCRJobUpsert) ClearStartedAt() *OCRJobUpsert {
	u.SetNull(ocrjob.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *OCRJobUpsert) SetFinishedAt(v time.Time) *OCRJobUpsert {
	u.Set(ocrjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *OCRJobUpsert) UpdateFinishedAt() *OCRJobUpsert {
	u.SetExcluded(ocrjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *OCRJobUpsert) ClearFinishedAt() *OCRJobUpsert {
	u.SetNull(ocrjob.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ocrjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OCRJobUpsertOne) UpdateNewValues() *OCRJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ocrjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ocrjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OCRJobUpsertOne) Ignore() *OCRJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRJobUpsertOne) DoNothing() *OCRJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRJobCreate.OnConflict
// documentation for more info.
func (u *OCRJobUpsertOne) Update(set func(*OCRJobUpsert)) *OCRJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OCRJobUpsertOne) SetUserID(v uuid.UUID) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateUserID() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateUserID()
	})
}

// SetDocID sets the "doc_id" field.
func (u *OCRJobUpsertOne) SetDocID(v uuid.UUID) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateDocID() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateDocID()
	})
}

// SetStatus sets the "status" field.
func (u *OCRJobUpsertOne) SetStatus(v string) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateStatus() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *OCRJobUpsertOne) SetAttempts(v int) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *OCRJobUpsertOne) AddAttempts(v int) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateAttempts() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *OCRJobUpsertOne) SetNextRunAt(v time.Time) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateNextRunAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *OCRJobUpsertOne) ClearNextRunAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *OCRJobUpsertOne) SetLastError(v string) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateLastError() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OCRJobUpsertOne) ClearLastError() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *OCRJobUpsertOne) SetStartedAt(v time.Time) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateStartedAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OCRJobUpsertOne) ClearStartedAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *OCRJobUpsertOne) SetFinishedAt(v time.Time) *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *OCRJobUpsertOne) UpdateFinishedAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *OCRJobUpsertOne) ClearFinishedAt() *OCRJobUpsertOne {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *OCRJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OCRJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: OCRJobUpsertOne.ID is not supported by MySQL driver. Use OCRJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OCRJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OCRJobCreateBulk is the builder for creating many OCRJob entities in bulk.
type OCRJobCreateBulk struct {
	config
	err      error
	builders []*OCRJobCreate
	conflict []sql.ConflictOption
}

// Save creates the OCRJob entities in the database.
func (_c *OCRJobCreateBulk) Save(ctx context.Context) ([]*OCRJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OCRJobCreateBulk) SaveX(ctx context.Context) []*OCRJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OCRJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OCRJobUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *OCRJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *OCRJobUpsertBulk {
	_c.conflict = opts
	return &OCRJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OCRJobCreateBulk) OnConflictColumns(columns ...string) *OCRJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OCRJobUpsertBulk{
		create: _c,
	}
}

// OCRJobUpsertBulk is the builder for "upsert"-ing
// a bulk of OCRJob nodes.
type OCRJobUpsertBulk struct {
	create *OCRJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ocrjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *OCRJobUpsertBulk) UpdateNewValues() *OCRJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ocrjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ocrjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OCRJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OCRJobUpsertBulk) Ignore() *OCRJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OCRJobUpsertBulk) DoNothing() *OCRJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OCRJobCreateBulk.OnConflict
// documentation for more info.
func (u *OCRJobUpsertBulk) Update(set func(*OCRJobUpsert)) *OCRJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OCRJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *OCRJobUpsertBulk) SetUserID(v uuid.UUID) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateUserID() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateUserID()
	})
}

// SetDocID sets the "doc_id" field.
func (u *OCRJobUpsertBulk) SetDocID(v uuid.UUID) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetDocID(v)
	})
}

// UpdateDocID sets the "doc_id" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateDocID() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateDocID()
	})
}

// SetStatus sets the "status" field.
func (u *OCRJobUpsertBulk) SetStatus(v string) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateStatus() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *OCRJobUpsertBulk) SetAttempts(v int) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *OCRJobUpsertBulk) AddAttempts(v int) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateAttempts() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *OCRJobUpsertBulk) SetNextRunAt(v time.Time) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateNextRunAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *OCRJobUpsertBulk) ClearNextRunAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *OCRJobUpsertBulk) SetLastError(v string) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateLastError() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *OCRJobUpsertBulk) ClearLastError() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearLastError()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *OCRJobUpsertBulk) SetStartedAt(v time.Time) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateStartedAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *OCRJobUpsertBulk) ClearStartedAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *OCRJobUpsertBulk) SetFinishedAt(v time.Time) *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *OCRJobUpsertBulk) UpdateFinishedAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *OCRJobUpsertBulk) ClearFinishedAt() *OCRJobUpsertBulk {
	return u.Update(func(s *OCRJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *OCRJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OCRJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OCRJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OCRJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
