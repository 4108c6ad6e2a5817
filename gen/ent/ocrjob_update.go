// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/google/uuid"
)

// OCRJobUpdate is the builder for updating OCRJob entities.
type OCRJobUpdate struct {
	config
	hooks    []Hook
	mutation *OCRJobMutation
}

// Where appends a list predicates to the OCRJobUpdate builder.
func (_u *OCRJobUpdate) Where(ps ...predicate.OCRJob) *OCRJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *OCRJobUpdate) SetUserID(v uuid.UUID) *OCRJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableUserID(v *uuid.UUID) *OCRJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *OCRJobUpdate) SetDocID(v uuid.UUID) *OCRJobUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableDocID(v *uuid.UUID) *OCRJobUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OCRJobUpdate) SetStatus(v string) *OCRJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableStatus(v *string) *OCRJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OCRJobUpdate) SetAttempts(v int) *OCRJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableAttempts(v *int) *OCRJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OCRJobUpdate) AddAttempts(v int) *OCRJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *OCRJobUpdate) SetNextRunAt(v time.Time) *OCRJobUpdate {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableNextRunAt(v *time.Time) *OCRJobUpdate {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *OCRJobUpdate) ClearNextRunAt() *OCRJobUpdate {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OCRJobUpdate) SetLastError(v string) *OCRJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableLastError(v *string) *OCRJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OCRJobUpdate) ClearLastError() *OCRJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OCRJobUpdate) SetStartedAt(v time.Time) *OCRJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableStartedAt(v *time.Time) *OCRJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OCRJobUpdate) ClearStartedAt() *OCRJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OCRJobUpdate) SetFinishedAt(v time.Time) *OCRJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OCRJobUpdate) SetNillableFinishedAt(v *time.Time) *OCRJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OCRJobUpdate) ClearFinishedAt() *OCRJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OCRJobUpdate) SetUser(v *User) *OCRJobUpdate {
	return _u.SetUserID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *OCRJobUpdate) SetDocumentID(id uuid.UUID) *OCRJobUpdate {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OCRJobUpdate) SetDocument(v *Document) *OCRJobUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the OCRJobMutation object of the builder.
func (_u *OCRJobUpdate) Mutation() *OCRJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OCRJobUpdate) ClearUser() *OCRJobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OCRJobUpdate) ClearDocument() *OCRJobUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OCRJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OCRJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OCRJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := ocrjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "OCRJob.attempts": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRJob.user"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRJob.document"`)
	}
	return nil
}

func (_u *OCRJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ocrjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ocrjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(ocrjob.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(ocrjob.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ocrjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ocrjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ocrjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ocrjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ocrjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OCRJobUpdateOne is the builder for updating a single OCRJob entity.
type OCRJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *OCRJobUpdateOne) SetUserID(v uuid.UUID) *OCRJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableUserID(v *uuid.UUID) *OCRJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *OCRJobUpdateOne) SetDocID(v uuid.UUID) *OCRJobUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableDocID(v *uuid.UUID) *OCRJobUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OCRJobUpdateOne) SetStatus(v string) *OCRJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableStatus(v *string) *OCRJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *OCRJobUpdateOne) SetAttempts(v int) *OCRJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableAttempts(v *int) *OCRJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *OCRJobUpdateOne) AddAttempts(v int) *OCRJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextRunAt sets the "next_run_at" field.
func (_u *OCRJobUpdateOne) SetNextRunAt(v time.Time) *OCRJobUpdateOne {
	_u.mutation.SetNextRunAt(v)
	return _u
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableNextRunAt(v *time.Time) *OCRJobUpdateOne {
	if v != nil {
		_u.SetNextRunAt(*v)
	}
	return _u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (_u *OCRJobUpdateOne) ClearNextRunAt() *OCRJobUpdateOne {
	_u.mutation.ClearNextRunAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *OCRJobUpdateOne) SetLastError(v string) *OCRJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableLastError(v *string) *OCRJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *OCRJobUpdateOne) ClearLastError() *OCRJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OCRJobUpdateOne) SetStartedAt(v time.Time) *OCRJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableStartedAt(v *time.Time) *OCRJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OCRJobUpdateOne) ClearStartedAt() *OCRJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OCRJobUpdateOne) SetFinishedAt(v time.Time) *OCRJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OCRJobUpdateOne) SetNillableFinishedAt(v *time.Time) *OCRJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OCRJobUpdateOne) ClearFinishedAt() *OCRJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *OCRJobUpdateOne) SetUser(v *User) *OCRJobUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetDocumentID sets the "document" edge to the Document entity by ID.
func (_u *OCRJobUpdateOne) SetDocumentID(id uuid.UUID) *OCRJobUpdateOne {
	_u.mutation.SetDocumentID(id)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OCRJobUpdateOne) SetDocument(v *Document) *OCRJobUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the OCRJobMutation object of the builder.
func (_u *OCRJobUpdateOne) Mutation() *OCRJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *OCRJobUpdateOne) ClearUser() *OCRJobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OCRJobUpdateOne) ClearDocument() *OCRJobUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the OCRJobUpdate builder.
func (_u *OCRJobUpdateOne) Where(ps ...predicate.OCRJob) *OCRJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OCRJobUpdateOne) Select(field string, fields ...string) *OCRJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OCRJob entity.
func (_u *OCRJobUpdateOne) Save(ctx context.Context) (*OCRJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRJobUpdateOne) SaveX(ctx context.Context) *OCRJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OCRJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ocrjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OCRJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := ocrjob.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "OCRJob.attempts": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRJob.user"`)
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRJob.document"`)
	}
	return nil
}

func (_u *OCRJobUpdateOne) sqlSave(ctx context.Context) (_node *OCRJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrjob.Table, ocrjob.Columns, sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrjob.FieldID)
		for _, f := range fields {
			if !ocrjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ocrjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(ocrjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(ocrjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextRunAt(); ok {
		_spec.SetField(ocrjob.FieldNextRunAt, field.TypeTime, value)
	}
	if _u.mutation.NextRunAtCleared() {
		_spec.ClearField(ocrjob.FieldNextRunAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(ocrjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(ocrjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ocrjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(ocrjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ocrjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ocrjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OCRJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
