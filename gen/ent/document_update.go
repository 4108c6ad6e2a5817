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
	"github.com/docledger/docledger/gen/ent/category"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/gen/ent/predicate"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/google/uuid"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdate) SetUserID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUserID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DocumentUpdate) SetType(v string) *DocumentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DocumentUpdate) SetDate(v time.Time) *DocumentUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDate(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentUpdate) SetAmount(v float64) *DocumentUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableAmount(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentUpdate) AddAmount(v float64) *DocumentUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DocumentUpdate) SetCurrency(v string) *DocumentUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCurrency(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *DocumentUpdate) SetVendor(v string) *DocumentUpdate {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVendor(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *DocumentUpdate) SetCategoryID(v uuid.UUID) *DocumentUpdate {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCategoryID(v *uuid.UUID) *DocumentUpdate {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *DocumentUpdate) ClearCategoryID() *DocumentUpdate {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdate) SetDescription(v string) *DocumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDescription(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdate) ClearDescription() *DocumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdate) SetDocNumber(v string) *DocumentUpdate {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdate) ClearDocNumber() *DocumentUpdate {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *DocumentUpdate) SetFileKey(v string) *DocumentUpdate {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdate) SetFileName(v string) *DocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileMime sets the "file_mime" field.
func (_u *DocumentUpdate) SetFileMime(v string) *DocumentUpdate {
	_u.mutation.SetFileMime(v)
	return _u
}

// SetNillableFileMime sets the "file_mime" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileMime(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileMime(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdate) SetOcrStatus(v string) *DocumentUpdate {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdate) SetOcrText(v string) *DocumentUpdate {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableOcrText(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdate) ClearOcrText() *DocumentUpdate {
	_u.mutation.ClearOcrText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DocumentUpdate) SetUser(v *User) *DocumentUpdate {
	return _u.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *DocumentUpdate) SetCategory(v *Category) *DocumentUpdate {
	return _u.SetCategoryID(v.ID)
}

// SetJobID sets the "job" edge to the OCRJob entity by ID.
func (_u *DocumentUpdate) SetJobID(id uuid.UUID) *DocumentUpdate {
	_u.mutation.SetJobID(id)
	return _u
}

// SetNillableJobID sets the "job" edge to the OCRJob entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableJobID(id *uuid.UUID) *DocumentUpdate {
	if id != nil {
		_u = _u.SetJobID(*id)
	}
	return _u
}

// SetJob sets the "job" edge to the OCRJob entity.
func (_u *DocumentUpdate) SetJob(v *OCRJob) *DocumentUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DocumentUpdate) ClearUser() *DocumentUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *DocumentUpdate) ClearCategory() *DocumentUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearJob clears the "job" edge to the OCRJob entity.
func (_u *DocumentUpdate) ClearJob() *DocumentUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := document.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Document.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := document.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Document.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := document.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "Document.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileMime(); ok {
		if err := document.FileMimeValidator(v); err != nil {
			return &ValidationError{Name: "file_mime", err: fmt.Errorf(`ent: validator failed for field "Document.file_mime": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.user"`)
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(document.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(document.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(document.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(document.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(document.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileMime(); ok {
		_spec.SetField(document.FieldFileMime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UserTable,
			Columns: []string{document.UserColumn},
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
			Table:   document.UserTable,
			Columns: []string{document.UserColumn},
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
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CategoryTable,
			Columns: []string{document.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CategoryTable,
			Columns: []string{document.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.JobTable,
			Columns: []string{document.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.JobTable,
			Columns: []string{document.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetUserID sets the "user_id" field.
func (_u *DocumentUpdateOne) SetUserID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUserID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *DocumentUpdateOne) SetType(v string) *DocumentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *DocumentUpdateOne) SetDate(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDate(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *DocumentUpdateOne) SetAmount(v float64) *DocumentUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableAmount(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *DocumentUpdateOne) AddAmount(v float64) *DocumentUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DocumentUpdateOne) SetCurrency(v string) *DocumentUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCurrency(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetVendor sets the "vendor" field.
func (_u *DocumentUpdateOne) SetVendor(v string) *DocumentUpdateOne {
	_u.mutation.SetVendor(v)
	return _u
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVendor(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetVendor(*v)
	}
	return _u
}

// SetCategoryID sets the "category_id" field.
func (_u *DocumentUpdateOne) SetCategoryID(v uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetCategoryID(v)
	return _u
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCategoryID(v *uuid.UUID) *DocumentUpdateOne {
	if v != nil {
		_u.SetCategoryID(*v)
	}
	return _u
}

// ClearCategoryID clears the value of the "category_id" field.
func (_u *DocumentUpdateOne) ClearCategoryID() *DocumentUpdateOne {
	_u.mutation.ClearCategoryID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *DocumentUpdateOne) SetDescription(v string) *DocumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDescription(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *DocumentUpdateOne) ClearDescription() *DocumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdateOne) SetDocNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdateOne) ClearDocNumber() *DocumentUpdateOne {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetFileKey sets the "file_key" field.
func (_u *DocumentUpdateOne) SetFileKey(v string) *DocumentUpdateOne {
	_u.mutation.SetFileKey(v)
	return _u
}

// SetNillableFileKey sets the "file_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *DocumentUpdateOne) SetFileName(v string) *DocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileMime sets the "file_mime" field.
func (_u *DocumentUpdateOne) SetFileMime(v string) *DocumentUpdateOne {
	_u.mutation.SetFileMime(v)
	return _u
}

// SetNillableFileMime sets the "file_mime" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileMime(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileMime(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetOcrStatus sets the "ocr_status" field.
func (_u *DocumentUpdateOne) SetOcrStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrStatus(v)
	return _u
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrStatus(*v)
	}
	return _u
}

// SetOcrText sets the "ocr_text" field.
func (_u *DocumentUpdateOne) SetOcrText(v string) *DocumentUpdateOne {
	_u.mutation.SetOcrText(v)
	return _u
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableOcrText(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetOcrText(*v)
	}
	return _u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (_u *DocumentUpdateOne) ClearOcrText() *DocumentUpdateOne {
	_u.mutation.ClearOcrText()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DocumentUpdateOne) SetUser(v *User) *DocumentUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *DocumentUpdateOne) SetCategory(v *Category) *DocumentUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// SetJobID sets the "job" edge to the OCRJob entity by ID.
func (_u *DocumentUpdateOne) SetJobID(id uuid.UUID) *DocumentUpdateOne {
	_u.mutation.SetJobID(id)
	return _u
}

// SetNillableJobID sets the "job" edge to the OCRJob entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableJobID(id *uuid.UUID) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetJobID(*id)
	}
	return _u
}

// SetJob sets the "job" edge to the OCRJob entity.
func (_u *DocumentUpdateOne) SetJob(v *OCRJob) *DocumentUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DocumentUpdateOne) ClearUser() *DocumentUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *DocumentUpdateOne) ClearCategory() *DocumentUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearJob clears the "job" edge to the OCRJob entity.
func (_u *DocumentUpdateOne) ClearJob() *DocumentUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := document.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Document.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := document.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Document.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKey(); ok {
		if err := document.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "Document.file_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileMime(); ok {
		if err := document.FileMimeValidator(v); err != nil {
			return &ValidationError{Name: "file_mime", err: fmt.Errorf(`ent: validator failed for field "Document.file_mime": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Document.user"`)
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(document.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(document.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(document.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(document.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vendor(); ok {
		_spec.SetField(document.FieldVendor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(document.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.FileKey(); ok {
		_spec.SetField(document.FieldFileKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileMime(); ok {
		_spec.SetField(document.FieldFileMime, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
	}
	if _u.mutation.OcrTextCleared() {
		_spec.ClearField(document.FieldOcrText, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.UserTable,
			Columns: []string{document.UserColumn},
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
			Table:   document.UserTable,
			Columns: []string{document.UserColumn},
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
	if _u.mutation.CategoryCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CategoryTable,
			Columns: []string{document.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.CategoryTable,
			Columns: []string{document.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.JobTable,
			Columns: []string{document.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.JobTable,
			Columns: []string{document.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ocrjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
