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
	"github.com/docledger/docledger/gen/ent/category"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/google/uuid"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DocumentCreate) SetUserID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *DocumentCreate) SetType(v string) *DocumentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DocumentCreate) SetDate(v time.Time) *DocumentCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *DocumentCreate) SetAmount(v float64) *DocumentCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *DocumentCreate) SetCurrency(v string) *DocumentCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCurrency(v *string) *DocumentCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetVendor sets the "vendor" field.
func (_c *DocumentCreate) SetVendor(v string) *DocumentCreate {
	_c.mutation.SetVendor(v)
	return _c
}

// SetNillableVendor sets the "vendor" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableVendor(v *string) *DocumentCreate {
	if v != nil {
		_c.SetVendor(*v)
	}
	return _c
}

// SetCategoryID sets the "category_id" field.
func (_c *DocumentCreate) SetCategoryID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetCategoryID(v)
	return _c
}

// SetNillableCategoryID sets the "category_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCategoryID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetCategoryID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *DocumentCreate) SetDescription(v string) *DocumentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDescription(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDocNumber sets the "doc_number" field.
func (_c *DocumentCreate) SetDocNumber(v string) *DocumentCreate {
	_c.mutation.SetDocNumber(v)
	return _c
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocNumber(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocNumber(*v)
	}
	return _c
}

// SetFileKey sets the "file_key" field.
func (_c *DocumentCreate) SetFileKey(v string) *DocumentCreate {
	_c.mutation.SetFileKey(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *DocumentCreate) SetFileName(v string) *DocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileMime sets the "file_mime" field.
func (_c *DocumentCreate) SetFileMime(v string) *DocumentCreate {
	_c.mutation.SetFileMime(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetOcrStatus sets the "ocr_status" field.
func (_c *DocumentCreate) SetOcrStatus(v string) *DocumentCreate {
	_c.mutation.SetOcrStatus(v)
	return _c
}

// SetNillableOcrStatus sets the "ocr_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrStatus(*v)
	}
	return _c
}

// SetOcrText sets the "ocr_text" field.
func (_c *DocumentCreate) SetOcrText(v string) *DocumentCreate {
	_c.mutation.SetOcrText(v)
	return _c
}

// SetNillableOcrText sets the "ocr_text" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableOcrText(v *string) *DocumentCreate {
	if v != nil {
		_c.SetOcrText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DocumentCreate) SetUser(v *User) *DocumentCreate {
	return _c.SetUserID(v.ID)
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *DocumentCreate) SetCategory(v *Category) *DocumentCreate {
	return _c.SetCategoryID(v.ID)
}

// SetJobID sets the "job" edge to the OCRJob entity by ID.
func (_c *DocumentCreate) SetJobID(id uuid.UUID) *DocumentCreate {
	_c.mutation.SetJobID(id)
	return _c
}

// SetNillableJobID sets the "job" edge to the OCRJob entity by ID if the given value is not nil.
func (_c *DocumentCreate) SetNillableJobID(id *uuid.UUID) *DocumentCreate {
	if id != nil {
		_c = _c.SetJobID(*id)
	}
	return _c
}

// SetJob sets the "job" edge to the OCRJob entity.
func (_c *DocumentCreate) SetJob(v *OCRJob) *DocumentCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Currency(); !ok {
		v := document.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		v := document.DefaultVendor
		_c.mutation.SetVendor(v)
	}
	if _, ok := _c.mutation.OcrStatus(); !ok {
		v := document.DefaultOcrStatus
		_c.mutation.SetOcrStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Document.user_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Document.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := document.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Document.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Document.date"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Document.amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Document.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := document.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Document.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Vendor(); !ok {
		return &ValidationError{Name: "vendor", err: errors.New(`ent: missing required field "Document.vendor"`)}
	}
	if _, ok := _c.mutation.FileKey(); !ok {
		return &ValidationError{Name: "file_key", err: errors.New(`ent: missing required field "Document.file_key"`)}
	}
	if v, ok := _c.mutation.FileKey(); ok {
		if err := document.FileKeyValidator(v); err != nil {
			return &ValidationError{Name: "file_key", err: fmt.Errorf(`ent: validator failed for field "Document.file_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Document.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := document.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Document.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileMime(); !ok {
		return &ValidationError{Name: "file_mime", err: errors.New(`ent: missing required field "Document.file_mime"`)}
	}
	if v, ok := _c.mutation.FileMime(); ok {
		if err := document.FileMimeValidator(v); err != nil {
			return &ValidationError{Name: "file_mime", err: fmt.Errorf(`ent: validator failed for field "Document.file_mime": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OcrStatus(); !ok {
		return &ValidationError{Name: "ocr_status", err: errors.New(`ent: missing required field "Document.ocr_status"`)}
	}
	if v, ok := _c.mutation.OcrStatus(); ok {
		if err := document.OcrStatusValidator(v); err != nil {
			return &ValidationError{Name: "ocr_status", err: fmt.Errorf(`ent: validator failed for field "Document.ocr_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Document.user"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(document.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(document.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(document.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(document.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Vendor(); ok {
		_spec.SetField(document.FieldVendor, field.TypeString, value)
		_node.Vendor = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(document.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
		_node.DocNumber = &value
	}
	if value, ok := _c.mutation.FileKey(); ok {
		_spec.SetField(document.FieldFileKey, field.TypeString, value)
		_node.FileKey = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(document.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileMime(); ok {
		_spec.SetField(document.FieldFileMime, field.TypeString, value)
		_node.FileMime = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.OcrStatus(); ok {
		_spec.SetField(document.FieldOcrStatus, field.TypeString, value)
		_node.OcrStatus = value
	}
	if value, ok := _c.mutation.OcrText(); ok {
		_spec.SetField(document.FieldOcrText, field.TypeString, value)
		_node.OcrText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_node.CategoryID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *DocumentUpsert) SetUserID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUserID() *DocumentUpsert {
	u.SetExcluded(document.FieldUserID)
	return u
}

// SetType sets the "type" field.
func (u *DocumentUpsert) SetType(v string) *DocumentUpsert {
	u.Set(document.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateType() *DocumentUpsert {
	u.SetExcluded(document.FieldType)
	return u
}

// SetDate sets the "date" field.
func (u *DocumentUpsert) SetDate(v time.Time) *DocumentUpsert {
	u.Set(document.FieldDate, v)
	return u
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDate() *DocumentUpsert {
	u.SetExcluded(document.FieldDate)
	return u
}

// SetAmount sets the "amount" field.
func (u *DocumentUpsert) SetAmount(v float64) *DocumentUpsert {
	u.Set(document.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAmount() *DocumentUpsert {
	u.SetExcluded(document.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *DocumentUpsert) AddAmount(v float64) *DocumentUpsert {
	u.Add(document.FieldAmount, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *DocumentUpsert) SetCurrency(v string) *DocumentUpsert {
	u.Set(document.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCurrency() *DocumentUpsert {
	u.SetExcluded(document.FieldCurrency)
	return u
}

// SetVendor sets the "vendor" field.
func (u *DocumentUpsert) SetVendor(v string) *DocumentUpsert {
	u.Set(document.FieldVendor, v)
	return u
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateVendor() *DocumentUpsert {
	u.SetExcluded(document.FieldVendor)
	return u
}

// SetCategoryID sets the "category_id" field.
func (u *DocumentUpsert) SetCategoryID(v uuid.UUID) *DocumentUpsert {
	u.Set(document.FieldCategoryID, v)
	return u
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCategoryID() *DocumentUpsert {
	u.SetExcluded(document.FieldCategoryID)
	return u
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *DocumentUpsert) ClearCategoryID() *DocumentUpsert {
	u.SetNull(document.FieldCategoryID)
	return u
}

// SetDescription sets the "description" field.
func (u *DocumentUpsert) SetDescription(v string) *DocumentUpsert {
	u.Set(document.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDescription() *DocumentUpsert {
	u.SetExcluded(document.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsert) ClearDescription() *DocumentUpsert {
	u.SetNull(document.FieldDescription)
	return u
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsert) SetDocNumber(v string) *DocumentUpsert {
	u.Set(document.FieldDocNumber, v)
	return u
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocNumber() *DocumentUpsert {
	u.SetExcluded(document.FieldDocNumber)
	return u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsert) ClearDocNumber() *DocumentUpsert {
	u.SetNull(document.FieldDocNumber)
	return u
}

// SetFileKey sets the "file_key" field.
func (u *DocumentUpsert) SetFileKey(v string) *DocumentUpsert {
	u.Set(document.FieldFileKey, v)
	return u
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFileKey() *DocumentUpsert {
	u.SetExcluded(document.FieldFileKey)
	return u
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsert) SetFileName(v string) *DocumentUpsert {
	u.Set(document.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFileName() *DocumentUpsert {
	u.SetExcluded(document.FieldFileName)
	return u
}

// SetFileMime sets the "file_mime" field.
func (u *DocumentUpsert) SetFileMime(v string) *DocumentUpsert {
	u.Set(document.FieldFileMime, v)
	return u
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFileMime() *DocumentUpsert {
	u.SetExcluded(document.FieldFileMime)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *DocumentUpsert) SetFileSize(v int) *DocumentUpsert {
	u.Set(document.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFileSize() *DocumentUpsert {
	u.SetExcluded(document.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *DocumentUpsert) AddFileSize(v int) *DocumentUpsert {
	u.Add(document.FieldFileSize, v)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsert) SetContentHash(v string) *DocumentUpsert {
	u.Set(document.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateContentHash() *DocumentUpsert {
	u.SetExcluded(document.FieldContentHash)
	return u
}

// SetOcrStatus sets the "ocr_status" field.
func (u *DocumentUpsert) SetOcrStatus(v string) *DocumentUpsert {
	u.Set(document.FieldOcrStatus, v)
	return u
}

// UpdateOcrStatus sets the "ocr_status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateOcrStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldOcrStatus)
	return u
}

// SetOcrText sets the "ocr_text" field.
func (u *DocumentUpsert) SetOcrText(v string) *DocumentUpsert {
	u.Set(document.FieldOcrText, v)
	return u
}

// UpdateOcrText sets the "ocr_text" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateOcrText() *DocumentUpsert {
	u.SetExcluded(document.FieldOcrText)
	return u
}

// ClearOcrText clears the value of the "ocr_text" field.
func (u *DocumentUpsert) ClearOcrText() *DocumentUpsert {
	u.SetNull(document.FieldOcrText)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DocumentUpsertOne) SetUserID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUserID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *DocumentUpsertOne) SetType(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateType() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateType()
	})
}

// SetDate sets the "date" field.
func (u *DocumentUpsertOne) SetDate(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDate() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDate()
	})
}

// SetAmount sets the "amount" field.
func (u *DocumentUpsertOne) SetAmount(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DocumentUpsertOne) AddAmount(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAmount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *DocumentUpsertOne) SetCurrency(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCurrency() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCurrency()
	})
}

// SetVendor sets the "vendor" field.
func (u *DocumentUpsertOne) SetVendor(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateVendor() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVendor()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *DocumentUpsertOne) SetCategoryID(v uuid.UUID) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCategoryID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCategoryID()
	})
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *DocumentUpsertOne) ClearCategoryID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearCategoryID()
	})
}

// SetDescription sets the "description" field.
func (u *DocumentUpsertOne) SetDescription(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDescription() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsertOne) ClearDescription() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDescription()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsertOne) SetDocNumber(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocNumber() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocNumber()
	})
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsertOne) ClearDocNumber() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocNumber()
	})
}

// SetFileKey sets the "file_key" field.
func (u *DocumentUpsertOne) SetFileKey(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFileKey() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsertOne) SetFileName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFileName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileName()
	})
}

// SetFileMime sets the "file_mime" field.
func (u *DocumentUpsertOne) SetFileMime(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileMime(v)
	})
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFileMime() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileMime()
	})
}

// SetFileSize sets the "file_size" field.
func (u *DocumentUpsertOne) SetFileSize(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *DocumentUpsertOne) AddFileSize(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFileSize() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileSize()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertOne) SetContentHash(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateContentHash() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetOcrStatus sets the "ocr_status" field.
func (u *DocumentUpsertOne) SetOcrStatus(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOcrStatus(v)
	})
}

// UpdateOcrStatus sets the "ocr_status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateOcrStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOcrStatus()
	})
}

// SetOcrText sets the "ocr_text" field.
func (u *DocumentUpsertOne) SetOcrText(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOcrText(v)
	})
}

// UpdateOcrText sets the "ocr_text" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateOcrText() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOcrText()
	})
}

// ClearOcrText clears the value of the "ocr_text" field.
func (u *DocumentUpsertOne) ClearOcrText() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearOcrText()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DocumentUpsertBulk) SetUserID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUserID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUserID()
	})
}

// SetType sets the "type" field.
func (u *DocumentUpsertBulk) SetType(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateType() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateType()
	})
}

// SetDate sets the "date" field.
func (u *DocumentUpsertBulk) SetDate(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDate(v)
	})
}

// UpdateDate sets the "date" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDate() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDate()
	})
}

// SetAmount sets the "amount" field.
func (u *DocumentUpsertBulk) SetAmount(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *DocumentUpsertBulk) AddAmount(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAmount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAmount()
	})
}

// SetCurrency sets the "currency" field.
func (u *DocumentUpsertBulk) SetCurrency(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCurrency() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCurrency()
	})
}

// SetVendor sets the "vendor" field.
func (u *DocumentUpsertBulk) SetVendor(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVendor(v)
	})
}

// UpdateVendor sets the "vendor" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateVendor() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVendor()
	})
}

// SetCategoryID sets the "category_id" field.
func (u *DocumentUpsertBulk) SetCategoryID(v uuid.UUID) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCategoryID(v)
	})
}

// UpdateCategoryID sets the "category_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCategoryID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCategoryID()
	})
}

// ClearCategoryID clears the value of the "category_id" field.
func (u *DocumentUpsertBulk) ClearCategoryID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearCategoryID()
	})
}

// SetDescription sets the "description" field.
func (u *DocumentUpsertBulk) SetDescription(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDescription() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *DocumentUpsertBulk) ClearDescription() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDescription()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsertBulk) SetDocNumber(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocNumber() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocNumber()
	})
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsertBulk) ClearDocNumber() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocNumber()
	})
}

// SetFileKey sets the "file_key" field.
func (u *DocumentUpsertBulk) SetFileKey(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileKey(v)
	})
}

// UpdateFileKey sets the "file_key" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFileKey() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *DocumentUpsertBulk) SetFileName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFileName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileName()
	})
}

// SetFileMime sets the "file_mime" field.
func (u *DocumentUpsertBulk) SetFileMime(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileMime(v)
	})
}

// UpdateFileMime sets the "file_mime" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFileMime() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileMime()
	})
}

// SetFileSize sets the "file_size" field.
func (u *DocumentUpsertBulk) SetFileSize(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *DocumentUpsertBulk) AddFileSize(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFileSize() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFileSize()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *DocumentUpsertBulk) SetContentHash(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateContentHash() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateContentHash()
	})
}

// SetOcrStatus sets the "ocr_status" field.
func (u *DocumentUpsertBulk) SetOcrStatus(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOcrStatus(v)
	})
}

// UpdateOcrStatus sets the "ocr_status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateOcrStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOcrStatus()
	})
}

// SetOcrText sets the "ocr_text" field.
func (u *DocumentUpsertBulk) SetOcrText(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetOcrText(v)
	})
}

// UpdateOcrText sets the "ocr_text" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateOcrText() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateOcrText()
	})
}

// ClearOcrText clears the value of the "ocr_text" field.
func (u *DocumentUpsertBulk) ClearOcrText() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearOcrText()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
