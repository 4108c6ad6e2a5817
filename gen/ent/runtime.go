// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/docledger/docledger/db/ent/schema"
	"github.com/docledger/docledger/gen/ent/category"
	"github.com/docledger/docledger/gen/ent/document"
	"github.com/docledger/docledger/gen/ent/ocrjob"
	"github.com/docledger/docledger/gen/ent/transaction"
	"github.com/docledger/docledger/gen/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[2].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescCreatedAt is the schema descriptor for created_at field.
	categoryDescCreatedAt := categoryFields[3].Descriptor()
	// category.DefaultCreatedAt holds the default value on creation for the created_at field.
	category.DefaultCreatedAt = categoryDescCreatedAt.Default.(func() time.Time)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescType is the schema descriptor for type field.
	documentDescType := documentFields[2].Descriptor()
	// document.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	document.TypeValidator = func() func(string) error {
		validators := documentDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescCurrency is the schema descriptor for currency field.
	documentDescCurrency := documentFields[5].Descriptor()
	// document.DefaultCurrency holds the default value on creation for the currency field.
	document.DefaultCurrency = documentDescCurrency.Default.(string)
	// document.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	document.CurrencyValidator = func() func(string) error {
		validators := documentDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescVendor is the schema descriptor for vendor field.
	documentDescVendor := documentFields[6].Descriptor()
	// document.DefaultVendor holds the default value on creation for the vendor field.
	document.DefaultVendor = documentDescVendor.Default.(string)
	// documentDescFileKey is the schema descriptor for file_key field.
	documentDescFileKey := documentFields[10].Descriptor()
	// document.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	document.FileKeyValidator = documentDescFileKey.Validators[0].(func(string) error)
	// documentDescFileName is the schema descriptor for file_name field.
	documentDescFileName := documentFields[11].Descriptor()
	// document.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	document.FileNameValidator = documentDescFileName.Validators[0].(func(string) error)
	// documentDescFileMime is the schema descriptor for file_mime field.
	documentDescFileMime := documentFields[12].Descriptor()
	// document.FileMimeValidator is a validator for the "file_mime" field. It is called by the builders before save.
	document.FileMimeValidator = documentDescFileMime.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[13].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[14].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = func() func(string) error {
		validators := documentDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescOcrStatus is the schema descriptor for ocr_status field.
	documentDescOcrStatus := documentFields[15].Descriptor()
	// document.DefaultOcrStatus holds the default value on creation for the ocr_status field.
	document.DefaultOcrStatus = documentDescOcrStatus.Default.(string)
	// document.OcrStatusValidator is a validator for the "ocr_status" field. It is called by the builders before save.
	document.OcrStatusValidator = documentDescOcrStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[17].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[18].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	ocrjobFields := schema.OCRJob{}.Fields()
	_ = ocrjobFields
	// ocrjobDescStatus is the schema descriptor for status field.
	ocrjobDescStatus := ocrjobFields[3].Descriptor()
	// ocrjob.DefaultStatus holds the default value on creation for the status field.
	ocrjob.DefaultStatus = ocrjobDescStatus.Default.(string)
	// ocrjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ocrjob.StatusValidator = ocrjobDescStatus.Validators[0].(func(string) error)
	// ocrjobDescAttempts is the schema descriptor for attempts field.
	ocrjobDescAttempts := ocrjobFields[4].Descriptor()
	// ocrjob.DefaultAttempts holds the default value on creation for the attempts field.
	ocrjob.DefaultAttempts = ocrjobDescAttempts.Default.(int)
	// ocrjob.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	ocrjob.AttemptsValidator = ocrjobDescAttempts.Validators[0].(func(int) error)
	// ocrjobDescCreatedAt is the schema descriptor for created_at field.
	ocrjobDescCreatedAt := ocrjobFields[9].Descriptor()
	// ocrjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ocrjob.DefaultCreatedAt = ocrjobDescCreatedAt.Default.(func() time.Time)
	// ocrjobDescID is the schema descriptor for id field.
	ocrjobDescID := ocrjobFields[0].Descriptor()
	// ocrjob.DefaultID holds the default value on creation for the id field.
	ocrjob.DefaultID = ocrjobDescID.Default.(func() uuid.UUID)
	transactionFields := schema.Transaction{}.Fields()
	_ = transactionFields
	// transactionDescType is the schema descriptor for type field.
	transactionDescType := transactionFields[3].Descriptor()
	// transaction.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	transaction.TypeValidator = func() func(string) error {
		validators := transactionDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescCurrency is the schema descriptor for currency field.
	transactionDescCurrency := transactionFields[6].Descriptor()
	// transaction.DefaultCurrency holds the default value on creation for the currency field.
	transaction.DefaultCurrency = transactionDescCurrency.Default.(string)
	// transaction.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	transaction.CurrencyValidator = func() func(string) error {
		validators := transactionDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// transactionDescVendor is the schema descriptor for vendor field.
	transactionDescVendor := transactionFields[7].Descriptor()
	// transaction.VendorValidator is a validator for the "vendor" field. It is called by the builders before save.
	transaction.VendorValidator = transactionDescVendor.Validators[0].(func(string) error)
	// transactionDescCreatedAt is the schema descriptor for created_at field.
	transactionDescCreatedAt := transactionFields[9].Descriptor()
	// transaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	transaction.DefaultCreatedAt = transactionDescCreatedAt.Default.(func() time.Time)
	// transactionDescID is the schema descriptor for id field.
	transactionDescID := transactionFields[0].Descriptor()
	// transaction.DefaultID holds the default value on creation for the id field.
	transaction.DefaultID = transactionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
