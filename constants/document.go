package constants

// DocType classifies a document for bookkeeping purposes.
type DocType string

const (
	DocExpense        DocType = "expense"
	DocIncome         DocType = "income"
	DocPaymentReceipt DocType = "payment_receipt"
)

// DocTypes holds allowed values for the documents type column.
var DocTypes = []string{
	string(DocExpense),
	string(DocIncome),
	string(DocPaymentReceipt),
}

// Placeholder values written at document creation and recognized by the
// backfill policy as safe to overwrite.
const (
	PlaceholderVendor = "—"
	UnknownVendor     = "Unknown"
	UnknownVendorHe   = "לא ידוע"
)

// MaxOCRTextLen bounds the raw extracted text stored on a document.
const MaxOCRTextLen = 50_000

// MaxErrorLen bounds the last_error column on ocr_jobs.
const MaxErrorLen = 4_000

// DefaultCategoryName is the catch-all category created on demand for
// quick transactions.
const DefaultCategoryName = "כללי"
