package constants

// JobStatus is the canonical status for rows in ocr_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobPending JobStatus = "pending" // eligible for claiming (possibly scheduled via next_run_at)
	JobRunning JobStatus = "running" // claimed by a worker
	JobSuccess JobStatus = "success" // terminal: text extracted and merged
	JobFailed  JobStatus = "failed"  // terminal: attempts exhausted or unrecoverable
)

// OCRStatus mirrors the document-side view of the extraction lifecycle.
type OCRStatus string

const (
	OCRPending OCRStatus = "pending"
	OCRSuccess OCRStatus = "success"
	OCRFailed  OCRStatus = "failed"
)

// JobStatuses holds allowed values for the ocr_jobs status column.
var JobStatuses = []string{
	string(JobPending),
	string(JobRunning),
	string(JobSuccess),
	string(JobFailed),
}

// OCRStatuses holds allowed values for the documents ocr_status column.
var OCRStatuses = []string{
	string(OCRPending),
	string(OCRSuccess),
	string(OCRFailed),
}
