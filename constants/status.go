package constants

// JobStatus is the canonical status for rows in the extractions table.
type JobStatus string

// Stable values (store these exact strings in the DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // accepted, not yet started
	JobStatusRunning JobStatus = "RUNNING" // in progress
	JobStatusDone    JobStatus = "DONE"    // OCR + parse completed
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure
)
