package dtos

type JobCreationRequest struct {
	Title        string `json:"title" binding:"required"`
	Company      string `json:"company" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=full-time part-time contract internship"`
	Location     string `json:"location" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`

	// Optional Fields
	Requirements []string `json:"requirements"`
	Salary       string   `json:"salary"`
}

// JobListQuery holds the listing filters. "all" (or absent) means no filter
// on that field.
type JobListQuery struct {
	Search   string `form:"search"`
	Type     string `form:"type"`
	Location string `form:"location"`
}

// ApplicationRequest is a candidate applying to a job. It is relayed to the
// job's contact email and never stored.
type ApplicationRequest struct {
	JobID   uint   `json:"jobId" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message"`
}

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}
