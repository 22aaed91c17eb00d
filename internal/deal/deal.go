package deal

import "time"

// Deal is one sales lead/opportunity as loaded from a CSV upload.
// A loaded collection is an immutable snapshot: records are never
// edited in place, a new upload replaces the whole set.
type Deal struct {
	ID               string    `json:"id"`
	CreatedDate      time.Time `json:"createdDate"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Company          string    `json:"company"`
	Industry         string    `json:"industry"`
	CompanySize      string    `json:"companySize"`
	Country          string    `json:"country"`
	LeadSource       string    `json:"leadSource"`
	Status           string    `json:"status"`
	Owner            string    `json:"owner"`
	DealValue        float64   `json:"dealValue"`
	PipelineStage    Stage     `json:"pipelineStage"`
	LastContactDate  time.Time `json:"lastContactDate"`
	NextFollowupDate time.Time `json:"nextFollowupDate"`
	Tags             []string  `json:"tags"`
}
