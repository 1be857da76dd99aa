package request

// SubmitBidRequest is a mechanic's offer on an open job. Field-level
// validation (amount > 0, message length, positive duration) is owned by the
// bid usecase so the rules live in one place.

type SubmitBidRequest struct {
	JobID             string  `json:"job_id" binding:"required"`
	MechanicID        string  `json:"mechanic_id" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	Message           string  `json:"message" binding:"required"`
	EstimatedDuration int     `json:"estimated_duration" binding:"required"`
}

// AcceptBidRequest carries the job the accepted bid belongs to.

type AcceptBidRequest struct {
	JobID string `json:"job_id" binding:"required"`
}
