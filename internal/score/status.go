package score

import "github.com/adewale-s/po-intake/constants"

// Decision thresholds over the confidence score.
const (
	ApproveThreshold = 85.0
	ReviewThreshold  = 70.0
)

// Status maps a confidence score onto a processing status.
func Status(confidence float64) constants.OrderStatus {
	switch {
	case confidence >= ApproveThreshold:
		return constants.StatusApproved
	case confidence >= ReviewThreshold:
		return constants.StatusNeedsReview
	default:
		return constants.StatusRejected
	}
}
