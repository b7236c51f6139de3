// Package classify holds the keyword classifiers: urgency detection on
// processed documents and the order-email filter applied at the source.
package classify

import (
	"regexp"

	"github.com/adewale-s/po-intake/constants"
)

// The urgency vocabulary is fixed and matched as whole words: "urgently" is
// not a hit even though it contains "urgent".
var reUrgency = regexp.MustCompile(`(?i)\b(?:urgent|immediately|asap|high\s+priority)\b`)

// Priority classifies subject+body urgency.
func Priority(text string) constants.PriorityLevel {
	if reUrgency.MatchString(text) {
		return constants.PriorityUrgent
	}
	return constants.PriorityNormal
}
