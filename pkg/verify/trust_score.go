package verify

import (
	"agrisync-backend/entities"
)

const (
	baseScore      = 50
	pointsPerEvent = 5
	maxEventPoints = 30
	pointsPerCert  = 10
	pointsPerPhoto = 5
	maxTrustScore  = 100
)

// ComputeTrustScore maps a batch's evidentiary record to a buyer-facing
// confidence score in [50,100]. It is deterministic and depends only on
// counts, never on ordering or timestamps.
//
// Events are capped at 30 points so a flood of trivial entries cannot
// dominate; certifications are uncapped, each being a strong signal. Events
// carrying a photo count again for the photo bonus on top of the event
// bonus.
func ComputeTrustScore(events []*entities.Event, certifications []*entities.Certification) int {
	score := baseScore

	eventPoints := len(events) * pointsPerEvent
	if eventPoints > maxEventPoints {
		eventPoints = maxEventPoints
	}
	score += eventPoints

	score += len(certifications) * pointsPerCert

	for _, event := range events {
		if event.PhotoURL != "" {
			score += pointsPerPhoto
		}
	}

	if score > maxTrustScore {
		score = maxTrustScore
	}
	return score
}
