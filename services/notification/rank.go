package notification

import "github.com/SyedaFakhiraSaghir/Personal-Assistant/models"

// compareDue orders two notifications by due date then due time, ascending.
// A notification with no due date sorts after every dated one, and within a
// date, one with no due time sorts after every timed one.
func compareDue(a, b *models.Notification) int {
	switch {
	case a.DueDate == nil && b.DueDate != nil:
		return 1
	case a.DueDate != nil && b.DueDate == nil:
		return -1
	case a.DueDate != nil && b.DueDate != nil:
		if a.DueDate.Before(*b.DueDate) {
			return -1
		}
		if b.DueDate.Before(*a.DueDate) {
			return 1
		}
	}

	at, aok := timeSeconds(a.DueTime)
	bt, bok := timeSeconds(b.DueTime)
	switch {
	case !aok && bok:
		return 1
	case aok && !bok:
		return -1
	case at < bt:
		return -1
	case at > bt:
		return 1
	}
	return 0
}

// upcomingBefore is the ordering of the upcoming view: priority rank first,
// then the due comparison. Used with a stable sort so rows that tie on all
// three keys keep their creation order.
func upcomingBefore(a, b *models.Notification) bool {
	ra, rb := models.PriorityRank(a.Priority), models.PriorityRank(b.Priority)
	if ra != rb {
		return ra < rb
	}
	return compareDue(a, b) < 0
}
