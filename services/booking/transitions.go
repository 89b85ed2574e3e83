package booking

import "hirafic/models"

// legalPredecessor maps each transition target to the only status it
// may be applied from. The edges form a DAG: Pending -> Accepted or
// Rejected, Accepted -> Completed; Rejected and Completed are terminal.
var legalPredecessor = map[string]string{
	models.BookingAccepted:  models.BookingPending,
	models.BookingRejected:  models.BookingPending,
	models.BookingCompleted: models.BookingAccepted,
}

// predecessorFor returns the required current status for a transition
// to target, or false when target is never a legal transition target
// (Pending is initial-only).
func predecessorFor(target string) (string, bool) {
	expected, ok := legalPredecessor[target]
	return expected, ok
}
