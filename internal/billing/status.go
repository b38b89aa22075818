package billing

import "techinvoice/internal/domain"

// Transition validates a status change request. The workflow is
// deliberately permissive: any recognized status may be reassigned to any
// other, matching how operators correct mistakes (a paid invoice can be
// moved back to pending). Only unrecognized status values are rejected.
// Persistence of an accepted transition is a single atomic update keyed
// by invoice ID with no side effects on money fields.
func Transition(from, to domain.InvoiceStatus) error {
	if !to.Valid() {
		return domain.ErrInvalidStatus
	}
	if !from.Valid() {
		return domain.ErrInvalidStatus
	}
	return nil
}

// InitialStatus is the status assigned to every newly created invoice.
func InitialStatus() domain.InvoiceStatus {
	return domain.StatusPending
}
