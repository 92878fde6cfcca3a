// Package patient holds the read-only Patient reference entity. Patients
// are owned by the admission system; this core never mutates them, it only
// snapshots their display fields onto orders at prescription time.
package patient
