// Package prescription provides the Prescription aggregate: a clinician's
// diet directive for a patient, the source from which production orders are
// fanned out. Prescriptions are write-once; the kitchen never edits them.
package prescription
