package order

import (
	"errors"
	"fmt"
	"time"

	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/patient"
	"dietboard/internal/core/domain/model/prescription"
	"dietboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through CreateForMeals, NewOrder, or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is a single meal-delivery task generated from a prescription and
// tracked through the kitchen status pipeline. It is the aggregate root of
// the order lifecycle.
//
// The patient name, room, sector, diet label, and notes are snapshots taken
// when the order is created; later edits to the patient or prescription do
// not flow back into existing orders.
//
// Invariants:
//   - Status moves only along the edges the Status state machine permits
//   - Each lifecycle timestamp is set exactly once, when the matching
//     status is first reached, and never earlier than the previous stamp
//   - Delivered orders always record who confirmed the handoff
//   - Orders are never deleted; terminal orders are immutable
type Order struct {
	id             kernel.UUID
	prescriptionID kernel.UUID

	// snapshot fields, frozen at creation
	patientName string
	room        string
	sector      string
	dietLabel   string
	mealLabel   string
	notes       string

	status      Status
	createdAt   time.Time
	startedAt   *time.Time
	readyAt     *time.Time
	deliveredAt *time.Time
	cancelledAt *time.Time

	assignedTo  string
	deliveredBy string

	// version backs the optimistic concurrency check at the persistence
	// boundary; it is the value the order was read with.
	version int

	isConstructed bool
}

// NewOrder creates a single Order in New status with the given snapshot
// fields. Most callers want CreateForMeals, which derives the snapshot from
// a prescription and patient; NewOrder is the underlying factory.
func NewOrder(
	id kernel.UUID,
	prescriptionID kernel.UUID,
	patientName string,
	room string,
	sector string,
	dietLabel string,
	mealLabel string,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		status:        StatusNew,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setPrescriptionID(prescriptionID),
		o.setPatientName(patientName),
		o.setRoom(room),
		o.setSector(sector),
		o.setDietLabel(dietLabel),
		o.setMealLabel(mealLabel),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// CreateForMeals fans a prescription out into one New order per meal label.
// This is the "prescribe" action: saving a diet directive puts one
// production task per targeted meal on the kitchen board.
//
// When meals is empty, the prescription's own meal targets are used. The
// patient must be the one the prescription references; its display fields
// are snapshotted onto each order together with the composed diet label and
// the prescription's observations.
//
// Returns the new orders; persisting them and notifying observers is the
// caller's responsibility.
func CreateForMeals(
	p *prescription.Prescription,
	pat *patient.Patient,
	meals []string,
	now time.Time,
) ([]*Order, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := pat.Validate(); err != nil {
		return nil, err
	}
	if !pat.ID().IsEqual(p.PatientID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("patient",
			fmt.Errorf("patient %s does not match prescription patient %s", pat.ID(), p.PatientID()))
	}

	if len(meals) == 0 {
		meals = p.Meals()
	}

	orders := make([]*Order, 0, len(meals))
	for _, meal := range meals {
		o, err := NewOrder(
			kernel.NewUUID(),
			p.ID(),
			pat.Name(),
			pat.Room(),
			pat.Sector(),
			p.DietLabel(),
			meal,
			p.Observations(),
			now,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// RestoreOrder reconstructs an Order from persistence. Beyond field
// validation it checks the lifecycle consistency the engine guarantees:
// every timestamp present exactly when the status implies it, stamps in
// non-decreasing order, and a recorded deliverer on delivered orders.
func RestoreOrder(
	id kernel.UUID,
	prescriptionID kernel.UUID,
	patientName string,
	room string,
	sector string,
	dietLabel string,
	mealLabel string,
	notes string,
	status Status,
	createdAt time.Time,
	startedAt *time.Time,
	readyAt *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
	assignedTo string,
	deliveredBy string,
	version int,
) (*Order, error) {
	o, err := NewOrder(id, prescriptionID, patientName, room, sector, dietLabel, mealLabel, notes, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order version",
			fmt.Errorf("%d is not a positive version", version))
	}

	o.status = status
	o.startedAt = startedAt
	o.readyAt = readyAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	o.assignedTo = assignedTo
	o.deliveredBy = deliveredBy
	o.version = version

	if err = o.validateLifecycle(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through one of the factories.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// PrescriptionID returns the identifier of the originating prescription.
func (o *Order) PrescriptionID() kernel.UUID {
	return o.prescriptionID
}

// PatientName returns the snapshotted patient display name.
func (o *Order) PatientName() string {
	return o.patientName
}

// Room returns the snapshotted room/bed code.
func (o *Order) Room() string {
	return o.room
}

// Sector returns the snapshotted care sector.
func (o *Order) Sector() string {
	return o.sector
}

// DietLabel returns the composed diet label, e.g. "Soft + Low-Sodium".
func (o *Order) DietLabel() string {
	return o.dietLabel
}

// MealLabel returns the meal this order is for, e.g. "Lunch".
func (o *Order) MealLabel() string {
	return o.mealLabel
}

// Notes returns the observations copied from the prescription.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was fanned out.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns when preparation began, nil before Preparing.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// ReadyAt returns when the meal became ready, nil before Ready.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// DeliveredAt returns when the handoff was confirmed, nil before Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was withdrawn, nil unless Cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// AssignedTo returns the kitchen staff/team handling the order, empty when
// unassigned.
func (o *Order) AssignedTo() string {
	return o.assignedTo
}

// DeliveredBy returns who confirmed the bedside handoff, empty before
// delivery.
func (o *Order) DeliveredBy() string {
	return o.deliveredBy
}

// Version returns the optimistic concurrency version the order was read
// with.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo moves the order to the target status, stamping the matching
// lifecycle timestamp with now.
//
// Rules:
//   - Re-applying the current status is a successful no-op: nothing is
//     restamped, so two screens converging on the same state cannot fail
//     each other
//   - Transitioning to Preparing records the actor as assignedTo when one
//     is supplied
//   - Transitioning to Delivered requires an actor, recorded as deliveredBy
//   - now must not precede any previously recorded stamp; a regression is
//     rejected even though serialized per-order updates make it
//     structurally impossible, because updates may race across clients
func (o *Order) TransitionTo(target Status, actor string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if target == o.status {
		return target.Validate()
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if last := o.lastStampedAt(); now.Before(last) {
		return errs.NewValueIsInvalidErrorWithCause("transition timestamp",
			fmt.Errorf("%s is earlier than previously recorded %s", now.Format(time.RFC3339Nano), last.Format(time.RFC3339Nano)))
	}

	switch newStatus {
	case StatusPreparing:
		o.startedAt = &now
		if actor != "" {
			o.assignedTo = actor
		}
	case StatusReady:
		o.readyAt = &now
	case StatusDelivered:
		if actor == "" {
			return errs.NewValueIsRequiredError("delivering staff")
		}
		o.deliveredAt = &now
		o.deliveredBy = actor
	case StatusCancelled:
		o.cancelledAt = &now
	case StatusUnknown, StatusNew:
		// unreachable: TransitionTo never yields these as a new status
	}

	o.status = newStatus
	return nil
}

// StartPreparation moves the order to Preparing, assigning it to the given
// kitchen staff/team when one is named.
func (o *Order) StartPreparation(actor string, now time.Time) error {
	return o.TransitionTo(StatusPreparing, actor, now)
}

// MarkReady moves the order to Ready, signalling it awaits pickup.
func (o *Order) MarkReady(now time.Time) error {
	return o.TransitionTo(StatusReady, "", now)
}

// ConfirmDelivery moves the order to Delivered, recording who confirmed the
// bedside handoff. The actor is required.
func (o *Order) ConfirmDelivery(actor string, now time.Time) error {
	return o.TransitionTo(StatusDelivered, actor, now)
}

// Cancel withdraws the order. Permitted from New and Preparing only.
func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(StatusCancelled, "", now)
}

// lastStampedAt returns the most recent lifecycle timestamp recorded so
// far, createdAt at minimum.
func (o *Order) lastStampedAt() time.Time {
	last := o.createdAt
	for _, stamp := range []*time.Time{o.startedAt, o.readyAt, o.deliveredAt, o.cancelledAt} {
		if stamp != nil && stamp.After(last) {
			last = *stamp
		}
	}
	return last
}

// validateLifecycle checks the timestamp-iff-status invariant and stamp
// ordering on a restored order.
func (o *Order) validateLifecycle() error {
	requireStamp := func(name string, stamp *time.Time, required bool) error {
		if required && stamp == nil {
			return errs.NewValueIsRequiredErrorWithCause(name,
				fmt.Errorf("status %s implies %s is recorded", o.status, name))
		}
		if !required && stamp != nil {
			return errs.NewValueIsInvalidErrorWithCause(name,
				fmt.Errorf("status %s does not admit %s", o.status, name))
		}
		return nil
	}

	var err error
	switch o.status {
	case StatusNew:
		err = errors.Join(
			requireStamp("startedAt", o.startedAt, false),
			requireStamp("readyAt", o.readyAt, false),
			requireStamp("deliveredAt", o.deliveredAt, false),
			requireStamp("cancelledAt", o.cancelledAt, false),
		)
	case StatusPreparing:
		err = errors.Join(
			requireStamp("startedAt", o.startedAt, true),
			requireStamp("readyAt", o.readyAt, false),
			requireStamp("deliveredAt", o.deliveredAt, false),
			requireStamp("cancelledAt", o.cancelledAt, false),
		)
	case StatusReady:
		err = errors.Join(
			requireStamp("startedAt", o.startedAt, true),
			requireStamp("readyAt", o.readyAt, true),
			requireStamp("deliveredAt", o.deliveredAt, false),
			requireStamp("cancelledAt", o.cancelledAt, false),
		)
	case StatusDelivered:
		err = errors.Join(
			requireStamp("startedAt", o.startedAt, true),
			requireStamp("readyAt", o.readyAt, true),
			requireStamp("deliveredAt", o.deliveredAt, true),
			requireStamp("cancelledAt", o.cancelledAt, false),
		)
		if err == nil && o.deliveredBy == "" {
			err = errs.NewValueIsRequiredError("deliveredBy")
		}
	case StatusCancelled:
		err = errors.Join(
			requireStamp("readyAt", o.readyAt, false),
			requireStamp("deliveredAt", o.deliveredAt, false),
			requireStamp("cancelledAt", o.cancelledAt, true),
		)
	case StatusUnknown:
		err = o.status.Validate()
	}
	if err != nil {
		return err
	}

	prev := o.createdAt
	for _, stamp := range []*time.Time{o.startedAt, o.readyAt, o.deliveredAt, o.cancelledAt} {
		if stamp == nil {
			continue
		}
		if stamp.Before(prev) {
			return errs.NewValueIsInvalidErrorWithCause("lifecycle timestamps",
				fmt.Errorf("stamps are not in non-decreasing order"))
		}
		prev = *stamp
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setPrescriptionID(prescriptionID kernel.UUID) error {
	if err := prescriptionID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("prescription", err)
	}
	o.prescriptionID = prescriptionID
	return nil
}

func (o *Order) setPatientName(patientName string) error {
	if patientName == "" {
		return errs.NewValueIsRequiredError("patient name")
	}
	o.patientName = patientName
	return nil
}

func (o *Order) setRoom(room string) error {
	if room == "" {
		return errs.NewValueIsRequiredError("room")
	}
	o.room = room
	return nil
}

func (o *Order) setSector(sector string) error {
	if sector == "" {
		return errs.NewValueIsRequiredError("sector")
	}
	o.sector = sector
	return nil
}

func (o *Order) setDietLabel(dietLabel string) error {
	if dietLabel == "" {
		return errs.NewValueIsRequiredError("diet label")
	}
	o.dietLabel = dietLabel
	return nil
}

func (o *Order) setMealLabel(mealLabel string) error {
	if mealLabel == "" {
		return errs.NewValueIsRequiredError("meal label")
	}
	o.mealLabel = mealLabel
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation timestamp")
	}
	o.createdAt = createdAt
	return nil
}
