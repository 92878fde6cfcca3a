package commands_test

import (
	"context"
	"errors"
	"testing"

	"dietboard/internal/core/application/usecases/commands"
	"dietboard/internal/core/domain/model/diet"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/core/domain/model/patient"
	"dietboard/internal/core/domain/model/prescription"
	"dietboard/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPrescribeOrderRepository struct{ mock.Mock }

func (m *MockPrescribeOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockPrescribeOrderRepository) Update(_ context.Context, _ *order.Order) error { return nil }
func (m *MockPrescribeOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPrescribeOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockPrescribeOrderRepository) GetAllInStatus(_ context.Context, _ order.Status) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPrescriptionRepository struct{ mock.Mock }

func (m *MockPrescriptionRepository) Add(ctx context.Context, p *prescription.Prescription) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPrescriptionRepository) Get(_ context.Context, _ kernel.UUID) (*prescription.Prescription, error) {
	return nil, errors.New("not implemented in mock")
}

type MockPatientRepository struct{ mock.Mock }

func (m *MockPatientRepository) Get(ctx context.Context, id kernel.UUID) (*patient.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*patient.Patient), args.Error(1)
}
func (m *MockPatientRepository) GetAll(_ context.Context) ([]*patient.Patient, error) {
	return nil, errors.New("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PrescriptionRepository() ports.PrescriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.PrescriptionRepository)
}

func (m *MockUoW) PatientRepository() ports.PatientRepository {
	args := m.Called()
	return args.Get(0).(ports.PatientRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, changed []*order.Order) error {
	args := m.Called(ctx, changed)
	return args.Error(0)
}

func validPrescribeCommand(t *testing.T, patientID kernel.UUID, meals []string) commands.CreatePrescriptionCommand {
	t.Helper()
	cmd, err := commands.NewCreatePrescriptionCommand(
		kernel.NewUUID(), patientID, diet.Soft, diet.LowSodium,
		"no straws", "dr.mendes", meals,
	)
	require.NoError(t, err)
	return cmd
}

func admittedPatient(t *testing.T, id kernel.UUID) *patient.Patient {
	t.Helper()
	pat, err := patient.NewPatient(id, "Mr. Silva", "101-A", "Ward A", "nuts", "Free")
	require.NoError(t, err)
	return pat
}

func TestCreatePrescriptionCommandHandler_Handle_FansOutDefaultMeals(t *testing.T) {
	ctx := t.Context()
	patientID := kernel.NewUUID()
	cmd := validPrescribeCommand(t, patientID, nil)

	patRepo := new(MockPatientRepository)
	patRepo.On("Get", ctx, patientID).Return(admittedPatient(t, patientID), nil).Once()

	prescRepo := new(MockPrescriptionRepository)
	prescRepo.On("Add", mock.Anything, mock.AnythingOfType("*prescription.Prescription")).Return(nil).Once()

	orderRepo := new(MockPrescribeOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(patRepo).Once()
	uow.On("PrescriptionRepository").Return(prescRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.MatchedBy(func(changed []*order.Order) bool {
		return len(changed) == 2 &&
			changed[0].MealLabel() == "Lunch" &&
			changed[1].MealLabel() == "Dinner"
	})).Return(nil).Once()

	h := commands.NewCreatePrescriptionCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	patRepo.AssertExpectations(t)
	prescRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreatePrescriptionCommandHandler_Handle_SingleMeal(t *testing.T) {
	ctx := t.Context()
	patientID := kernel.NewUUID()
	cmd := validPrescribeCommand(t, patientID, []string{"Dinner"})

	patRepo := new(MockPatientRepository)
	patRepo.On("Get", ctx, patientID).Return(admittedPatient(t, patientID), nil).Once()

	prescRepo := new(MockPrescriptionRepository)
	prescRepo.On("Add", mock.Anything, mock.AnythingOfType("*prescription.Prescription")).Return(nil).Once()

	orderRepo := new(MockPrescribeOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
		return o.MealLabel() == "Dinner" && o.DietLabel() == "Soft + Low-Sodium"
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(patRepo).Once()
	uow.On("PrescriptionRepository").Return(prescRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePrescriptionCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePrescriptionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreatePrescriptionCommand{} // not constructed properly
	factory := new(MockUoWFactory)
	h := commands.NewCreatePrescriptionCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreatePrescriptionCommandHandler_Handle_PatientNotFound(t *testing.T) {
	ctx := t.Context()
	patientID := kernel.NewUUID()
	cmd := validPrescribeCommand(t, patientID, nil)

	patRepo := new(MockPatientRepository)
	patRepo.On("Get", ctx, patientID).Return(nil, errors.New("patient missing")).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(patRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePrescriptionCommandHandler(factory, nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreatePrescriptionCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	patientID := kernel.NewUUID()
	cmd := validPrescribeCommand(t, patientID, []string{"Lunch"})

	patRepo := new(MockPatientRepository)
	patRepo.On("Get", ctx, patientID).Return(admittedPatient(t, patientID), nil).Once()

	prescRepo := new(MockPrescriptionRepository)
	prescRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	orderRepo := new(MockPrescribeOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(patRepo).Once()
	uow.On("PrescriptionRepository").Return(prescRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)

	h := commands.NewCreatePrescriptionCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	publisher.AssertNotCalled(t, "PublishOrderChanged", mock.Anything, mock.Anything)
}

func TestCreatePrescriptionCommandHandler_Handle_PublishErrorSurfaces(t *testing.T) {
	ctx := t.Context()
	patientID := kernel.NewUUID()
	cmd := validPrescribeCommand(t, patientID, []string{"Lunch"})

	patRepo := new(MockPatientRepository)
	patRepo.On("Get", ctx, patientID).Return(admittedPatient(t, patientID), nil).Once()

	prescRepo := new(MockPrescriptionRepository)
	prescRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	orderRepo := new(MockPrescribeOrderRepository)
	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PatientRepository").Return(patRepo).Once()
	uow.On("PrescriptionRepository").Return(prescRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreatePrescriptionCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorContains(t, err, "broker down")
}
