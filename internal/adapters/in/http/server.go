package http

import (
	"errors"
	"net/http"

	"dietboard/internal/core/application/usecases/commands"
	"dietboard/internal/core/application/usecases/queries"
	"dietboard/internal/core/domain/model/diet"
	"dietboard/internal/core/domain/model/kernel"
	"dietboard/internal/core/domain/model/order"
	"dietboard/internal/generated/servers"
	"dietboard/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPrescriptionHandler commands.CreatePrescriptionCommandHandler
	transitionOrderHandler    commands.TransitionOrderCommandHandler

	// Query handlers
	getBoardHandler         queries.GetBoardQueryHandler
	getDeliveryQueueHandler queries.GetDeliveryQueueQueryHandler
	getPatientsHandler      queries.GetPatientsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPrescriptionHandler commands.CreatePrescriptionCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	getBoardHandler queries.GetBoardQueryHandler,
	getDeliveryQueueHandler queries.GetDeliveryQueueQueryHandler,
	getPatientsHandler queries.GetPatientsQueryHandler,
) *Server {
	return &Server{
		createPrescriptionHandler: createPrescriptionHandler,
		transitionOrderHandler:    transitionOrderHandler,
		getBoardHandler:           getBoardHandler,
		getDeliveryQueueHandler:   getDeliveryQueueHandler,
		getPatientsHandler:        getPatientsHandler,
	}
}

// GetPatients handles GET /api/v1/patients - retrieves the admitted
// patients for the prescribe form.
func (s *Server) GetPatients(ctx echo.Context) error {
	query := queries.NewGetPatientsQuery()

	patients, err := s.getPatientsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve patients",
		})
	}

	response := make([]servers.Patient, len(patients))
	for i, pat := range patients {
		response[i] = servers.Patient{
			Id:          pat.ID.Bytes(),
			Name:        pat.Name,
			Room:        pat.Room,
			Sector:      pat.Sector,
			Allergies:   optionalString(pat.Allergies),
			CurrentDiet: optionalString(pat.CurrentDiet),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePrescription handles POST /api/v1/prescriptions - saves a diet
// prescription and fans it out into kitchen orders.
func (s *Server) CreatePrescription(ctx echo.Context) error {
	var body servers.NewPrescription
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	patientID, err := kernel.UUIDFromBytes(body.PatientId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid patient identifier",
		})
	}

	dietBase, err := diet.BaseFromString(body.DietBase)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid diet base: " + body.DietBase,
		})
	}

	dietModifier := diet.ModifierNone
	if body.DietModifier != nil {
		dietModifier, err = diet.ModifierFromString(*body.DietModifier)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid diet modifier: " + *body.DietModifier,
			})
		}
	}

	var meals []string
	if body.Meals != nil {
		meals = *body.Meals
	}

	cmd, err := commands.NewCreatePrescriptionCommand(
		kernel.NewUUID(),
		patientID,
		dietBase,
		dietModifier,
		deref(body.Observations),
		body.PrescribedBy,
		meals,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid prescription data: " + err.Error(),
		})
	}

	if handleErr := s.createPrescriptionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to save prescription")
	}

	return ctx.NoContent(http.StatusCreated)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transition - moves
// an order along the production pipeline.
func (s *Server) TransitionOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	target, err := order.StatusFromString(body.Target)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + body.Target,
		})
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, deref(body.Actor))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid transition request: " + err.Error(),
		})
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.writeError(ctx, handleErr, "Failed to transition order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBoard handles GET /api/v1/board - retrieves the kitchen board.
func (s *Server) GetBoard(ctx echo.Context) error {
	query := queries.NewGetBoardQuery()

	board, err := s.getBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load board",
		})
	}

	response := servers.Board{Columns: make([]servers.BoardColumn, len(board.Columns))}
	for i, column := range board.Columns {
		response.Columns[i] = servers.BoardColumn{
			Status: column.Status,
			Orders: ordersToAPI(column.Orders),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryQueue handles GET /api/v1/delivery-queue - retrieves the
// delivery runner's two lanes.
func (s *Server) GetDeliveryQueue(ctx echo.Context, params servers.GetDeliveryQueueParams) error {
	var inTransitIDs []kernel.UUID
	if params.InTransit != nil {
		inTransitIDs = make([]kernel.UUID, 0, len(*params.InTransit))
		for _, raw := range *params.InTransit {
			id, err := kernel.UUIDFromBytes(raw[:])
			if err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid in-transit identifier",
				})
			}
			inTransitIDs = append(inTransitIDs, id)
		}
	}

	query, err := queries.NewGetDeliveryQueueQuery(inTransitIDs)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery queue request: " + err.Error(),
		})
	}

	queue, err := s.getDeliveryQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to load delivery queue",
		})
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryQueue{
		AwaitingPickup: ordersToAPI(queue.AwaitingPickup),
		InTransit:      ordersToAPI(queue.InTransit),
	})
}

// writeError maps domain errors onto HTTP status codes. Conflicts carry 409
// so clients know to re-fetch and retry; transitions the pipeline forbids
// carry 422 to distinguish them from malformed requests.
func (s *Server) writeError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidStatusTransition):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func ordersToAPI(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:             o.ID.Bytes(),
			PrescriptionId: o.PrescriptionID.Bytes(),
			PatientName:    o.PatientName,
			Room:           o.Room,
			Sector:         o.Sector,
			DietLabel:      o.DietLabel,
			MealLabel:      o.MealLabel,
			Notes:          optionalString(o.Notes),
			Status:         o.Status,
			CreatedAt:      o.CreatedAt,
			StartedAt:      o.StartedAt,
			ReadyAt:        o.ReadyAt,
			DeliveredAt:    o.DeliveredAt,
			CancelledAt:    o.CancelledAt,
			AssignedTo:     optionalString(o.AssignedTo),
			DeliveredBy:    optionalString(o.DeliveredBy),
			Version:        o.Version,
		}
	}
	return response
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
