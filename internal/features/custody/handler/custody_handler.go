package handler

import (
	"errors"
	"net/http"
	"time"

	"shipment-custody/internal/core/logger"
	"shipment-custody/internal/features/custody/domain"
	"shipment-custody/internal/features/custody/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CodeBadRequest is returned for malformed request bodies or parameters.
const CodeBadRequest = "BAD_REQUEST"

// CustodyHandler handles HTTP requests for custody transactions.
type CustodyHandler struct {
	service ports.CustodyService
	now     func() time.Time
}

// NewCustodyHandler creates a new CustodyHandler.
func NewCustodyHandler(service ports.CustodyService) *CustodyHandler {
	return &CustodyHandler{
		service: service,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register mounts the custody routes on router.
func (h *CustodyHandler) Register(router fiber.Router) {
	router.Get("/shipments/:id", h.GetShipment)
	router.Post("/shipments/:id/receive", h.Receive)
	router.Post("/shipments/:id/exceptions", h.RecordException)
	router.Post("/shipments/:id/release", h.Release)
	router.Post("/shipments/:id/overtake", h.Overtake)
	router.Get("/contracts/:id", h.GetContract)
	router.Get("/participants/:role/:id", h.GetParticipant)
	router.Post("/demo/setup", h.SetupDemo)
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Code is the stable machine-readable error kind.
	Code string `json:"code"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ReceiveRequest is the body of a receive transaction.
type ReceiveRequest struct {
	// Timestamp defaults to the server time when omitted.
	Timestamp *time.Time `json:"timestamp"`
}

// ExceptionRequest is the body of an exception transaction.
type ExceptionRequest struct {
	Message   string     `json:"message"`
	GPSLat    float64    `json:"gps_lat"`
	GPSLong   float64    `json:"gps_long"`
	Timestamp *time.Time `json:"timestamp"`
}

// CustodyTransferRequest is the body of release and overtake transactions.
type CustodyTransferRequest struct {
	ShipperOld string `json:"shipper_old"`
	ShipperNew string `json:"shipper_new"`
}

// ExceptionResponse is returned after an exception is recorded.
type ExceptionResponse struct {
	Shipment *domain.Shipment              `json:"shipment"`
	Event    domain.ShipmentExceptionEvent `json:"event"`
}

// ReleaseResponse is returned after a release.
type ReleaseResponse struct {
	Shipment *domain.Shipment            `json:"shipment"`
	Event    domain.ShipmentReleaseEvent `json:"event"`
}

// OvertakeResponse is returned after an overtake.
type OvertakeResponse struct {
	Shipment *domain.Shipment             `json:"shipment"`
	Contract *domain.Contract             `json:"contract"`
	Event    domain.ShipmentOvertakeEvent `json:"event"`
}

// Receive godoc
// @Summary Receive a shipment
// @Description Marks the shipment as ARRIVED. Emits no event.
// @Tags custody
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body ReceiveRequest false "Receive details"
// @Success 200 {object} domain.Shipment
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shipments/{id}/receive [post]
func (h *CustodyHandler) Receive(c *fiber.Ctx) error {
	var req ReceiveRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return h.badRequest(c, "Invalid request body")
		}
	}

	shipment, err := h.service.Receive(c.Context(), c.Params("id"), domain.ReceiveTx{
		Timestamp: h.timestamp(req.Timestamp),
	})
	if err != nil {
		return h.fail(c, "receive", err)
	}

	return c.Status(http.StatusOK).JSON(shipment)
}

// RecordException godoc
// @Summary Record a shipment exception
// @Description Appends an incident to a shipment that has not arrived yet and emits a ShipmentExceptionEvent.
// @Tags custody
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body ExceptionRequest true "Exception details"
// @Success 200 {object} ExceptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shipments/{id}/exceptions [post]
func (h *CustodyHandler) RecordException(c *fiber.Ctx) error {
	var req ExceptionRequest
	if err := c.BodyParser(&req); err != nil {
		return h.badRequest(c, "Invalid request body")
	}
	if req.Message == "" {
		return h.badRequest(c, "message is required")
	}

	shipment, event, err := h.service.RecordException(c.Context(), c.Params("id"), domain.ExceptionTx{
		Message:   req.Message,
		GPSLat:    req.GPSLat,
		GPSLong:   req.GPSLong,
		Timestamp: h.timestamp(req.Timestamp),
	})
	if err != nil {
		return h.fail(c, "record exception", err)
	}

	return c.Status(http.StatusOK).JSON(ExceptionResponse{Shipment: shipment, Event: event})
}

// Release godoc
// @Summary Release a shipment
// @Description The current custodian releases the shipment to the next shipper and a ShipmentReleaseEvent is emitted.
// @Tags custody
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body CustodyTransferRequest true "Shippers"
// @Success 200 {object} ReleaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shipments/{id}/release [post]
func (h *CustodyHandler) Release(c *fiber.Ctx) error {
	req, ok := h.parseTransfer(c)
	if !ok {
		return nil
	}

	shipment, event, err := h.service.Release(c.Context(), c.Params("id"), domain.ReleaseTx{
		ShipperOld: req.ShipperOld,
		ShipperNew: req.ShipperNew,
	})
	if err != nil {
		return h.fail(c, "release", err)
	}

	return c.Status(http.StatusOK).JSON(ReleaseResponse{Shipment: shipment, Event: event})
}

// Overtake godoc
// @Summary Overtake a shipment
// @Description A shipper takes custody of a released shipment. The shipper is appended to the contract's custody chain and a ShipmentOvertakeEvent is emitted.
// @Tags custody
// @Accept json
// @Produce json
// @Param id path string true "Shipment ID"
// @Param body body CustodyTransferRequest true "Shippers"
// @Success 200 {object} OvertakeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /shipments/{id}/overtake [post]
func (h *CustodyHandler) Overtake(c *fiber.Ctx) error {
	req, ok := h.parseTransfer(c)
	if !ok {
		return nil
	}

	shipment, contract, event, err := h.service.Overtake(c.Context(), c.Params("id"), domain.OvertakeTx{
		ShipperOld: req.ShipperOld,
		ShipperNew: req.ShipperNew,
	})
	if err != nil {
		return h.fail(c, "overtake", err)
	}

	return c.Status(http.StatusOK).JSON(OvertakeResponse{Shipment: shipment, Contract: contract, Event: event})
}

// GetShipment godoc
// @Summary Get a shipment
// @Tags custody
// @Produce json
// @Param id path string true "Shipment ID"
// @Success 200 {object} domain.Shipment
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{id} [get]
func (h *CustodyHandler) GetShipment(c *fiber.Ctx) error {
	shipment, err := h.service.GetShipment(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "get shipment", err)
	}
	return c.JSON(shipment)
}

// GetContract godoc
// @Summary Get a contract
// @Tags custody
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} domain.Contract
// @Failure 404 {object} ErrorResponse
// @Router /contracts/{id} [get]
func (h *CustodyHandler) GetContract(c *fiber.Ctx) error {
	contract, err := h.service.GetContract(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "get contract", err)
	}
	return c.JSON(contract)
}

// GetParticipant godoc
// @Summary Get a participant
// @Tags custody
// @Produce json
// @Param role path string true "Role (dispatcher, recipient, shipper, insurer, device)"
// @Param id path string true "Participant ID"
// @Success 200 {object} domain.Participant
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /participants/{role}/{id} [get]
func (h *CustodyHandler) GetParticipant(c *fiber.Ctx) error {
	role, ok := domain.ParseRole(c.Params("role"))
	if !ok {
		return h.badRequest(c, "unknown participant role")
	}

	participant, err := h.service.GetParticipant(c.Context(), role, c.Params("id"))
	if err != nil {
		return h.fail(c, "get participant", err)
	}
	return c.JSON(participant)
}

// SetupDemo godoc
// @Summary Seed demo data
// @Description Creates demo participants, contracts con1/con2 and shipments ship1/ship2.
// @Tags demo
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} ErrorResponse
// @Router /demo/setup [post]
func (h *CustodyHandler) SetupDemo(c *fiber.Ctx) error {
	if err := h.service.SetupDemo(c.Context(), h.now()); err != nil {
		return h.fail(c, "setup demo", err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Demo data created successfully",
	})
}

func (h *CustodyHandler) parseTransfer(c *fiber.Ctx) (CustodyTransferRequest, bool) {
	var req CustodyTransferRequest
	if err := c.BodyParser(&req); err != nil {
		h.badRequest(c, "Invalid request body")
		return req, false
	}
	if req.ShipperOld == "" || req.ShipperNew == "" {
		h.badRequest(c, "shipper_old and shipper_new are required")
		return req, false
	}
	return req, true
}

func (h *CustodyHandler) timestamp(t *time.Time) time.Time {
	if t == nil || t.IsZero() {
		return h.now()
	}
	return *t
}

func (h *CustodyHandler) badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: msg,
		Code:    CodeBadRequest,
		RayID:   rayID(c),
	})
}

// fail translates a service error into an HTTP response.
func (h *CustodyHandler) fail(c *fiber.Ctx, op string, err error) error {
	status := statusFor(err)
	msg := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Get().Error("Custody transaction failed",
			zap.String("operation", op),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		msg = "Internal server error"
	} else {
		logger.Get().Info("Custody transaction rejected",
			zap.String("operation", op),
			zap.String("ray_id", rayID(c)),
			zap.String("code", domain.Code(err)),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		Code:    domain.Code(err),
		RayID:   rayID(c),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntityNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedCustodian):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrShipmentAlreadyArrived):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}
