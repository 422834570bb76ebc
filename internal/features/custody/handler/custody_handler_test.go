package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shipment-custody/internal/features/custody/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustodyService is a mock implementation of ports.CustodyService
type MockCustodyService struct {
	mock.Mock
}

func (m *MockCustodyService) Receive(ctx context.Context, shipmentID string, tx domain.ReceiveTx) (*domain.Shipment, error) {
	args := m.Called(ctx, shipmentID, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockCustodyService) RecordException(ctx context.Context, shipmentID string, tx domain.ExceptionTx) (*domain.Shipment, domain.ShipmentExceptionEvent, error) {
	args := m.Called(ctx, shipmentID, tx)
	if args.Get(0) == nil {
		return nil, domain.ShipmentExceptionEvent{}, args.Error(2)
	}
	return args.Get(0).(*domain.Shipment), args.Get(1).(domain.ShipmentExceptionEvent), args.Error(2)
}

func (m *MockCustodyService) Release(ctx context.Context, shipmentID string, tx domain.ReleaseTx) (*domain.Shipment, domain.ShipmentReleaseEvent, error) {
	args := m.Called(ctx, shipmentID, tx)
	if args.Get(0) == nil {
		return nil, domain.ShipmentReleaseEvent{}, args.Error(2)
	}
	return args.Get(0).(*domain.Shipment), args.Get(1).(domain.ShipmentReleaseEvent), args.Error(2)
}

func (m *MockCustodyService) Overtake(ctx context.Context, shipmentID string, tx domain.OvertakeTx) (*domain.Shipment, *domain.Contract, domain.ShipmentOvertakeEvent, error) {
	args := m.Called(ctx, shipmentID, tx)
	if args.Get(0) == nil {
		return nil, nil, domain.ShipmentOvertakeEvent{}, args.Error(3)
	}
	return args.Get(0).(*domain.Shipment), args.Get(1).(*domain.Contract), args.Get(2).(domain.ShipmentOvertakeEvent), args.Error(3)
}

func (m *MockCustodyService) GetShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockCustodyService) GetContract(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockCustodyService) GetParticipant(ctx context.Context, role domain.ParticipantRole, id string) (*domain.Participant, error) {
	args := m.Called(ctx, role, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockCustodyService) SetupDemo(ctx context.Context, now time.Time) error {
	args := m.Called(ctx, now)
	return args.Error(0)
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func setupApp(service *MockCustodyService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h := NewCustodyHandler(service)
	h.now = func() time.Time { return fixedNow }
	h.Register(app)
	return app
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var errResp ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp
}

func TestCustodyHandler_Release(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		tx := domain.ReleaseTx{ShipperOld: "shipperA", ShipperNew: "shipperB"}
		event := domain.ShipmentReleaseEvent{ShipperOld: "shipperA", ShipperNew: "shipperB", ShipmentID: "ship1"}
		svc.On("Release", mock.Anything, "ship1", tx).Return(&domain.Shipment{ID: "ship1", Status: domain.StatusReleased}, event, nil).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/release", CustodyTransferRequest{ShipperOld: "shipperA", ShipperNew: "shipperB"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body ReleaseResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, domain.StatusReleased, body.Shipment.Status)
		assert.Equal(t, event, body.Event)
		svc.AssertExpectations(t)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		svc.On("Release", mock.Anything, "ship1", mock.Anything).Return(nil, domain.ShipmentReleaseEvent{}, domain.ErrUnauthorizedCustodian).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/release", CustodyTransferRequest{ShipperOld: "shipperA", ShipperNew: "shipperC"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		errResp := decodeError(t, resp)
		assert.Equal(t, domain.CodeUnauthorizedCustodian, errResp.Code)
		assert.Equal(t, "test-ray-id", errResp.RayID)
		svc.AssertExpectations(t)
	})

	t.Run("MissingShipper", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/release", CustodyTransferRequest{ShipperOld: "shipperA"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, CodeBadRequest, decodeError(t, resp).Code)
		svc.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCustodyHandler_Overtake(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		tx := domain.OvertakeTx{ShipperOld: "shipperA", ShipperNew: "shipperB"}
		svc.On("Overtake", mock.Anything, "ship1", tx).Return(
			&domain.Shipment{ID: "ship1", Status: domain.StatusInTransit},
			&domain.Contract{ID: "con1", Shippers: []string{"shipperA", "shipperB"}},
			domain.ShipmentOvertakeEvent{ShipperOld: "shipperA", ShipperNew: "shipperB", ShipmentID: "ship1"},
			nil,
		).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/overtake", CustodyTransferRequest{ShipperOld: "shipperA", ShipperNew: "shipperB"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body OvertakeResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []string{"shipperA", "shipperB"}, body.Contract.Shippers)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidTransition", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		svc.On("Overtake", mock.Anything, "ship1", mock.Anything).Return(nil, nil, domain.ShipmentOvertakeEvent{},
			fmt.Errorf("%w: overtake requires RELEASED", domain.ErrInvalidTransition)).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/overtake", CustodyTransferRequest{ShipperOld: "a", ShipperNew: "b"}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		errResp := decodeError(t, resp)
		assert.Equal(t, domain.CodeInvalidTransition, errResp.Code)
		assert.Contains(t, errResp.Message, "overtake requires RELEASED")
	})
}

func TestCustodyHandler_RecordException(t *testing.T) {
	t.Run("DefaultsTimestamp", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		tx := domain.ExceptionTx{Message: "delayed at customs", GPSLat: 1.1, GPSLong: 2.2, Timestamp: fixedNow}
		svc.On("RecordException", mock.Anything, "ship3", tx).Return(
			&domain.Shipment{ID: "ship3", Status: domain.StatusInTransit},
			domain.ShipmentExceptionEvent{Message: tx.Message, GPSLat: 1.1, GPSLong: 2.2, ShipmentID: "ship3"},
			nil,
		).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship3/exceptions", ExceptionRequest{Message: "delayed at customs", GPSLat: 1.1, GPSLong: 2.2}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("AlreadyArrived", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		svc.On("RecordException", mock.Anything, "ship2", mock.Anything).Return(nil, domain.ShipmentExceptionEvent{}, domain.ErrShipmentAlreadyArrived).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship2/exceptions", ExceptionRequest{Message: "damaged", GPSLat: 10, GPSLong: 20}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, domain.CodeShipmentAlreadyArrived, decodeError(t, resp).Code)
	})

	t.Run("MissingMessage", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship3/exceptions", ExceptionRequest{GPSLat: 1}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCustodyHandler_Receive(t *testing.T) {
	t.Run("EmptyBody", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		svc.On("Receive", mock.Anything, "ship1", domain.ReceiveTx{Timestamp: fixedNow}).Return(&domain.Shipment{ID: "ship1", Status: domain.StatusArrived}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/shipments/ship1/receive", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("ExplicitTimestamp", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		at := time.Date(2024, 5, 30, 8, 0, 0, 0, time.UTC)
		svc.On("Receive", mock.Anything, "ship1", domain.ReceiveTx{Timestamp: at}).Return(&domain.Shipment{ID: "ship1", Status: domain.StatusArrived}, nil).Once()

		resp, err := app.Test(jsonRequest(t, "POST", "/shipments/ship1/receive", ReceiveRequest{Timestamp: &at}))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		svc.On("Receive", mock.Anything, "nope", mock.Anything).Return(nil, fmt.Errorf("service: failed to get shipment nope: %w", domain.ErrEntityNotFound)).Once()

		resp, err := app.Test(httptest.NewRequest("POST", "/shipments/nope/receive", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, domain.CodeEntityNotFound, decodeError(t, resp).Code)
	})
}

func TestCustodyHandler_Reads(t *testing.T) {
	t.Run("Shipment", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)
		svc.On("GetShipment", mock.Anything, "ship1").Return(&domain.Shipment{ID: "ship1", Status: domain.StatusCreated}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/shipments/ship1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("ContractStorageError", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)
		svc.On("GetContract", mock.Anything, "con1").Return(nil, fmt.Errorf("%w: i/o timeout", domain.ErrStorage)).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/contracts/con1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		errResp := decodeError(t, resp)
		assert.Equal(t, domain.CodeStorage, errResp.Code)
		assert.Equal(t, "Internal server error", errResp.Message)
	})

	t.Run("ParticipantRole", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)
		svc.On("GetParticipant", mock.Anything, domain.RoleShipper, "dhl@email.com").Return(&domain.Participant{ID: "dhl@email.com", Role: domain.RoleShipper}, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/participants/shipper/dhl@email.com", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		svc := new(MockCustodyService)
		app := setupApp(svc)

		resp, err := app.Test(httptest.NewRequest("GET", "/participants/pirate/x", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCustodyHandler_SetupDemo(t *testing.T) {
	svc := new(MockCustodyService)
	app := setupApp(svc)
	svc.On("SetupDemo", mock.Anything, fixedNow).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest("POST", "/demo/setup", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	svc.On("SetupDemo", mock.Anything, fixedNow).Return(errors.New("redis down")).Once()
	resp, err = app.Test(httptest.NewRequest("POST", "/demo/setup", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	svc.AssertExpectations(t)
}
