package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

const testOrderID = "3f0e8c7d-5b2a-49e1-b6c4-8a1d2e3f4a05"

func placeOrderBody() string {
	return `{"purchaser_email":"buyer@example.com","lines":[{"product_id":"prod-1","slot_id":"` + testSlotID + `",` +
		`"requested_count":1,"delivery_mode":"all","attendees":[{"name":"Jane","email":"jane@example.com"}]}]}`
}

func TestOrderController_PlaceOrder_Success(t *testing.T) {
	svc := &mockBookingService{order: &domain.Order{ID: testOrderID, PurchaserEmail: "buyer@example.com"}}
	ctrl := NewOrderController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody()))
	w := httptest.NewRecorder()

	ctrl.PlaceOrder(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, w.Code, w.Body.String())
	}
	if svc.gotPurchaser != "buyer@example.com" {
		t.Fatalf("expected purchaser buyer@example.com, got %q", svc.gotPurchaser)
	}
	if len(svc.gotLines) != 1 || svc.gotLines[0].DeliveryMode != domain.DeliveryAll {
		t.Fatalf("unexpected lines passed to service: %+v", svc.gotLines)
	}
}

func TestOrderController_PlaceOrder_NoLines(t *testing.T) {
	ctrl := NewOrderController(testControllerLogger(), &mockBookingService{})

	body := `{"purchaser_email":"buyer@example.com","lines":[]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	w := httptest.NewRecorder()

	ctrl.PlaceOrder(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestOrderController_PlaceOrder_InsufficientCapacity(t *testing.T) {
	ctrl := NewOrderController(testControllerLogger(), &mockBookingService{placeErr: domain.ErrInsufficientCapacity})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(placeOrderBody()))
	w := httptest.NewRecorder()

	ctrl.PlaceOrder(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
}

func TestOrderController_CompleteOrder_Success(t *testing.T) {
	svc := &mockBookingService{order: &domain.Order{ID: testOrderID}}
	ctrl := NewOrderController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/orders/"+testOrderID+"/complete", nil)
	req.SetPathValue("orderID", testOrderID)
	w := httptest.NewRecorder()

	ctrl.CompleteOrder(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.completedOrder != testOrderID {
		t.Fatalf("expected order %s completed, got %q", testOrderID, svc.completedOrder)
	}
}

func TestOrderController_CompleteOrder_NotFound(t *testing.T) {
	ctrl := NewOrderController(testControllerLogger(), &mockBookingService{completeErr: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodPost, "/orders/"+testOrderID+"/complete", nil)
	req.SetPathValue("orderID", testOrderID)
	w := httptest.NewRecorder()

	ctrl.CompleteOrder(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestOrderController_CompleteOrder_InvalidID(t *testing.T) {
	ctrl := NewOrderController(testControllerLogger(), &mockBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/orders/not-a-uuid/complete", nil)
	req.SetPathValue("orderID", "not-a-uuid")
	w := httptest.NewRecorder()

	ctrl.CompleteOrder(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestOrderController_ResendNotifications_Success(t *testing.T) {
	svc := &mockBookingService{}
	ctrl := NewOrderController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+testOrderID+"/resend", nil)
	req.SetPathValue("orderID", testOrderID)
	w := httptest.NewRecorder()

	ctrl.ResendNotifications(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.resentOrder != testOrderID {
		t.Fatalf("expected order %s resent, got %q", testOrderID, svc.resentOrder)
	}
	var resp struct {
		Data  ResendResponse    `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !resp.Data.Sent {
		t.Fatalf("expected sent true, got %+v", resp.Data)
	}
}

func TestOrderController_ResendNotifications_NothingToResend(t *testing.T) {
	ctrl := NewOrderController(testControllerLogger(), &mockBookingService{resendErr: domain.ErrInvalidInput})

	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+testOrderID+"/resend", nil)
	req.SetPathValue("orderID", testOrderID)
	w := httptest.NewRecorder()

	ctrl.ResendNotifications(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
