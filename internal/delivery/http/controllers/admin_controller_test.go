package controllers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coursebooking/internal/delivery/http/helpers"
	"coursebooking/internal/domain"
)

type mockReportingService struct {
	occupancy []*domain.SlotOccupancy
	total     int
	roster    *domain.SlotRoster
	csvRows   []domain.RosterRow
	err       error

	gotParams domain.PaginationParams
}

func (m *mockReportingService) Dashboard(ctx context.Context, params domain.PaginationParams) ([]*domain.SlotOccupancy, int, error) {
	m.gotParams = params
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.occupancy, m.total, nil
}

func (m *mockReportingService) SlotRoster(ctx context.Context, slotID string) (*domain.SlotRoster, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.roster, nil
}

func (m *mockReportingService) WriteRosterCSV(ctx context.Context, slotID string, w io.Writer) (int, int, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Name", "Email", "Order", "Status", "Product", "Date", "Time"})
	for _, row := range m.csvRows {
		_ = cw.Write([]string{row.Name, row.Email, row.OrderID, row.Status, row.ProductID, row.Date, row.Time})
	}
	cw.Flush()
	return len(m.csvRows), 0, cw.Error()
}

func TestAdminController_Dashboard_Success(t *testing.T) {
	svc := &mockReportingService{
		occupancy: []*domain.SlotOccupancy{{SlotID: testSlotID, Capacity: 10, Booked: 3, Remaining: 7, Bookings: 2}},
		total:     41,
	}
	ctrl := NewAdminController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard?page=2&page_size=10", nil)
	w := httptest.NewRecorder()

	ctrl.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if svc.gotParams.Page != 2 || svc.gotParams.PageSize != 10 {
		t.Fatalf("unexpected pagination params: %+v", svc.gotParams)
	}
	var resp struct {
		Data  DashboardResponse `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data.Slots) != 1 || resp.Data.Slots[0].Remaining != 7 {
		t.Fatalf("unexpected slots: %+v", resp.Data.Slots)
	}
	if resp.Data.Pagination.Total != 41 || resp.Data.Pagination.TotalPages != 5 {
		t.Fatalf("unexpected pagination meta: %+v", resp.Data.Pagination)
	}
}

func TestAdminController_SlotRoster_Success(t *testing.T) {
	svc := &mockReportingService{roster: &domain.SlotRoster{
		Slot: &domain.Slot{ID: testSlotID},
		Rows: []domain.RosterRow{{Name: "Jane", Email: "jane@example.com"}},
	}}
	ctrl := NewAdminController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/slots/"+testSlotID+"/roster", nil)
	req.SetPathValue("slotID", testSlotID)
	w := httptest.NewRecorder()

	ctrl.SlotRoster(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp struct {
		Data  *domain.SlotRoster `json:"data"`
		Error *helpers.APIError  `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(resp.Data.Rows) != 1 || resp.Data.Rows[0].Email != "jane@example.com" {
		t.Fatalf("unexpected roster: %+v", resp.Data)
	}
}

func TestAdminController_SlotRoster_NotFound(t *testing.T) {
	ctrl := NewAdminController(testControllerLogger(), &mockReportingService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/admin/slots/"+testSlotID+"/roster", nil)
	req.SetPathValue("slotID", testSlotID)
	w := httptest.NewRecorder()

	ctrl.SlotRoster(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAdminController_SlotRoster_InvalidID(t *testing.T) {
	ctrl := NewAdminController(testControllerLogger(), &mockReportingService{})

	req := httptest.NewRequest(http.MethodGet, "/admin/slots/nope/roster", nil)
	req.SetPathValue("slotID", "nope")
	w := httptest.NewRecorder()

	ctrl.SlotRoster(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestAdminController_SlotRosterCSV_Success(t *testing.T) {
	svc := &mockReportingService{csvRows: []domain.RosterRow{
		{Name: "Jane", Email: "jane@example.com", OrderID: testOrderID, Status: "committed", ProductID: "prod-1", Date: "2026-03-02", Time: "10:00"},
	}}
	ctrl := NewAdminController(testControllerLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/admin/slots/"+testSlotID+"/roster.csv", nil)
	req.SetPathValue("slotID", testSlotID)
	w := httptest.NewRecorder()

	ctrl.SlotRosterCSV(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Fatalf("expected text/csv content type, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "roster-"+testSlotID+".csv") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV body: %v", err)
	}
	if len(records) != 2 || records[1][0] != "Jane" {
		t.Fatalf("unexpected CSV records: %v", records)
	}
}

func TestAdminController_SlotRosterCSV_NotFound(t *testing.T) {
	ctrl := NewAdminController(testControllerLogger(), &mockReportingService{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/admin/slots/"+testSlotID+"/roster.csv", nil)
	req.SetPathValue("slotID", testSlotID)
	w := httptest.NewRecorder()

	ctrl.SlotRosterCSV(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON error body, got content type %q", ct)
	}
}
