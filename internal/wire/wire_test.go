package wire

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"safari-njema/internal/data/repository"
	"safari-njema/internal/ledger"
	"safari-njema/pkg/utils"

	"go.uber.org/zap"
)

// apiResponse mirrors the wire envelope loosely enough for assertions.
type apiResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Data          json.RawMessage   `json:"data"`
	Customer      json.RawMessage   `json:"customer"`
	SearchParams  map[string]string `json:"searchParams"`
	ReservedUntil string            `json:"reservedUntil"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	config := &utils.Config{
		Booking: utils.BookingConfig{HoldDuration: time.Minute},
		Payment: utils.PaymentConfig{Delay: 20 * time.Millisecond},
	}
	repo := repository.NewMemoryRepository(zap.NewNop())
	seats := ledger.New(config.Booking.HoldDuration, zap.NewNop())

	app := Wiring(repo, seats, config, zap.NewNop())
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, *apiResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, &envelope
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodGet, server.URL+"/api/health", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !envelope.Success || envelope.Message != "Safari Njema API is running" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodGet, server.URL+"/api/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	if envelope.Success || envelope.Message != "API endpoint not found" {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

func TestListCities(t *testing.T) {
	server := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodGet, server.URL+"/api/cities", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var cities []map[string]any
	if err := json.Unmarshal(envelope.Data, &cities); err != nil {
		t.Fatalf("decode cities: %v", err)
	}
	if len(cities) != 15 {
		t.Errorf("expected 15 cities, got %d", len(cities))
	}
}

func TestSearchTripsEndpoint(t *testing.T) {
	server := newTestServer(t)

	// Missing parameters fail fast.
	resp, envelope := doJSON(t, http.MethodGet, server.URL+"/api/trips/search?from=Nairobi", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if envelope.Message != "Missing required parameters: from, to, date" {
		t.Errorf("unexpected message %q", envelope.Message)
	}

	resp, envelope = doJSON(t, http.MethodGet, server.URL+"/api/trips/search?from=Nairobi&to=Mombasa&date=2026-09-15", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var trips []map[string]any
	if err := json.Unmarshal(envelope.Data, &trips); err != nil {
		t.Fatalf("decode trips: %v", err)
	}
	if len(trips) != 3 {
		t.Errorf("expected 3 trips, got %d", len(trips))
	}
	if envelope.SearchParams["from"] != "Nairobi" || envelope.SearchParams["date"] != "2026-09-15" {
		t.Errorf("expected search params echoed, got %v", envelope.SearchParams)
	}
}

func TestReserveSeatsEndpoint(t *testing.T) {
	server := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, server.URL+"/api/seats/reserve", map[string]any{
		"tripId":      "1",
		"seatNumbers": []int{1, 3},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if envelope.Message != "Seats reserved successfully" {
		t.Errorf("unexpected message %q", envelope.Message)
	}
	if envelope.ReservedUntil == "" {
		t.Error("expected top-level reservedUntil")
	}
	var reservation struct {
		HoldID      string `json:"holdId"`
		SeatNumbers []int  `json:"seatNumbers"`
	}
	if err := json.Unmarshal(envelope.Data, &reservation); err != nil {
		t.Fatalf("decode reservation: %v", err)
	}
	if reservation.HoldID == "" {
		t.Error("expected a hold token")
	}

	// Seat 2 is pre-booked; the conflict answer names it.
	resp, envelope = doJSON(t, http.MethodPost, server.URL+"/api/seats/reserve", map[string]any{
		"tripId":      "1",
		"seatNumbers": []int{2},
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if !strings.Contains(envelope.Message, "2") || !strings.Contains(envelope.Message, "not available") {
		t.Errorf("conflict message should name seat 2: %q", envelope.Message)
	}

	// Unknown trip.
	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/seats/reserve", map[string]any{
		"tripId":      "999",
		"seatNumbers": []int{1},
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown trip, got %d", resp.StatusCode)
	}
}

func TestBookingFlowEndToEnd(t *testing.T) {
	server := newTestServer(t)

	// Hold two seats.
	resp, envelope := doJSON(t, http.MethodPost, server.URL+"/api/seats/reserve", map[string]any{
		"tripId":      "1",
		"seatNumbers": []int{6, 7},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("reserve: expected 200, got %d", resp.StatusCode)
	}
	var reservation struct {
		HoldID string `json:"holdId"`
	}
	if err := json.Unmarshal(envelope.Data, &reservation); err != nil {
		t.Fatalf("decode reservation: %v", err)
	}

	// Convert the hold into a booking.
	resp, envelope = doJSON(t, http.MethodPost, server.URL+"/api/bookings", map[string]any{
		"tripId":      "1",
		"seatNumbers": []int{6, 7},
		"totalAmount": 3000,
		"holdId":      reservation.HoldID,
		"customerInfo": map[string]string{
			"fullName":    "Amina Wanjiru",
			"phoneNumber": "+254712345678",
			"idNumber":    "28374651",
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create booking: expected 200, got %d", resp.StatusCode)
	}
	var booking struct {
		ID               string `json:"id"`
		BookingReference string `json:"bookingReference"`
		Status           string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Data, &booking); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if booking.Status != "pending" {
		t.Errorf("expected pending booking, got %s", booking.Status)
	}
	if len(envelope.Customer) == 0 {
		t.Error("expected customer alongside the booking")
	}

	// Pay for it and wait for settlement.
	resp, envelope = doJSON(t, http.MethodPost, server.URL+"/api/payments/initiate", map[string]any{
		"bookingId":   booking.ID,
		"amount":      3000,
		"phoneNumber": "+254712345678",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("initiate payment: expected 200, got %d", resp.StatusCode)
	}
	var payment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(envelope.Data, &payment); err != nil {
		t.Fatalf("decode payment: %v", err)
	}
	if payment.Status != "pending" {
		t.Errorf("expected pending payment, got %s", payment.Status)
	}

	time.Sleep(100 * time.Millisecond)

	resp, envelope = doJSON(t, http.MethodGet, server.URL+"/api/payments/"+payment.ID+"/status", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("payment status: expected 200, got %d", resp.StatusCode)
	}
	if err := json.Unmarshal(envelope.Data, &payment); err != nil {
		t.Fatalf("decode settled payment: %v", err)
	}
	if payment.Status != "completed" {
		t.Errorf("expected completed payment, got %s", payment.Status)
	}

	// The booking detail reflects the settlement.
	resp, envelope = doJSON(t, http.MethodGet, server.URL+"/api/bookings/"+booking.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get booking: expected 200, got %d", resp.StatusCode)
	}
	var detail struct {
		Status   string          `json:"status"`
		Customer json.RawMessage `json:"customer"`
		Trip     json.RawMessage `json:"trip"`
	}
	if err := json.Unmarshal(envelope.Data, &detail); err != nil {
		t.Fatalf("decode booking detail: %v", err)
	}
	if detail.Status != "confirmed" {
		t.Errorf("expected confirmed booking, got %s", detail.Status)
	}
	if len(detail.Customer) == 0 || len(detail.Trip) == 0 {
		t.Error("expected joined customer and trip in detail")
	}
}

func TestNotificationEndpoints(t *testing.T) {
	server := newTestServer(t)

	resp, envelope := doJSON(t, http.MethodPost, server.URL+"/api/notifications/sms", map[string]string{
		"phoneNumber": "+254712345678",
		"message":     "Your booking is confirmed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send sms: expected 200, got %d", resp.StatusCode)
	}
	if envelope.Message != "SMS sent successfully" {
		t.Errorf("unexpected message %q", envelope.Message)
	}

	resp, envelope = doJSON(t, http.MethodPost, server.URL+"/api/notifications/email", map[string]string{
		"email":   "amina@example.com",
		"subject": "Booking confirmed",
		"content": "See you on board",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send email: expected 200, got %d", resp.StatusCode)
	}
	if envelope.Message != "Email sent successfully" {
		t.Errorf("unexpected message %q", envelope.Message)
	}
}
