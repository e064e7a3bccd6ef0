package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the API envelope. The front-end keys off `success`; the
// optional siblings exist because a few endpoints carry extra top-level
// fields next to `data` (trip search echoes its params, seat reservation
// returns the hold expiry, booking creation includes the customer).
type Response struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	Data          any    `json:"data,omitempty"`
	Errors        any    `json:"errors,omitempty"`
	Customer      any    `json:"customer,omitempty"`
	SearchParams  any    `json:"searchParams,omitempty"`
	ReservedUntil string `json:"reservedUntil,omitempty"`
}

// ResponseJSON writes a JSON response with custom status code
func ResponseJSON(w http.ResponseWriter, code int, response Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errors})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
