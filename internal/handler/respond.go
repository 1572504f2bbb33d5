package handler

import (
	"encoding/json"
	"net/http"
)

const (
	codeUnauthorized     = "UNAUTHORIZED"
	codeInvalidOrder     = "INVALID_ORDER"
	codeOrderNotFound    = "ORDER_NOT_FOUND"
	codeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	codeMissingFields    = "MISSING_REQUIRED_FIELDS"
	codeInvalidBody      = "INVALID_REQUEST_BODY"
	codeReportNotFound   = "REPORT_NOT_FOUND"
	codeInternalError    = "INTERNAL_ERROR"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, code, msg string) {
	respondJSON(w, status, errorResponse{Error: msg, Code: code})
}
