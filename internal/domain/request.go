// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"strings"
)

// RequestDateLayout formats request dates as "Dec 10, 2024".
const RequestDateLayout = "Jan 2, 2006"

// RequestStatus is the approval state of an access request.
type RequestStatus string

// Request statuses.
const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// ParseRequestStatus resolves a status name case-insensitively.
func ParseRequestStatus(name string) (RequestStatus, error) {
	status := RequestStatus(strings.ToLower(strings.TrimSpace(name)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}

	return status, nil
}

// PendingRequest records a simulated access request.
//
// AppName and AppIcon are copied when the request is created, so later
// catalog changes never rewrite history.
type PendingRequest struct {
	ID          string        `json:"id"          toml:"id"`
	AppName     string        `json:"appName"     toml:"app_name"`
	AppIcon     string        `json:"appIcon"     toml:"app_icon"`
	RequestDate string        `json:"requestDate" toml:"request_date"`
	Status      RequestStatus `json:"status"      toml:"status"`
}
