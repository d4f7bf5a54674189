package inbound

import (
	"net/http"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/pkg/timefmt"
	"github.com/shandysiswandi/smartlocker/internal/pkg/valueobject"
)

type RegisterRequest struct {
	LockerID string `json:"locker_id"`
}

type RegisterResponse struct {
	LockerID string `json:"locker_id" example:"L-001"`
	Status   string `json:"status" example:"closed"`
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type LockerResponse struct {
	LockerID        string  `json:"locker_id" example:"L-001"`
	Status          string  `json:"status" example:"closed"`
	CurrentPassword *string `json:"current_password" example:"0427"`
	LastActivity    string  `json:"last_activity" example:"2026-05-04T12:00:00.000000Z"`
	ExpiresAt       *string `json:"expires_at" example:"2026-05-04T12:15:00.000000Z"`
}

type StatusResponse struct {
	LockerID        string  `json:"locker_id" example:"L-001"`
	Status          string  `json:"status" example:"open"`
	CurrentPassword *string `json:"current_password" example:"0427"`
	LastActivity    string  `json:"last_activity" example:"2026-05-04T12:00:00.000000Z"`
}

type SetStatusRequest struct {
	Status    string  `json:"status" example:"open"`
	Timestamp *string `json:"timestamp,omitempty" example:"2026-05-04T12:00:00Z"`
}

type OtpResponse struct {
	LockerID  string  `json:"locker_id" example:"L-001"`
	OTP       *string `json:"otp" example:"0427"`
	ExpiresAt *string `json:"expires_at" example:"2026-05-04T12:15:00.000000Z"`
}

type IssueOtpResponse struct {
	LockerID  string `json:"locker_id" example:"L-001"`
	OTP       string `json:"otp" example:"0427"`
	ExpiresAt string `json:"expires_at" example:"2026-05-04T12:15:00.000000Z"`
}

func (IssueOtpResponse) StatusCode() int {
	return http.StatusCreated
}

type VerifyOtpRequest struct {
	OTP string `json:"otp" example:"0427"`
}

type VerifyOtpResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"OTP verified, unlock allowed"`
}

type RecordActivityRequest struct {
	Type      string              `json:"type" example:"opened"`
	Timestamp *string             `json:"timestamp,omitempty" example:"2026-05-04T12:00:00Z"`
	Detail    valueobject.JSONMap `json:"detail,omitempty"`
}

type ActivityResponse struct {
	ID        int64               `json:"id" example:"42"`
	LockerID  string              `json:"locker_id" example:"L-001"`
	Type      string              `json:"type" example:"otp_used"`
	Timestamp string              `json:"timestamp" example:"2026-05-04T12:00:00.000000Z"`
	Detail    valueobject.JSONMap `json:"detail"`
}

func toLockerResponse(l entity.Locker, _ int) LockerResponse {
	return LockerResponse{
		LockerID:        l.ID,
		Status:          l.Status.String(),
		CurrentPassword: l.OTP,
		LastActivity:    timefmt.Format(l.LastActivity),
		ExpiresAt:       timefmt.FormatPtr(l.OTPExpires),
	}
}

func toActivityResponse(a entity.Activity, _ int) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		LockerID:  a.LockerID,
		Type:      a.Type.String(),
		Timestamp: timefmt.Format(a.OccurredAt),
		Detail:    a.Detail.OrEmpty(),
	}
}
