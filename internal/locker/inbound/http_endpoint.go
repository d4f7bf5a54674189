package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/locker/usecase"
	"github.com/shandysiswandi/smartlocker/internal/pkg/router"
	"github.com/shandysiswandi/smartlocker/internal/pkg/timefmt"
)

// HTTPEndpoint exposes the locker registry, OTP and audit handlers.
type HTTPEndpoint struct {
	uc uc
}

// Register adds a new locker.
// @Summary Register locker
// @Description Creates a closed locker with no code. The id must be unique.
// @Tags Locker
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Register payload"
// @Success 201 {object} RegisterResponse "Registered locker"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Locker already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	l, err := h.uc.Register(r.Context(), usecase.RegisterInput{LockerID: req.LockerID})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{LockerID: l.ID, Status: l.Status.String()}, nil
}

// List returns every locker.
// @Summary List lockers
// @Tags Locker
// @Produce json
// @Success 200 {array} LockerResponse "Lockers ordered by id"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	lockers, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(lockers, toLockerResponse), nil
}

// GetStatus returns the current state of one locker.
// @Summary Get locker status
// @Tags Locker
// @Produce json
// @Param id path string true "Locker ID"
// @Success 200 {object} StatusResponse "Locker status"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/status [get]
func (h *HTTPEndpoint) GetStatus(r *router.Request) (any, error) {
	l, err := h.uc.Get(r.Context(), usecase.GetInput{LockerID: r.GetParam("id")})
	if err != nil {
		return nil, err
	}

	return StatusResponse{
		LockerID:        l.ID,
		Status:          l.Status.String(),
		CurrentPassword: l.OTP,
		LastActivity:    timefmt.Format(l.LastActivity),
	}, nil
}

// SetStatus records the status reported by the locker.
// @Summary Set locker status
// @Tags Locker
// @Accept json
// @Param id path string true "Locker ID"
// @Param Idempotency-Key header string false "Key that makes client retries apply once"
// @Param request body SetStatusRequest true "Status payload"
// @Success 204 "Status updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 409 {object} router.errorResponse "Request with the same Idempotency-Key in progress"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/status [post]
func (h *HTTPEndpoint) SetStatus(r *router.Request) (any, error) {
	var req SetStatusRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.SetStatus(r.Context(), usecase.SetStatusInput{
		LockerID:       r.GetParam("id"),
		Status:         entity.LockerStatus(req.Status),
		Timestamp:      req.Timestamp,
		IdempotencyKey: r.GetHeader(router.HeaderIdempotencyKey),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// GetOtp returns the current code of a locker.
// @Summary Get current OTP
// @Tags OTP
// @Produce json
// @Param id path string true "Locker ID"
// @Success 200 {object} OtpResponse "Current code, null when none was issued"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/otp [get]
func (h *HTTPEndpoint) GetOtp(r *router.Request) (any, error) {
	out, err := h.uc.GetOtp(r.Context(), usecase.GetInput{LockerID: r.GetParam("id")})
	if err != nil {
		return nil, err
	}

	return OtpResponse{
		LockerID:  out.LockerID,
		OTP:       out.OTP,
		ExpiresAt: timefmt.FormatPtr(out.ExpiresAt),
	}, nil
}

// IssueOtp generates a new code, superseding the previous one. Any request
// body is ignored.
// @Summary Issue OTP
// @Tags OTP
// @Produce json
// @Param id path string true "Locker ID"
// @Success 201 {object} IssueOtpResponse "Issued code"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/otp [post]
func (h *HTTPEndpoint) IssueOtp(r *router.Request) (any, error) {
	out, err := h.uc.IssueOtp(r.Context(), usecase.IssueOtpInput{LockerID: r.GetParam("id")})
	if err != nil {
		return nil, err
	}

	return IssueOtpResponse{
		LockerID:  out.LockerID,
		OTP:       out.OTP,
		ExpiresAt: timefmt.Format(out.ExpiresAt),
	}, nil
}

// VerifyOtp checks a code entered at the locker. A wrong, expired or missing
// code is a 200 with status "fail".
// @Summary Verify OTP
// @Tags OTP
// @Accept json
// @Produce json
// @Param id path string true "Locker ID"
// @Param request body VerifyOtpRequest true "Entered code"
// @Success 200 {object} VerifyOtpResponse "Verification result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/verify-otp [post]
func (h *HTTPEndpoint) VerifyOtp(r *router.Request) (any, error) {
	var req VerifyOtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	res, err := h.uc.VerifyOtp(r.Context(), usecase.VerifyOtpInput{
		LockerID: r.GetParam("id"),
		OTP:      req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOtpResponse{Status: res.Status.String(), Message: res.Message}, nil
}

// RecordActivity appends a client-reported audit record.
// @Summary Record activity
// @Tags Activity
// @Accept json
// @Param id path string true "Locker ID"
// @Param Idempotency-Key header string false "Key that makes client retries apply once"
// @Param request body RecordActivityRequest true "Activity payload"
// @Success 204 "Activity recorded"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 409 {object} router.errorResponse "Request with the same Idempotency-Key in progress"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/activity [post]
func (h *HTTPEndpoint) RecordActivity(r *router.Request) (any, error) {
	var req RecordActivityRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.RecordActivity(r.Context(), usecase.RecordActivityInput{
		LockerID:       r.GetParam("id"),
		Type:           entity.ActivityType(req.Type),
		Timestamp:      req.Timestamp,
		Detail:         req.Detail,
		IdempotencyKey: r.GetHeader(router.HeaderIdempotencyKey),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

// ListActivities returns the audit trail of a locker, newest first.
// @Summary List activities
// @Tags Activity
// @Produce json
// @Param id path string true "Locker ID"
// @Param limit query int false "Maximum records (default 50, capped at 500)"
// @Success 200 {array} ActivityResponse "Audit records"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Failure 404 {object} router.errorResponse "Locker not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/lockers/{id}/activity [get]
func (h *HTTPEndpoint) ListActivities(r *router.Request) (any, error) {
	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}

	acts, err := h.uc.ListActivities(r.Context(), usecase.ListActivitiesInput{
		LockerID: r.GetParam("id"),
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(acts, toActivityResponse), nil
}
