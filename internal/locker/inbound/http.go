package inbound

import (
	"context"

	"github.com/shandysiswandi/smartlocker/internal/locker/entity"
	"github.com/shandysiswandi/smartlocker/internal/locker/usecase"
	"github.com/shandysiswandi/smartlocker/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.Locker, error)
	Get(ctx context.Context, in usecase.GetInput) (*entity.Locker, error)
	List(ctx context.Context) ([]entity.Locker, error)

	SetStatus(ctx context.Context, in usecase.SetStatusInput) error

	GetOtp(ctx context.Context, in usecase.GetInput) (*usecase.GetOtpOutput, error)
	IssueOtp(ctx context.Context, in usecase.IssueOtpInput) (*usecase.IssueOtpOutput, error)
	VerifyOtp(ctx context.Context, in usecase.VerifyOtpInput) (*entity.VerifyResult, error)

	RecordActivity(ctx context.Context, in usecase.RecordActivityInput) error
	ListActivities(ctx context.Context, in usecase.ListActivitiesInput) ([]entity.Activity, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registry
	r.POST("/api/lockers", end.Register)
	r.GET("/api/lockers", end.List)
	r.GET("/api/lockers/:id/status", end.GetStatus)
	r.POST("/api/lockers/:id/status", end.SetStatus)

	// OTP
	r.GET("/api/lockers/:id/otp", end.GetOtp)
	r.POST("/api/lockers/:id/otp", end.IssueOtp)
	r.POST("/api/lockers/:id/verify-otp", end.VerifyOtp)

	// Audit trail
	r.POST("/api/lockers/:id/activity", end.RecordActivity)
	r.GET("/api/lockers/:id/activity", end.ListActivities)
}
