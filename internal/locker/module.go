package locker

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/smartlocker/internal/locker/inbound"
	"github.com/shandysiswandi/smartlocker/internal/locker/outbound/db"
	"github.com/shandysiswandi/smartlocker/internal/locker/usecase"
	"github.com/shandysiswandi/smartlocker/internal/pkg/clock"
	"github.com/shandysiswandi/smartlocker/internal/pkg/config"
	"github.com/shandysiswandi/smartlocker/internal/pkg/idempotency"
	"github.com/shandysiswandi/smartlocker/internal/pkg/instrument"
	"github.com/shandysiswandi/smartlocker/internal/pkg/otp"
	"github.com/shandysiswandi/smartlocker/internal/pkg/router"
	"github.com/shandysiswandi/smartlocker/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	OTP         otp.Generator              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      repoDB,
		Idempotency: dep.Idempotency,
		Validator:   dep.Validator,
		Config:      dep.Config,
		OTP:         dep.OTP,
		Clock:       dep.Clock,
		Instrument:  dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
