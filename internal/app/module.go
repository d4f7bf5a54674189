package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/smartlocker/internal/locker"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.locker.enabled") {
		if err := locker.New(locker.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			Clock:       a.clock,
			OTP:         a.otp,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module locker", "error", err)
			os.Exit(1)
		}
	}
}
