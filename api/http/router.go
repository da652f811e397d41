package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atslens/ats-engine/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The shortlist and bulk
// analysis surface sits behind the recruiter JWT middleware.
func Register(
	app *fiber.App,
	analyze *handlers.AnalyzeHandler,
	bulk *handlers.BulkHandler,
	export *handlers.ExportHandler,
	shortlist *handlers.ShortlistHandler,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Candidate-facing analysis surface
	v1.Post("/analyze", analyze.Analyze)
	v1.Post("/download-report", export.DownloadReport)
	v1.Post("/download-resume", export.DownloadResume)

	// Recruiter surface
	v1.Post("/bulk-analyze", authMW, bulk.BulkAnalyze)

	sl := v1.Group("/shortlist", authMW)
	sl.Get("/", shortlist.List)
	sl.Get("/statistics", shortlist.Statistics)
	sl.Get("/check/:email", shortlist.Check)
	sl.Post("/add", shortlist.Add)
	sl.Post("/remove", shortlist.Remove)
	sl.Post("/status", shortlist.UpdateStatus)
	sl.Post("/note", shortlist.AddNote)
}
