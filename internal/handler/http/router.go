package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/sawithr/sawit-hr-backend-go/internal/domain/user"
	"github.com/sawithr/sawit-hr-backend-go/internal/handler/http/middleware"
	"github.com/sawithr/sawit-hr-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	holidayHandler HolidayHandler,
	leaveHandler LeaveHandler,
	transferHandler TransferHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sawit-hr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.ModuleEmployee, user.ActionView)).Get("/", employeeHandler.List)
				r.With(middleware.RequirePermission(user.ModuleEmployee, user.ActionCreate)).Post("/", employeeHandler.Create)
				r.With(middleware.RequirePermission(user.ModuleEmployee, user.ActionView)).Get("/{id}", employeeHandler.Get)

				r.With(middleware.RequirePermission(user.ModuleAttendance, user.ActionView)).
					Get("/{id}/attendance", attendanceHandler.ListByEmployee)

				// Probation and termination are single-step workflow actions.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.ModuleEmployee, user.ActionEdit))
					r.Post("/{id}/probation/start", employeeHandler.StartProbation)
					r.Post("/{id}/probation/pass", employeeHandler.PassProbation)
					r.Post("/{id}/probation/extend", employeeHandler.ExtendProbation)
					r.Post("/{id}/probation/fail", employeeHandler.FailProbation)
					r.Post("/{id}/termination/start", employeeHandler.StartTermination)
					r.Post("/{id}/termination/approve", employeeHandler.ApproveTermination)
					r.Post("/{id}/termination/reject", employeeHandler.RejectTermination)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.ModuleHoliday, user.ActionView)).Get("/", holidayHandler.List)
				r.With(middleware.RequirePermission(user.ModuleHoliday, user.ActionCreate)).Post("/", holidayHandler.Create)
				r.With(middleware.RequirePermission(user.ModuleHoliday, user.ActionView)).Get("/{id}", holidayHandler.Get)
				r.With(middleware.RequirePermission(user.ModuleHoliday, user.ActionDelete)).Delete("/{id}", holidayHandler.Delete)
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.ModuleLeave, user.ActionView)).Get("/", leaveHandler.List)
				r.With(middleware.RequirePermission(user.ModuleLeave, user.ActionCreate)).Post("/", leaveHandler.Submit)
				r.With(middleware.RequirePermission(user.ModuleLeave, user.ActionView)).Get("/{id}", leaveHandler.Get)
				r.With(middleware.RequirePermission(user.ModuleLeave, user.ActionEdit)).Post("/{id}/approve", leaveHandler.Approve)
				r.With(middleware.RequirePermission(user.ModuleLeave, user.ActionEdit)).Post("/{id}/reject", leaveHandler.Reject)
			})

			r.Route("/transfers", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionView)).Get("/", transferHandler.List)
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionCreate)).Post("/", transferHandler.Submit)
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionView)).Get("/{id}", transferHandler.Get)
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionEdit)).Post("/{id}/approve", transferHandler.Approve)
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionEdit)).Post("/{id}/reject", transferHandler.Reject)
				r.With(middleware.RequirePermission(user.ModuleTransfer, user.ActionEdit)).Post("/{id}/complete", transferHandler.Complete)
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/divisions", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionView)).Get("/", masterHandler.ListDivisions)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionCreate)).Post("/", masterHandler.CreateDivision)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionEdit)).Put("/{id}", masterHandler.UpdateDivision)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionDelete)).Delete("/{id}", masterHandler.DeleteDivision)
				})
				r.Route("/positions", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionView)).Get("/", masterHandler.ListPositions)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionCreate)).Post("/", masterHandler.CreatePosition)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionEdit)).Put("/{id}", masterHandler.UpdatePosition)
					r.With(middleware.RequirePermission(user.ModuleMaster, user.ActionDelete)).Delete("/{id}", masterHandler.DeletePosition)
				})
			})
		})
	})
	return r
}
