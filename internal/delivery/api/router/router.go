// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"visitadoras/internal/delivery/api/middleware"
	"visitadoras/internal/delivery/api/router/handler"
	"visitadoras/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler              *handler.SessionHandler
	VisitadoraHandler           *handler.VisitadoraHandler
	VisitHandler                *handler.VisitHandler
	PhysicianHandler            *handler.PhysicianHandler
	CommissionHandler           *handler.CommissionHandler
	PaymentHandler              *handler.PaymentHandler
	ReferralHandler             *handler.ReferralHandler
	VisitadoraCommissionHandler *handler.VisitadoraCommissionHandler
	ImportHandler               *handler.ImportHandler
	ReportHandler               *handler.ReportHandler
	DeviceHandler               *handler.DeviceHandler
	AuthMiddleware              *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	session              *handler.SessionHandler
	visitadora           *handler.VisitadoraHandler
	visit                *handler.VisitHandler
	physician            *handler.PhysicianHandler
	commission           *handler.CommissionHandler
	payment              *handler.PaymentHandler
	referral             *handler.ReferralHandler
	visitadoraCommission *handler.VisitadoraCommissionHandler
	imports              *handler.ImportHandler
	report               *handler.ReportHandler
	device               *handler.DeviceHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		session:              params.SessionHandler,
		visitadora:           params.VisitadoraHandler,
		visit:                params.VisitHandler,
		physician:            params.PhysicianHandler,
		commission:           params.CommissionHandler,
		payment:              params.PaymentHandler,
		referral:             params.ReferralHandler,
		visitadoraCommission: params.VisitadoraCommissionHandler,
		imports:              params.ImportHandler,
		report:               params.ReportHandler,
		device:               params.DeviceHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.session.Login)
		authGroup.POST("/refresh", r.session.Refresh)
		authGroup.POST("/logout", r.session.Logout)
	}

	// Every API v1 route requires a valid access token
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	apiV1.GET("/session", r.session.Current)
	apiV1.POST("/session/logout-all", r.session.LogoutAll)

	apiV1.GET("/me/stats", r.visitadora.MyStats, r.authMiddleware.RequireRole(entity.RoleVisitadora))

	visitsGroup := apiV1.Group("/visits")
	{
		visitsGroup.GET("", r.visit.List)
		visitsGroup.POST("", r.visit.Record)
		visitsGroup.GET("/:id", r.visit.Get)
	}

	physiciansGroup := apiV1.Group("/physicians")
	{
		physiciansGroup.GET("", r.physician.List)
		physiciansGroup.POST("", r.physician.Create)
		physiciansGroup.GET("/search", r.physician.Search)
		physiciansGroup.GET("/nearby", r.physician.Nearby)
		physiciansGroup.GET("/export", r.physician.Export)
		physiciansGroup.GET("/:id", r.physician.Get)
		physiciansGroup.PUT("/:id", r.physician.Update)
		physiciansGroup.DELETE("/:id", r.physician.Delete)
		physiciansGroup.GET("/:id/commission-config", r.commission.GetConfig)
		physiciansGroup.PUT("/:id/commission-config", r.commission.SaveConfig)
	}

	commissionsGroup := apiV1.Group("/commissions")
	{
		commissionsGroup.POST("/direct", r.commission.AddDirect)
		commissionsGroup.GET("/summary", r.commission.Summary)
		commissionsGroup.GET("/monthly", r.commission.ListMonthly)
		commissionsGroup.GET("/monthly/:id", r.commission.GetMonthly)
		commissionsGroup.DELETE("/monthly/:id", r.commission.DeleteMonthly)
		commissionsGroup.POST("/monthly/:id/pay", r.payment.PayMonthly)
	}

	apiV1.GET("/payments", r.payment.ListPayments)

	referralsGroup := apiV1.Group("/referrals")
	{
		referralsGroup.GET("", r.referral.List)
		referralsGroup.POST("", r.referral.Create)
		referralsGroup.GET("/assigned", r.referral.ListAssigned)
		referralsGroup.GET("/pool", r.referral.ListPool)
		referralsGroup.GET("/history", r.referral.ListHistory)
		referralsGroup.POST("/:id/pay", r.referral.MarkPaid, r.authMiddleware.RequireRole(entity.RoleVisitadora))
	}

	apiV1.GET("/reports/full", r.report.FullReport)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.device.RegisterDevice)
		devicesGroup.GET("", r.device.GetDevices)
		devicesGroup.PUT("/:id/token", r.device.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.device.DeactivateDevice)
	}

	r.registerAdminRoutes(apiV1)
}

func (r *router) registerAdminRoutes(apiV1 *echo.Group) {
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))

	adminGroup.GET("/dashboard", r.visitadora.Dashboard)

	visitadorasGroup := adminGroup.Group("/visitadoras")
	{
		visitadorasGroup.GET("", r.visitadora.List)
		visitadorasGroup.POST("", r.visitadora.Create)
		visitadorasGroup.GET("/:id", r.visitadora.Get)
		visitadorasGroup.PUT("/:id", r.visitadora.Update)
		visitadorasGroup.DELETE("/:id", r.visitadora.Deactivate)
	}

	adminGroup.DELETE("/commissions/monthly/pending", r.commission.DeleteAllPending)
	adminGroup.DELETE("/commissions/monthly/all", r.commission.DeleteAll)

	adminGroup.PUT("/referrals/:id/assign", r.referral.Assign)
	adminGroup.DELETE("/referrals/:id", r.referral.Delete)

	visitadoraCommissionsGroup := adminGroup.Group("/visitadora-commissions")
	{
		visitadoraCommissionsGroup.GET("", r.visitadoraCommission.List)
		visitadoraCommissionsGroup.POST("", r.visitadoraCommission.Register)
		visitadoraCommissionsGroup.POST("/:id/pay", r.visitadoraCommission.MarkPaid)
	}

	importsGroup := adminGroup.Group("/imports")
	{
		importsGroup.POST("", r.imports.Import)
		importsGroup.POST("/preview", r.imports.Preview)
		importsGroup.GET("/template", r.imports.Template)
	}

	adminGroup.GET("/reports/commissions", r.report.CommissionReport)
}
