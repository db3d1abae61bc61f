// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"edusync/internal/delivery/api/middleware"
	"edusync/internal/delivery/api/router/handler"
	"edusync/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	CourseHandler     *handler.CourseHandler
	AssessmentHandler *handler.AssessmentHandler
	ResultHandler     *handler.ResultHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	courseHandler     *handler.CourseHandler
	assessmentHandler *handler.AssessmentHandler
	resultHandler     *handler.ResultHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		courseHandler:     params.CourseHandler,
		assessmentHandler: params.AssessmentHandler,
		resultHandler:     params.ResultHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Everything below requires a bearer token
	authenticate := r.authMiddleware.Authenticate
	instructorOnly := r.authMiddleware.RequireRole(entity.RoleInstructor)

	coursesGroup := api.Group("/courses", authenticate)
	{
		coursesGroup.GET("", r.courseHandler.ListCourses)
		coursesGroup.GET("/instructor/:instructorId", r.courseHandler.ListByInstructor)
		coursesGroup.GET("/:id", r.courseHandler.GetCourse)
		coursesGroup.GET("/:id/qr", r.courseHandler.CourseQRCode)
		coursesGroup.POST("", r.courseHandler.CreateCourse, instructorOnly)
		coursesGroup.PUT("/:id", r.courseHandler.UpdateCourse, instructorOnly)
		coursesGroup.DELETE("/:id", r.courseHandler.DeleteCourse, instructorOnly)
	}

	assessmentsGroup := api.Group("/assessments", authenticate)
	{
		assessmentsGroup.GET("", r.assessmentHandler.ListAssessments)
		assessmentsGroup.GET("/course/:courseId", r.assessmentHandler.ListByCourse)
		assessmentsGroup.GET("/:id", r.assessmentHandler.GetAssessment)
		assessmentsGroup.POST("", r.assessmentHandler.CreateAssessment, instructorOnly)
		assessmentsGroup.PUT("/:id", r.assessmentHandler.UpdateAssessment, instructorOnly)
		assessmentsGroup.DELETE("/:id", r.assessmentHandler.DeleteAssessment, instructorOnly)
	}

	resultsGroup := api.Group("/results", authenticate)
	{
		resultsGroup.GET("", r.resultHandler.ListResults)
		resultsGroup.GET("/user/:userId", r.resultHandler.ListByUser)
		resultsGroup.GET("/course/:courseId/instructor", r.resultHandler.ListForInstructorByCourse, instructorOnly)
		resultsGroup.GET("/:id", r.resultHandler.GetResult)
		resultsGroup.POST("", r.resultHandler.CreateResult)
		resultsGroup.PUT("/:id", r.resultHandler.UpdateResult)
		resultsGroup.DELETE("/:id", r.resultHandler.DeleteResult)
	}

	usersGroup := api.Group("/users", authenticate)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.POST("", r.userHandler.CreateUser, instructorOnly)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, instructorOnly)
	}
}
