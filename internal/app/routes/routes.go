package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/controllers"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	gradeController *controllers.GradeController,
	groupController *controllers.GroupController,
	meController *controllers.MeController,
	studentController *controllers.StudentController,
	paymentMethodController *controllers.PaymentMethodController,
	studentPaymentMethodController *controllers.StudentPaymentMethodController,
	typeScholarshipController *controllers.TypeScholarshipController,
	evaluationController *controllers.EvaluationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// The only route outside the auth gate
	api.POST("/login", authController.Login)

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		groups := authenticated.Group("/groups")
		{
			groups.GET("", groupController.Index)
			groups.POST("", groupController.Create)
			groups.PATCH("/:id", groupController.Update)
			groups.GET("/:id/students", groupController.Students)
			groups.GET("/:id/teachers", groupController.Teachers)
		}

		grades := authenticated.Group("/grades")
		{
			grades.GET("", gradeController.Index)
			grades.POST("", gradeController.Create)
		}

		me := authenticated.Group("/me")
		{
			me.GET("", meController.Show)
			me.PATCH("", meController.Update)
			me.PATCH("/password", meController.UpdatePassword)
			me.POST("/documents", meController.CreateDocument)
			me.POST("/complementary_informations", meController.CreateComplementaryInformation)
			me.POST("/absences", meController.CreateAbsence)
			me.GET("/groups", meController.Groups)
			me.GET("/groups/:group_id/students", meController.GroupStudents)
			me.GET("/teachers", meController.Teachers)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", studentController.Create)
			students.GET("/:id", studentController.Show)
			students.POST("/:id/intermediate_evaluations", evaluationController.CreateIntermediate)
			students.POST("/:id/final_evaluations", evaluationController.CreateFinal)
		}

		paymentMethods := authenticated.Group("/payment_methods")
		{
			paymentMethods.GET("", paymentMethodController.Index)
			paymentMethods.POST("", paymentMethodController.Create)
		}

		studentPaymentMethods := authenticated.Group("/student_payment_methods")
		{
			studentPaymentMethods.POST("", studentPaymentMethodController.Create)
			studentPaymentMethods.PATCH("/:id", studentPaymentMethodController.Update)
		}

		typeScholarships := authenticated.Group("/type_scholarships")
		{
			typeScholarships.GET("", typeScholarshipController.Index)
			typeScholarships.POST("", typeScholarshipController.Create)
			typeScholarships.PATCH("/:id", typeScholarshipController.Update)
		}
	}
}
