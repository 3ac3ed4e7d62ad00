package server

import (
	"JobLink-backend/internal/auth"
	"JobLink-backend/internal/controller/analytics"
	"JobLink-backend/internal/controller/application"
	"JobLink-backend/internal/controller/job"
	"JobLink-backend/internal/controller/savedjob"
	"JobLink-backend/internal/controller/user"
	"JobLink-backend/internal/middleware"
	"JobLink-backend/internal/model"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "JobLink-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	googleOauth := &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_AUTH_CLIENT"),
		ClientSecret: os.Getenv("GOOGLE_AUTH_SECRET"),
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			"https://www.googleapis.com/auth/userinfo.openid",
		},
		Endpoint:    google.Endpoint,
		RedirectURL: os.Getenv("OAUTH_REDIRECT_URL"),
	}

	gAuth := auth.NewOauthLoginHandler(s.DB, googleOauth, "https://www.googleapis.com/oauth2/v3/userinfo")
	lAuth := auth.NewLocalAuthHandler(s.DB)
	userCtrl := user.NewUserController(s.DB)
	jobCtrl := job.NewJobController(s.DB)
	appCtrl := application.NewApplicationController(s.DB)
	savedCtrl := savedjob.NewSavedJobController(s.DB)
	analyticsCtrl := analytics.NewAnalyticsController(s.DB)

	r.Use(middleware.SafeHeader())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.Use(middleware.EnvRateLimitMiddleware())
			authRoute.POST("google/jobseeker", gAuth.JobseekerGoogleLoginHandler)
			authRoute.POST("google/employer", gAuth.EmployerGoogleLoginHandler)

			authRoute.POST("login", lAuth.LocalLoginHandler)
			authRoute.POST("register", lAuth.LocalRegisterHandler)
		}

		// Public job browsing
		v1.GET("/jobs", jobCtrl.GetJobsHandler)
		v1.GET("/jobs/:id", jobCtrl.GetJobByIDHandler)
		v1.GET("/users/:id", userCtrl.GetPublicProfileHandler)

		// Any routes below require a valid access token
		needAuth := v1.Group("")
		{
			needAuth.Use(middleware.RequireAuth(s.DB))

			needAuth.PATCH("users/profile", userCtrl.EditProfileHandler)

			// Employer endpoints
			needEmployer := needAuth.Group("")
			{
				needEmployer.Use(middleware.CheckRole(model.RoleEmployer))
				needEmployer.POST("jobs", jobCtrl.CreateJobHandler)
				needEmployer.PATCH("jobs/:id", jobCtrl.EditJobHandler)
				needEmployer.PUT("jobs/:id/close", jobCtrl.CloseJobHandler)

				needEmployer.GET("analytics/overview", analyticsCtrl.OverviewHandler)
				needEmployer.GET("applications/job/:jobId", appCtrl.ApplicantsForJobHandler)
				needEmployer.PUT("applications/:id/status", appCtrl.UpdateStatusHandler)
			}

			// Jobseeker endpoints
			needJobseeker := needAuth.Group("")
			{
				needJobseeker.Use(middleware.CheckRole(model.RoleJobseeker))
				needJobseeker.POST("applications/:jobId", appCtrl.ApplyHandler)
				needJobseeker.GET("applications/mine", appCtrl.MyApplicationsHandler)

				needJobseeker.POST("saved-jobs/:jobId", savedCtrl.SaveHandler)
				needJobseeker.DELETE("saved-jobs/:jobId", savedCtrl.UnsaveHandler)
				needJobseeker.GET("saved-jobs/mine", savedCtrl.MySavedJobsHandler)
			}

			// Readable by applicant or owning employer, checked in the handler
			needAuth.GET("applications/:id", appCtrl.GetApplicationByIDHandler)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
