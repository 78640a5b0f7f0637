package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	coursedocs "github.com/cdjacome2/microcampus/docs/courseservice"
	appControllers "github.com/cdjacome2/microcampus/internal/app/controllers"
	appRepos "github.com/cdjacome2/microcampus/internal/app/repositories"
	appRoutes "github.com/cdjacome2/microcampus/internal/app/routes"
	appServices "github.com/cdjacome2/microcampus/internal/app/services"
	"github.com/cdjacome2/microcampus/internal/config"
	appMiddleware "github.com/cdjacome2/microcampus/internal/middleware"
	"github.com/cdjacome2/microcampus/internal/pkg/userclient"
)

// CourseDependencies holds the course service dependency graph
type CourseDependencies struct {
	CourseService     *appServices.CourseService
	EnrollmentService *appServices.EnrollmentService
	CourseController  *appControllers.CourseController
	UserClient        *userclient.Client
	Logger            zerolog.Logger
}

// BuildCourseDependencies initializes the course service repositories,
// services, controllers and the user service client.
func BuildCourseDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *CourseDependencies {
	deps := &CourseDependencies{Logger: lgr}

	courseRepo := appRepos.NewCourseRepository(dbPool)
	deps.UserClient = userclient.NewClient(cfg.UsersService.BaseURL, cfg.GetUsersServiceTimeout())

	deps.CourseService = appServices.NewCourseService(courseRepo)
	deps.EnrollmentService = appServices.NewEnrollmentService(courseRepo, deps.UserClient, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.EnrollmentService)

	return deps
}

// SetupCourseRouter configures the Gin engine for the course service.
func SetupCourseRouter(cfg *config.Config, deps *CourseDependencies, lgr zerolog.Logger) *gin.Engine {
	applyGinMode(cfg, lgr)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.InstanceName(coursedocs.SwaggerInfo.InstanceName())))

	appRoutes.SetupCourseRoutes(router, deps.CourseController)

	return router
}
