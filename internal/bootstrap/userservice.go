package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	userdocs "github.com/cdjacome2/microcampus/docs/userservice"
	appControllers "github.com/cdjacome2/microcampus/internal/app/controllers"
	appRepos "github.com/cdjacome2/microcampus/internal/app/repositories"
	appRoutes "github.com/cdjacome2/microcampus/internal/app/routes"
	appServices "github.com/cdjacome2/microcampus/internal/app/services"
	"github.com/cdjacome2/microcampus/internal/config"
	appMiddleware "github.com/cdjacome2/microcampus/internal/middleware"
)

// UserDependencies holds the user service dependency graph
type UserDependencies struct {
	UserService    *appServices.UserService
	UserController *appControllers.UserController
	Logger         zerolog.Logger
}

// BuildUserDependencies initializes the user service repositories, services
// and controllers.
func BuildUserDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *UserDependencies {
	deps := &UserDependencies{Logger: lgr}

	userRepo := appRepos.NewUserRepository(dbPool)
	deps.UserService = appServices.NewUserService(userRepo)
	deps.UserController = appControllers.NewUserController(deps.UserService)

	return deps
}

// SetupUserRouter configures the Gin engine for the user service.
func SetupUserRouter(cfg *config.Config, deps *UserDependencies, lgr zerolog.Logger) *gin.Engine {
	applyGinMode(cfg, lgr)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Both services' docs packages link into one binary, so each registers
	// under its own instance name and the router mounts only its own.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"),
		ginSwagger.InstanceName(userdocs.SwaggerInfo.InstanceName())))

	appRoutes.SetupUserRoutes(router, deps.UserController)

	return router
}

func applyGinMode(cfg *config.Config, lgr zerolog.Logger) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}
}
