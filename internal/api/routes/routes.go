package routes

import (
	"fmt"

	"pokemon-teams-backend/internal/api/handlers"
	"pokemon-teams-backend/internal/api/middleware"
	"pokemon-teams-backend/internal/config"
	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/metrics"
	"pokemon-teams-backend/internal/repository"
	"pokemon-teams-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRepositories returns the pokemon and team stores selected by cfg.StoreDriver.
// db is only used by the postgres driver.
func NewRepositories(db *gorm.DB, cfg *config.Config) (repository.PokemonRepositoryInterface, repository.TeamRepositoryInterface, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		if db == nil {
			return nil, nil, apperrors.NewConfigurationError("postgres store requires a database connection")
		}
		return repository.NewPokemonRepository(db), repository.NewTeamRepository(db), nil
	case config.StoreDriverMemory:
		store, err := repository.NewMemoryStore()
		if err != nil {
			return nil, nil, err
		}
		return store.Pokemons(), store.Teams(), nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStoreDriver, cfg.StoreDriver)
	}
}

// NewTeamService wires the team service with its store and the PokeAPI catalog
func NewTeamService(db *gorm.DB, cfg *config.Config) (*service.TeamService, error) {
	pokemonRepo, teamRepo, err := NewRepositories(db, cfg)
	if err != nil {
		return nil, err
	}

	catalog := service.NewPokeAPIClient(cfg.PokeAPIBaseURL, cfg.PokeAPITimeout())
	pokemonService := service.NewPokemonService(pokemonRepo, catalog, cfg.PokeAPITimeout(), cfg.ResolveConcurrency)

	return service.NewTeamService(teamRepo, pokemonService, service.NewValidator()), nil
}

// SetupRoutes configures all the routes for the application. db may be nil when
// cfg selects the memory store.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	teamService, err := NewTeamService(db, cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))
	router.Use(metrics.GinMiddleware)

	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/metrics", metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		teams := api.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.GetAllTeams)
			teams.GET("/id/:id", teamHandler.GetTeamByID)
			teams.GET("/:user", teamHandler.GetTeamsByUser)
		}
	}

	router.NoRoute(handlers.NoRoute)

	return router, nil
}
