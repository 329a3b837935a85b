package handlers

import (
	"net/http"
	"strconv"

	apperrors "pokemon-teams-backend/internal/errors"
	"pokemon-teams-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /api/teams
// @Summary Create a new team
// @Description Resolve every pokemon name (local store first, PokeAPI on a miss) and store the team. Fails as a whole if any name does not resolve.
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Owner and pokemon names"
// @Success 201 {object} service.CreateTeamResponse "Team created"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "One or more pokemons not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, apperrors.MsgInvalidRequestBody)
		return
	}

	resp, err := h.teamService.CreateTeam(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetAllTeams handles GET /api/teams
// @Summary List all teams
// @Description Get every team keyed by team id
// @Tags teams
// @Produce json
// @Success 200 {object} service.GetAllTeamsResponse "Teams keyed by id"
// @Failure 404 {object} ErrorResponse "No teams have been created yet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.teamService.GetAllTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamsByUser handles GET /api/teams/:user
// @Summary List teams of a user
// @Description Get the teams whose owner matches the path value exactly
// @Tags teams
// @Produce json
// @Param user path string true "Owner name"
// @Success 200 {array} service.TeamResponse "Teams of the user"
// @Failure 404 {object} ErrorResponse "User has no team"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{user} [get]
func (h *TeamHandler) GetTeamsByUser(c *gin.Context) {
	teams, err := h.teamService.GetTeamsByUser(c.Request.Context(), c.Param("user"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeamByID handles GET /api/teams/id/:id
// @Summary Get team by ID
// @Description Get a specific team by its numeric id
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/id/{id} [get]
func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return
	}

	team, err := h.teamService.GetTeamByID(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}
