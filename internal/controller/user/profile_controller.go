package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/internal/controller"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
)

type ProfileController struct {
	profileService     service.ProfileService
	leaderboardService service.LeaderboardService
}

func NewProfileController(profileService service.ProfileService, leaderboardService service.LeaderboardService) *ProfileController {
	return &ProfileController{profileService: profileService, leaderboardService: leaderboardService}
}

// GetProfile godoc
// @Summary (User) Get your farmer profile
// @Tags User - Profile
// @Produce json
// @Param user_id query string false "User ID when auth is disabled"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "userId is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID, ok := controller.ResolveUserID(ctx, "")
	if !ok {
		return
	}
	profile, err := c.profileService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetProfile: Service error")
		controller.RespondError(ctx, err, "Failed to retrieve profile")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// CompleteOnboarding godoc
// @Summary (User) Save onboarding answers
// @Description Stores the experience level and interests. Creates the profile if it does not exist yet.
// @Tags User - Profile
// @Accept json
// @Produce json
// @Param onboarding body dto.OnboardingRequest true "Experience level and interests"
// @Param user_id query string false "User ID when auth is disabled"
// @Success 200 {object} dto.ProfileResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/onboarding [put]
func (c *ProfileController) CompleteOnboarding(ctx *gin.Context) {
	var req dto.OnboardingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	userID, ok := controller.ResolveUserID(ctx, "")
	if !ok {
		return
	}
	profile, err := c.profileService.CompleteOnboarding(ctx.Request.Context(), userID, req)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("CompleteOnboarding: Service error")
		controller.RespondError(ctx, err, "Failed to save onboarding")
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// GetDashboard godoc
// @Summary (User) Dashboard summary
// @Description Profile, level progress, badge count, accuracy and the most recent attempts.
// @Tags User - Profile
// @Produce json
// @Param user_id query string false "User ID when auth is disabled"
// @Success 200 {object} dto.DashboardResponseDTO
// @Failure 400 {object} dto.ErrorResponse "userId is required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/dashboard [get]
func (c *ProfileController) GetDashboard(ctx *gin.Context) {
	userID, ok := controller.ResolveUserID(ctx, "")
	if !ok {
		return
	}
	dashboard, err := c.profileService.GetDashboard(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetDashboard: Service error")
		controller.RespondError(ctx, err, "Failed to load dashboard")
		return
	}
	ctx.JSON(http.StatusOK, dashboard)
}

// GetBadges godoc
// @Summary (User) List earned badges
// @Tags User - Profile
// @Produce json
// @Param user_id query string false "User ID when auth is disabled"
// @Success 200 {array} dto.BadgeResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /profile/badges [get]
func (c *ProfileController) GetBadges(ctx *gin.Context) {
	userID, ok := controller.ResolveUserID(ctx, "")
	if !ok {
		return
	}
	badges, err := c.profileService.GetBadges(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("GetBadges: Service error")
		controller.RespondError(ctx, err, "Failed to retrieve badges")
		return
	}
	ctx.JSON(http.StatusOK, badges)
}

// GetLeaderboard godoc
// @Summary Top farmers by XP
// @Tags User - Profile
// @Produce json
// @Param limit query int false "Number of entries (default 50, max 100)"
// @Success 200 {array} dto.LeaderboardEntryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (c *ProfileController) GetLeaderboard(ctx *gin.Context) {
	var query struct {
		Limit int `form:"limit" binding:"omitempty,min=1"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}
	entries, err := c.leaderboardService.Top(ctx.Request.Context(), query.Limit)
	if err != nil {
		log.Error().Err(err).Msg("GetLeaderboard: Service error")
		controller.RespondError(ctx, err, "Failed to load leaderboard")
		return
	}
	ctx.JSON(http.StatusOK, entries)
}
