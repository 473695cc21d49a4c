package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/internal/controller"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/middleware"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
)

const submitFailureMessage = "Failed to submit quiz answer"

type QuizController struct {
	submissionService service.QuizSubmissionService
	questionService   service.QuestionService
}

func NewQuizController(submissionService service.QuizSubmissionService, questionService service.QuestionService) *QuizController {
	return &QuizController{submissionService: submissionService, questionService: questionService}
}

// SubmitAnswer godoc
// @Summary (User) Submit an answer to a quiz question
// @Description Scores the answer, records the attempt, adds XP, recomputes the level and awards any newly unlocked badges.
// @Tags User - Quiz
// @Accept json
// @Produce json
// @Param submission body dto.SubmitQuizRequest true "Question id, user id and free-text answer"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "userId does not match the token"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to submit quiz answer"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("SubmitAnswer: recovered from panic")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: submitFailureMessage})
		}
	}()

	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID, ok := controller.ResolveUserID(ctx, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	resp, err := c.submissionService.Submit(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("questionID", req.QuestionID).Str("userID", req.UserID).Msg("SubmitAnswer: Service error")
		controller.RespondError(ctx, err, submitFailureMessage)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAttempt godoc
// @Summary (User) Get one of your attempts
// @Description Returns the attempt with its question and reference answer, for the feedback page.
// @Tags User - Quiz
// @Produce json
// @Param attempt_id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/attempts/{attempt_id} [get]
func (c *QuizController) GetAttempt(ctx *gin.Context) {
	attempt, err := c.submissionService.GetAttempt(ctx.Request.Context(), ctx.Param("attempt_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve attempt")
		return
	}
	// Attempts are private to their author once auth is on.
	if userID, ok := middleware.AuthenticatedUserID(ctx); ok && attempt.UserID != userID {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Not found"})
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}

// ListQuestions godoc
// @Summary (User) List quiz questions
// @Description Questions for a difficulty (defaults to the user's experience level, then beginner). Reference answers are never included.
// @Tags User - Quiz
// @Produce json
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Param category query string false "Category filter"
// @Param limit query int false "Maximum number of questions (default 10, max 50)"
// @Param user_id query string false "User ID when auth is disabled"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	var query struct {
		Difficulty string `form:"difficulty"`
		Category   string `form:"category"`
		Limit      int    `form:"limit" binding:"omitempty,min=1"`
	}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters", Details: []string{err.Error()}})
		return
	}

	userID, ok := middleware.AuthenticatedUserID(ctx)
	if !ok {
		userID = ctx.Query("user_id")
	}

	questions, err := c.questionService.ListQuestions(ctx.Request.Context(), userID, query.Difficulty, query.Category, query.Limit)
	if err != nil {
		log.Error().Err(err).Msg("ListQuestions: Service error")
		controller.RespondError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (User) Get a quiz question
// @Tags User - Quiz
// @Produce json
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{question_id} [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), ctx.Param("question_id"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}
