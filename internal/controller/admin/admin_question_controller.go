package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/internal/controller"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
)

const maxImportSize = 10 << 20

type AdminQuestionController struct {
	questionService service.QuestionService
	importService   service.QuestionImportService
}

func NewAdminQuestionController(questionService service.QuestionService, importService service.QuestionImportService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService, importService: importService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a quiz question
// @Description The reference answer is stored server-side and only revealed after an attempt.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question, reference answer, difficulty, category and XP reward"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("CreateQuestion: Service error")
		controller.RespondError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// ImportQuestions godoc
// @Summary (Admin) Bulk import questions
// @Description Upload an .xlsx or .csv file with a header row and the columns question, correct_answer, difficulty, category, xp_reward.
// @Tags Admin - Questions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet to import"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions/import [post]
func (c *AdminQuestionController) ImportQuestions(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "A file field is required", Details: []string{err.Error()}})
		return
	}
	if fileHeader.Size > maxImportSize {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "File is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("ImportQuestions: Failed to open upload")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	result, err := c.importService.ImportQuestions(ctx.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("ImportQuestions: Service error")
		controller.RespondError(ctx, err, "Failed to import questions")
		return
	}
	ctx.JSON(http.StatusOK, result)
}
