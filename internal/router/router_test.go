package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/config"
	adminctrl "github.com/lshigami/ShambaQuest/internal/controller/admin"
	userctrl "github.com/lshigami/ShambaQuest/internal/controller/user"
	"github.com/lshigami/ShambaQuest/internal/dto"
	"github.com/lshigami/ShambaQuest/internal/middleware"
	"github.com/lshigami/ShambaQuest/internal/model"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/lshigami/ShambaQuest/internal/testutil"
)

const reference = "Crop rotation breaks pest cycles and restores soil nutrients"

type evaluatorFunc func(ctx context.Context, userAnswer, correctAnswer string) (service.Evaluation, error)

func (f evaluatorFunc) Evaluate(ctx context.Context, userAnswer, correctAnswer string) (service.Evaluation, error) {
	return f(ctx, userAnswer, correctAnswer)
}

func newTestServer(t *testing.T, cfg *config.Config, evaluator service.AnswerEvaluator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := config.LoadBadgeCatalog("")
	if err != nil {
		t.Fatalf("LoadBadgeCatalog: %v", err)
	}
	cfg.Badges = catalog

	db := testutil.NewTestDB(t)
	questionRepo := repository.NewQuestionRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)

	awarder := service.NewBadgeAwarder(badgeRepo, cfg)
	if err := awarder.SeedCatalog(context.Background()); err != nil {
		t.Fatalf("SeedCatalog: %v", err)
	}
	q := model.Question{ID: "q1", Question: "Why rotate crops?", CorrectAnswer: reference, Difficulty: model.DifficultyBeginner, Category: "soil", XPReward: 50}
	if err := questionRepo.Create(context.Background(), &q); err != nil {
		t.Fatalf("create question: %v", err)
	}

	cache := service.NewLeaderboardCache(cfg)
	questionSvc := service.NewQuestionService(questionRepo, profileRepo)
	r := NewGinEngine(cfg)
	Register(r, cfg, db,
		userctrl.NewQuizController(
			service.NewQuizSubmissionService(questionRepo, attemptRepo, profileRepo, evaluator, awarder, cache, cfg),
			questionSvc,
		),
		userctrl.NewProfileController(
			service.NewProfileService(profileRepo, attemptRepo, badgeRepo),
			service.NewLeaderboardService(profileRepo, cache),
		),
		adminctrl.NewAdminQuestionController(questionSvc, service.NewQuestionImportService(questionRepo)),
	)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestSubmit_HappyPath(t *testing.T) {
	r := newTestServer(t, &config.Config{}, service.NewKeywordEvaluator())

	w := doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{
		"questionId": "q1",
		"userId":     "farmer-1",
		"userAnswer": "Rotation breaks pest cycles and keeps soil nutrients",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	var resp dto.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsCorrect || resp.XPEarned != 50 || resp.TotalXP != 50 || resp.CorrectAnswer != reference {
		t.Fatalf("got %+v", resp)
	}
	if strings.Join(resp.NewBadges, ",") != "Seedling,Sprout" {
		t.Fatalf("NewBadges = %v", resp.NewBadges)
	}
	if !strings.Contains(w.Body.String(), `"feedback":`) || strings.Contains(w.Body.String(), "ai_feedback") {
		t.Fatalf("response should use the feedback field: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/quiz/attempts/"+resp.AttemptID, nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), reference) {
		t.Fatalf("attempt detail %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/profile/dashboard?user_id=farmer-1", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"totalXp":50`) {
		t.Fatalf("dashboard %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/leaderboard", nil, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"userId":"farmer-1"`) {
		t.Fatalf("leaderboard %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmit_ErrorResponses(t *testing.T) {
	r := newTestServer(t, &config.Config{}, service.NewKeywordEvaluator())

	w := doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "nope", "userId": "u", "userAnswer": "x"}, "")
	if w.Code != http.StatusNotFound || decodeError(t, w).Error != "Question not found" {
		t.Fatalf("unknown question: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userId": "u"}, "")
	if w.Code != http.StatusBadRequest || decodeError(t, w).Error != "Invalid request body" {
		t.Fatalf("missing answer: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userAnswer": "x"}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing user: %d %s", w.Code, w.Body.String())
	}
}

func TestSubmit_InternalFailuresAreOpaque(t *testing.T) {
	cases := map[string]evaluatorFunc{
		"error": func(context.Context, string, string) (service.Evaluation, error) {
			return service.Evaluation{}, errors.New("pq: connection refused at 10.0.0.3")
		},
		"panic": func(context.Context, string, string) (service.Evaluation, error) {
			panic("nil map")
		},
	}
	for name, eval := range cases {
		t.Run(name, func(t *testing.T) {
			r := newTestServer(t, &config.Config{}, eval)
			w := doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userId": "u", "userAnswer": "x"}, "")
			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status %d", w.Code)
			}
			if body := decodeError(t, w); body.Error != "Failed to submit quiz answer" || len(body.Details) != 0 {
				t.Fatalf("body = %+v", body)
			}
		})
	}
}

func TestSubmit_TokenSubjectWins(t *testing.T) {
	cfg := &config.Config{Auth: config.Auth{JWTSecret: "s3cret"}}
	r := newTestServer(t, cfg, service.NewKeywordEvaluator())
	token, err := middleware.IssueToken([]byte("s3cret"), "farmer-1", "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userAnswer": "x"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userId": "someone-else", "userAnswer": "x"}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("mismatched user: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userAnswer": "x"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("token only: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodGet, "/api/v1/profile", nil, token)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"farmer-1"`) {
		t.Fatalf("profile: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/api/v1/admin/questions", map[string]interface{}{}, token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("admin route with user token: %d", w.Code)
	}
}

func TestGetAttempt_HiddenFromOtherUsers(t *testing.T) {
	cfg := &config.Config{Auth: config.Auth{JWTSecret: "s3cret"}}
	r := newTestServer(t, cfg, service.NewKeywordEvaluator())
	author, err := middleware.IssueToken([]byte("s3cret"), "farmer-1", "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	other, err := middleware.IssueToken([]byte("s3cret"), "farmer-2", "", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/v1/quiz/submit", map[string]string{"questionId": "q1", "userAnswer": "soil nutrients"}, author)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: %d %s", w.Code, w.Body.String())
	}
	var resp dto.SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(r, http.MethodGet, "/api/v1/quiz/attempts/"+resp.AttemptID, nil, author)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"userId":"farmer-1"`) {
		t.Fatalf("author read %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/quiz/attempts/"+resp.AttemptID, nil, other)
	if w.Code != http.StatusNotFound {
		t.Fatalf("other user read %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), reference) {
		t.Fatalf("reference answer leaked: %s", w.Body.String())
	}
}

func TestAdminQuestions(t *testing.T) {
	r := newTestServer(t, &config.Config{}, service.NewKeywordEvaluator())

	w := doJSON(r, http.MethodPost, "/api/v1/admin/questions", map[string]interface{}{
		"question":      "What is intercropping?",
		"correctAnswer": "Growing two or more crops together on the same field",
		"difficulty":    "intermediate",
		"category":      "crops",
		"xpReward":      35,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "Growing two or more") {
		t.Fatalf("reference answer leaked: %s", w.Body.String())
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "questions.csv")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write([]byte("question,correct_answer,difficulty,category,xp_reward\nWhat is composting?,Decomposing organic matter into fertiliser,intermediate,soil,20\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/questions/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"created":1`) {
		t.Fatalf("import: %d %s", rec.Code, rec.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/questions?difficulty=intermediate", nil, "")
	var listed []dto.QuestionResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil || len(listed) != 2 {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(r, http.MethodGet, "/api/v1/questions/does-not-exist", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing question: %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestServer(t, &config.Config{}, service.NewKeywordEvaluator())
	w := doJSON(r, http.MethodGet, "/healthz", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: %d %s", w.Code, w.Body.String())
	}
}
