package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gruenderai_backend/internal/repository"
	"gruenderai_backend/internal/scoring"
	"gruenderai_backend/internal/service"
	"gruenderai_backend/internal/util"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	questions := repository.NewQuestionRepository()
	svc := service.NewAssessmentService(questions, repository.NewMemorySessionStore(), scoring.NewEngine(questions.All()))
	assessment := NewAssessmentController(svc)
	health := NewHealthController(svc)

	router := gin.New()
	router.GET("/", health.Root)
	router.GET("/health", health.HealthCheck)
	api := router.Group("/api/assessment")
	{
		api.POST("/start", assessment.StartAssessment)
		api.POST("/answer", assessment.SubmitAnswer)
		api.POST("/results", assessment.GetResults)
		api.GET("/session/:sessionId", assessment.GetSessionInfo)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func startSession(t *testing.T, router *gin.Engine) service.StartAssessmentResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/assessment/start", gin.H{})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp service.StartAssessmentResponse
	decode(t, w, &resp)
	return resp
}

func TestStartEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/assessment/start", gin.H{
		"user_id":  "u1",
		"language": "de",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.StartAssessmentResponse
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 15, resp.TotalQuestions)
	assert.Equal(t, 10, resp.EstimatedTimeMinutes)
	require.NotNil(t, resp.FirstQuestion)
	assert.Equal(t, "ENT_001", resp.FirstQuestion.QuestionID)
	assert.Equal(t, 1, resp.FirstQuestion.Order)
	assert.Len(t, resp.FirstQuestion.Options, 5)
}

func TestStartEndpointEmptyBody(t *testing.T) {
	router := newTestRouter()

	resp := startSession(t, router)
	assert.NotEmpty(t, resp.SessionID)
}

func TestAnswerEndpoint(t *testing.T) {
	router := newTestRouter()
	sess := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
		"session_id":  sess.SessionID,
		"question_id": "ENT_001",
		"answer":      4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp service.SubmitAnswerResponse
	decode(t, w, &resp)
	assert.Equal(t, 6, resp.Progress)
	assert.False(t, resp.IsComplete)
	require.NotNil(t, resp.NextQuestion)
	assert.Equal(t, "ENT_002", resp.NextQuestion.QuestionID)
}

func TestAnswerEndpointStringAnswer(t *testing.T) {
	router := newTestRouter()
	sess := startSession(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
		"session_id":  sess.SessionID,
		"question_id": "COMP_001",
		"answer":      "more_5_years",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestFullAssessmentWalk(t *testing.T) {
	router := newTestRouter()
	sess := startSession(t, router)

	answers := map[string]interface{}{
		"ENT_001":    5,
		"ENT_002":    5,
		"ENT_003":    5,
		"COMP_001":   "more_5_years",
		"COMP_002":   "yes",
		"COMP_003":   5,
		"MARKET_001": "yes",
		"MARKET_002": "yes",
		"MARKET_003": 5,
		"FIN_001":    "yes",
		"FIN_002":    "10_30k",
		"FIN_003":    5,
		"IMPL_001":   "ready",
		"IMPL_002":   "yes",
		"IMPL_003":   5,
	}

	question := "ENT_001"
	var last service.SubmitAnswerResponse
	for i := 0; i < len(answers); i++ {
		w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
			"session_id":  sess.SessionID,
			"question_id": question,
			"answer":      answers[question],
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		decode(t, w, &last)
		if last.NextQuestion != nil {
			question = last.NextQuestion.QuestionID
		}
	}

	assert.True(t, last.IsComplete)
	assert.Equal(t, 100, last.Progress)
	assert.Nil(t, last.NextQuestion)

	w := doJSON(t, router, http.MethodPost, "/api/assessment/results", gin.H{
		"session_id": sess.SessionID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res service.AssessmentResults
	decode(t, w, &res)
	assert.Equal(t, sess.SessionID, res.SessionID)
	assert.Equal(t, 100.0, res.OverallScore)
	assert.Contains(t, res.ReadinessLevel, "Hoch")
	assert.Len(t, res.Dimensions, 5)
	assert.NotEmpty(t, res.Recommendations)
	assert.Len(t, res.NextSteps, 5)
	assert.NotEmpty(t, res.CompletionTime)
}

func TestAnswerEndpointErrors(t *testing.T) {
	router := newTestRouter()
	sess := startSession(t, router)

	t.Run("unknown session returns 404 shape", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
			"session_id":  "ghost",
			"question_id": "ENT_001",
			"answer":      3,
		})
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp util.ErrorResponse
		decode(t, w, &resp)
		assert.True(t, resp.Error)
		assert.Equal(t, "Session not found", resp.Message)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid answer returns 400 shape", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
			"session_id":  sess.SessionID,
			"question_id": "ENT_001",
			"answer":      9,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp util.ErrorResponse
		decode(t, w, &resp)
		assert.True(t, resp.Error)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Message, "ENT_001")
	})

	t.Run("boolean answer rejected by binding", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
			"session_id":  sess.SessionID,
			"question_id": "COMP_002",
			"answer":      true,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing required fields rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/assessment/answer", gin.H{
			"answer": 3,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/assessment/answer", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResultsEndpointUnknownSession(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/assessment/results", gin.H{
		"session_id": "ghost",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp util.ErrorResponse
	decode(t, w, &resp)
	assert.True(t, resp.Error)
	assert.Equal(t, "Session not found", resp.Message)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionInfoEndpoint(t *testing.T) {
	router := newTestRouter()
	sess := startSession(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/assessment/session/"+sess.SessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp service.SessionInfo
	decode(t, w, &resp)
	assert.Equal(t, sess.SessionID, resp.SessionID)
	assert.Equal(t, 0, resp.Progress)
	assert.Equal(t, 0, resp.AnswersCount)
	assert.NotEmpty(t, resp.StartedAt)

	w = doJSON(t, router, http.MethodGet, "/api/assessment/session/ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	decode(t, w, &resp)
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, util.ServiceName, resp.Service)
	assert.Equal(t, util.ServiceVersion, resp.Version)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 0, resp.ActiveSessions)

	startSession(t, router)

	w = doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &resp)
	assert.Equal(t, 1, resp.ActiveSessions)
}
