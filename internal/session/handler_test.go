package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quiz-arena/internal/config"
	"github.com/saulo-duarte/quiz-arena/internal/question"
	"github.com/saulo-duarte/quiz-arena/internal/score"
	"github.com/saulo-duarte/quiz-arena/internal/session"
	"github.com/saulo-duarte/quiz-arena/internal/user"
)

type e2e struct {
	router    http.Handler
	questions question.Repository
	scores    score.Service
}

func newE2E(t *testing.T) *e2e {
	t.Helper()

	db, err := config.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&question.Question{}, &score.Record{}, &user.User{}))

	qc := question.NewQuestionContainer(db)
	_, err = question.Seed(context.Background(), qc.Repo)
	require.NoError(t, err)

	sc := score.NewScoreContainer(db)
	uc := user.NewUserContainer(db)
	c := session.NewSessionContainer(session.NewMemoryStore(time.Hour), qc.Service, sc.Service, uc.Service, session.Options{}, time.Hour)

	return &e2e{router: session.Routes(c.Handler), questions: qc.Repo, scores: sc.Service}
}

func (e *e2e) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("response did not set %s", session.CookieName)
	return nil
}

func TestQuizFlowOverHTTP(t *testing.T) {
	e := newE2E(t)

	rec := e.do(t, http.MethodPost, "/start", `{"username":"ana","category":"all","difficulty":"easy"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), `"correct"`, "start response must not leak answers")

	var start struct {
		Success        bool                      `json:"success"`
		SessionID      uuid.UUID                 `json:"session_id"`
		Questions      []question.PublicQuestion `json:"questions"`
		TotalQuestions int                       `json:"total_questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &start))
	require.True(t, start.Success)
	require.NotEmpty(t, start.Questions)
	assert.LessOrEqual(t, start.TotalQuestions, 10)
	for _, q := range start.Questions {
		assert.Equal(t, question.Easy, q.Difficulty)
	}

	cookie := sessionCookie(t, rec)
	assert.Equal(t, start.SessionID.String(), cookie.Value)

	var last map[string]any
	for i, pq := range start.Questions {
		stored, err := e.questions.GetByID(context.Background(), pq.ID)
		require.NoError(t, err)

		rec := e.do(t, http.MethodPost, "/answer", `{"answer":`+itoa(stored.Correct)+`}`, cookie)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		last = map[string]any{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &last))
		assert.Equal(t, true, last["is_correct"])
		assert.EqualValues(t, i+1, last["current_question"])
	}

	assert.Equal(t, true, last["is_completed"])
	assert.EqualValues(t, start.TotalQuestions, last["final_score"])
	assert.EqualValues(t, start.TotalQuestions, last["total_questions"])
	assert.EqualValues(t, 100.0, last["percentage"])
	assert.Contains(t, last, "time_taken")
	assert.Contains(t, last["achievements"], "first_quiz")

	t.Run("AnswerAfterCompletion", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/answer", `{"answer":0}`, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "quiz already completed")
	})

	t.Run("LeaderboardHasOneRow", func(t *testing.T) {
		entries, err := e.scores.Leaderboard(context.Background(), "easy", 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "ana", entries[0].Username)
		assert.Equal(t, 100.0, entries[0].Percentage)
	})
}

func TestHandlerErrors(t *testing.T) {
	e := newE2E(t)

	t.Run("AnswerWithoutSession", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/answer", `{"answer":1}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "no active quiz session")
	})

	t.Run("UnknownHandleHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(`{"answer":1}`))
		req.Header.Set(session.HeaderName, uuid.NewString())
		rec := httptest.NewRecorder()
		e.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedHeaderFallsBackToCookie", func(t *testing.T) {
		start := e.do(t, http.MethodPost, "/start", `{"username":"di"}`, nil)
		require.Equal(t, http.StatusOK, start.Code)

		req := httptest.NewRequest(http.MethodGet, "/current", nil)
		req.Header.Set(session.HeaderName, "not-a-uuid")
		req.AddCookie(sessionCookie(t, start))
		rec := httptest.NewRecorder()
		e.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"di"`)
	})

	t.Run("NoQuestionsForCategory", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/start", `{"difficulty":"hard","category":"Cooking"}`, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "error")
	})

	t.Run("BadDifficulty", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/start", `{"difficulty":"legendary"}`, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("EmptyBodyUsesDefaults", func(t *testing.T) {
		rec := e.do(t, http.MethodPost, "/start", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MissingAnswer", func(t *testing.T) {
		start := e.do(t, http.MethodPost, "/start", `{}`, nil)
		require.Equal(t, http.StatusOK, start.Code)

		rec := e.do(t, http.MethodPost, "/answer", `{}`, sessionCookie(t, start))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "answer is required")
	})

	t.Run("CurrentResumes", func(t *testing.T) {
		start := e.do(t, http.MethodPost, "/start", `{"username":"bo"}`, nil)
		cookie := sessionCookie(t, start)

		rec := e.do(t, http.MethodGet, "/current", "", cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var p session.Progress
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.Equal(t, "bo", p.Username)
		assert.Equal(t, session.StatusInProgress, p.Status)
		require.NotNil(t, p.Next)
	})

	t.Run("AbandonDropsSession", func(t *testing.T) {
		start := e.do(t, http.MethodPost, "/start", `{"username":"cy"}`, nil)
		cookie := sessionCookie(t, start)

		rec := e.do(t, http.MethodDelete, "/current", "", cookie)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = e.do(t, http.MethodGet, "/current", "", cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = e.do(t, http.MethodDelete, "/current", "", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func itoa(i int) string {
	b, _ := json.Marshal(i)
	return string(b)
}
