package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	registered dto.RegisterRequest
	err        error
}

func (s *stubAuth) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.registered = req
	return &dto.AuthResponse{Token: "tok", User: dto.UserInfo{ID: "u1", Email: req.Email}}, nil
}

func (s *stubAuth) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AuthResponse{Token: "tok", User: dto.UserInfo{ID: "u1", Email: req.Email}}, nil
}

func (s *stubAuth) CurrentUser(userID string) (*dto.VerifyResponse, error) {
	return &dto.VerifyResponse{User: dto.UserInfo{ID: userID}}, nil
}

type stubStudents struct {
	progressUser string
	progress     dto.ProgressRequest
	limit        int
}

func (s *stubStudents) RecordProgress(userID string, req dto.ProgressRequest) (*dto.ProgressResult, error) {
	s.progressUser = userID
	s.progress = req
	return &dto.ProgressResult{PointsEarned: 500, NewLevel: 6, TotalPoints: 500}, nil
}

func (s *stubStudents) SubjectProgress(userID string) ([]dto.SubjectProgress, error) {
	return []dto.SubjectProgress{}, nil
}

func (s *stubStudents) Achievements(userID string) ([]dto.StudentAchievementResponse, error) {
	return []dto.StudentAchievementResponse{}, nil
}

func (s *stubStudents) Leaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	s.limit = limit
	return []dto.LeaderboardEntry{}, nil
}

type stubExams struct {
	difficulty string
}

func (s *stubExams) Paper(subject, difficulty string) (*dto.ExamPaper, error) {
	if subject != "math" {
		return nil, shared.NewNotFoundError(nil, "Exam subject not found")
	}
	s.difficulty = difficulty
	return &dto.ExamPaper{Subject: subject, Difficulty: difficulty}, nil
}

func (s *stubExams) Submit(userID, subject string, req dto.SubmitExamRequest) (*dto.ExamResult, error) {
	return &dto.ExamResult{}, nil
}

type stubAdmin struct {
	statusUser string
	active     *bool
}

func (s *stubAdmin) Stats(ctx context.Context) (*dto.PlatformStats, error) {
	return &dto.PlatformStats{TotalStudents: 3}, nil
}

func (s *stubAdmin) Students() ([]dto.AdminStudent, error) { return nil, nil }

func (s *stubAdmin) AddStudent(req dto.AddStudentRequest) (*dto.AddStudentResponse, error) {
	return &dto.AddStudentResponse{Email: req.Email}, nil
}

func (s *stubAdmin) SetStudentStatus(userID string, active bool) error {
	s.statusUser = userID
	s.active = &active
	return nil
}

func (s *stubAdmin) Games() ([]dto.GameResponse, error) { return nil, nil }

func (s *stubAdmin) Activity(ctx context.Context) ([]dto.ActivityItem, error) { return nil, nil }

type stubUsers struct {
	contentType string
	size        int64
	body        []byte
}

func (s *stubUsers) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	return &dto.UserProfileResponse{UserInfo: dto.UserInfo{ID: userID}}, nil
}

func (s *stubUsers) UploadAvatar(userID, contentType string, size int64, body io.Reader) (*dto.AvatarUploadResponse, error) {
	s.contentType = contentType
	s.size = size
	s.body, _ = io.ReadAll(body)
	return &dto.AvatarUploadResponse{AvatarURL: "http://cdn/avatars/" + userID + ".png", Size: size}, nil
}

// newTestApp mounts h behind a fake auth step that sets the user id.
func newTestApp(method, path string, h fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  shared.JSONMarshal,
		JSONDecoder:  shared.JSONUnmarshal,
		ErrorHandler: shared.ErrorHandler,
	})
	app.Add(method, path, func(c *fiber.Ctx) error {
		c.Locals(shared.UserID, "u1")
		return c.Next()
	}, h)
	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, shared.Response) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out shared.Response
	require.NoError(t, sonic.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestRegister(t *testing.T) {
	auth := &stubAuth{}
	app := newTestApp(http.MethodPost, "/register", NewAuthHandler(auth).Register)

	status, body := do(t, app, jsonRequest(http.MethodPost, "/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":" ADA@Example.com ","grade":4,"password":"secret123","confirmPassword":"secret123"}`))
	assert.Equal(t, http.StatusCreated, status)
	assert.True(t, body.Success)
	assert.Equal(t, "User registered successfully", body.Message)
	assert.Equal(t, "ada@example.com", auth.registered.Email)

	status, body = do(t, app, jsonRequest(http.MethodPost, "/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","grade":4,"password":"secret123","confirmPassword":"other"}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.NotNil(t, body.Errors)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := &stubAuth{err: shared.NewBadRequestError(nil, "User with this email already exists")}
	app := newTestApp(http.MethodPost, "/register", NewAuthHandler(auth).Register)

	status, body := do(t, app, jsonRequest(http.MethodPost, "/register",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","grade":4,"password":"secret123","confirmPassword":"secret123"}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "User with this email already exists", body.Message)
}

func TestLoginFailure(t *testing.T) {
	auth := &stubAuth{err: shared.NewUnauthorizedError(nil, "Invalid email or password")}
	app := newTestApp(http.MethodPost, "/login", NewAuthHandler(auth).Login)

	status, body := do(t, app, jsonRequest(http.MethodPost, "/login", `{"email":"ada@example.com","password":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid email or password", body.Message)
}

func TestVerifyUsesCurrentUser(t *testing.T) {
	app := newTestApp(http.MethodGet, "/verify", NewAuthHandler(&stubAuth{}).Verify)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/verify", nil))
	assert.Equal(t, http.StatusOK, status)
	user := body.Data.(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "u1", user["id"])
}

func TestRecordProgress(t *testing.T) {
	students := &stubStudents{}
	app := newTestApp(http.MethodPost, "/progress", NewStudentHandler(students).RecordProgress)

	status, body := do(t, app, jsonRequest(http.MethodPost, "/progress",
		`{"topicId":"t1","completionPercentage":50,"timeSpent":120,"questionsCorrect":4,"questionsAttempted":5}`))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Progress updated successfully", body.Message)
	assert.Equal(t, "u1", students.progressUser)
	assert.Equal(t, 50.0, students.progress.CompletionPercentage)

	status, _ = do(t, app, jsonRequest(http.MethodPost, "/progress",
		`{"topicId":"t1","completionPercentage":150,"questionsCorrect":0,"questionsAttempted":0}`))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, jsonRequest(http.MethodPost, "/progress",
		`{"topicId":"t1","completionPercentage":10,"questionsCorrect":6,"questionsAttempted":5}`))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStudentLeaderboardLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", shared.DefaultLeaderboardLimit},
		{"?limit=25", 25},
		{"?limit=500", shared.DefaultLeaderboardLimit},
		{"?limit=0", shared.DefaultLeaderboardLimit},
		{"?limit=abc", shared.DefaultLeaderboardLimit},
	}

	for _, tt := range tests {
		students := &stubStudents{}
		app := newTestApp(http.MethodGet, "/leaderboard", NewLeaderboardHandler(students, nil).GetStudentLeaderboard)

		status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/leaderboard"+tt.query, nil))
		assert.Equal(t, http.StatusOK, status, tt.query)
		assert.Equal(t, tt.want, students.limit, tt.query)
	}
}

func TestExamPaperDefaultsToEasy(t *testing.T) {
	exams := &stubExams{}
	app := newTestApp(http.MethodGet, "/exams/:subject", NewExamHandler(exams).GetPaper)

	status, _ := do(t, app, httptest.NewRequest(http.MethodGet, "/exams/math", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, shared.DifficultyEasy, exams.difficulty)

	status, _ = do(t, app, httptest.NewRequest(http.MethodGet, "/exams/math?difficulty=moderate", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, shared.DifficultyModerate, exams.difficulty)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/exams/history", nil))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Exam subject not found", body.Message)
}

func TestExamSubmitValidation(t *testing.T) {
	app := newTestApp(http.MethodPost, "/exams/:subject/submit", NewExamHandler(&stubExams{}).Submit)

	status, _ := do(t, app, jsonRequest(http.MethodPost, "/exams/math/submit", `{"difficulty":"hard","answers":[{"questionId":"q1","selected":0}]}`))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, jsonRequest(http.MethodPost, "/exams/math/submit", `{"difficulty":"easy","answers":[]}`))
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSetStudentStatus(t *testing.T) {
	admin := &stubAdmin{}
	app := newTestApp(http.MethodPatch, "/students/:id/status", NewAdminHandler(admin).SetStudentStatus)

	status, _ := do(t, app, jsonRequest(http.MethodPatch, "/students/u9/status", `{}`))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Nil(t, admin.active)

	status, body := do(t, app, jsonRequest(http.MethodPatch, "/students/u9/status", `{"isActive":false}`))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Student deactivated", body.Message)
	assert.Equal(t, "u9", admin.statusUser)
	require.NotNil(t, admin.active)
	assert.False(t, *admin.active)
}

func TestAdminStats(t *testing.T) {
	app := newTestApp(http.MethodGet, "/stats", NewAdminHandler(&stubAdmin{}).GetStats)

	status, body := do(t, app, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 3, body.Data.(map[string]interface{})["totalStudents"])
}

func TestUploadAvatar(t *testing.T) {
	users := &stubUsers{}
	app := newTestApp(http.MethodPost, "/avatar", NewUserHandler(users).UploadAvatar)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="avatar"; filename="me.png"`)
	header.Set("Content-Type", "image/png")
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/avatar", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	status, body := do(t, app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Avatar uploaded successfully", body.Message)
	assert.Equal(t, "image/png", users.contentType)
	assert.EqualValues(t, len("\x89PNG fake"), users.size)
	assert.Equal(t, []byte("\x89PNG fake"), users.body)
}

func TestUploadAvatarMissingFile(t *testing.T) {
	app := newTestApp(http.MethodPost, "/avatar", NewUserHandler(&stubUsers{}).UploadAvatar)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", "x"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/avatar", &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	status, body := do(t, app, req)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "No avatar file provided", body.Message)
}
