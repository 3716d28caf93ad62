package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/models"
	"github.com/levushkin/orders-backend/internal/services"
	"github.com/levushkin/orders-backend/internal/storage"
	"github.com/levushkin/orders-backend/internal/storage/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAdminLoginHandler(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to generate hash: %v", err)
	}
	identity := services.NewIdentity(config.AdminConfig{
		Login:        "admin",
		PasswordHash: string(hash),
		JWTSecret:    "secret",
	})

	testCases := []struct {
		TestName       string
		Body           string
		ExpectedStatus int
		ExpectToken    bool
	}{
		{
			TestName:       "Success. Valid credentials #1",
			Body:           `{"login":"admin","password":"password"}`,
			ExpectedStatus: http.StatusOK,
			ExpectToken:    true,
		},
		{
			TestName:       "Error. Wrong password #2",
			Body:           `{"login":"admin","password":"wrong"}`,
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			TestName:       "Error. Unknown login #3",
			Body:           `{"login":"root","password":"password"}`,
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			TestName:       "Error. Malformed JSON #4",
			Body:           `{"login":`,
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			handler := AdminLoginHandler(identity)

			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(tc.Body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rr.Code)
			}
			auth := rr.Header().Get("Authorization")
			if tc.ExpectToken && !strings.HasPrefix(auth, "Bearer ") {
				t.Errorf("Expected bearer token, got '%s'", auth)
			}
			if !tc.ExpectToken && auth != "" {
				t.Errorf("Expected no token, got '%s'", auth)
			}
		})
	}
}

func TestGetSubmissionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockSubmissionsStorage(ctrl)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	createdAt := time.Date(2025, 5, 12, 10, 30, 0, 0, time.UTC)
	stored := []models.SubmissionData{
		{
			UID:       "6c1f3f9e-0000-4000-8000-000000000001",
			Firstname: "Иван",
			Lastname:  "Петров",
			Phone:     "+79990001122",
			Email:     "ivan@example.com",
			Region:    "Московская область",
			City:      "Москва",
			Address:   "ул. Ленина, д. 1",
			Status:    models.SubmissionStatusDone,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		{
			UID:        "6c1f3f9e-0000-4000-8000-000000000002",
			Firstname:  "Анна",
			Lastname:   "Иванова",
			Phone:      "+79990003344",
			Email:      "anna@example.com",
			Telegram:   "anna",
			Region:     "Ленинградская область",
			City:       "Санкт-Петербург",
			Address:    "Невский пр., д. 2",
			Comment:    "Позвонить после 18:00",
			Status:     models.SubmissionStatusNew,
			AdminNotes: "не дозвонились",
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		},
	}

	testCases := []struct {
		TestName       string
		Target         string
		SetupMocks     func()
		ExpectedStatus int
		Expected       []models.SubmissionResponse
	}{
		{
			TestName: "Success. Full list #1",
			Target:   "/api/admin/submissions",
			SetupMocks: func() {
				mockStorage.EXPECT().
					GetSubmissions(gomock.Any(), models.SubmissionFilter{Limit: services.MaxSubmissionsLimit}).
					Return(stored, nil)
			},
			ExpectedStatus: http.StatusOK,
			Expected: []models.SubmissionResponse{
				models.NewSubmissionResponse(&stored[0]),
				models.NewSubmissionResponse(&stored[1]),
			},
		},
		{
			TestName: "Success. Status filter and limit #2",
			Target:   "/api/admin/submissions?status=new&limit=1",
			SetupMocks: func() {
				mockStorage.EXPECT().
					GetSubmissions(gomock.Any(), models.SubmissionFilter{Status: "new", Limit: 1}).
					Return(stored[1:], nil)
			},
			ExpectedStatus: http.StatusOK,
			Expected: []models.SubmissionResponse{
				models.NewSubmissionResponse(&stored[1]),
			},
		},
		{
			TestName:       "Error. Unknown status #3",
			Target:         "/api/admin/submissions?status=archived",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			TestName:       "Error. Invalid limit #4",
			Target:         "/api/admin/submissions?limit=abc",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			TestName: "Error. Storage failure #5",
			Target:   "/api/admin/submissions",
			SetupMocks: func() {
				mockStorage.EXPECT().
					GetSubmissions(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrNotFound)
			},
			ExpectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			handler := GetSubmissionsHandler(makeService(mockStorage, nil))

			req := httptest.NewRequest(http.MethodGet, tc.Target, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rr.Code)
			}
			if tc.Expected == nil {
				return
			}

			var response []models.SubmissionResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if diff := cmp.Diff(tc.Expected, response); diff != "" {
				t.Errorf("Submissions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateSubmissionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockSubmissionsStorage(ctrl)

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		logger.Panic(err)
	}
	defer logger.Sync()

	const uid = "6c1f3f9e-0000-4000-8000-000000000001"

	testCases := []struct {
		TestName       string
		UID            string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			TestName: "Success. Status changed #1",
			UID:      uid,
			Body:     `{"status":"in_progress","admin_notes":"взяли в работу"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().
					UpdateSubmission(gomock.Any(), uid, models.SubmissionStatusInProgress, "взяли в работу").
					Return(nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			TestName:       "Error. Unknown status #2",
			UID:            uid,
			Body:           `{"status":"archived"}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			TestName: "Error. Submission not found #3",
			UID:      "6c1f3f9e-0000-4000-8000-00000000dead",
			Body:     `{"status":"done"}`,
			SetupMocks: func() {
				mockStorage.EXPECT().
					UpdateSubmission(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(storage.ErrNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
		},
		{
			TestName:       "Error. Malformed JSON #4",
			UID:            uid,
			Body:           `{"status":`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()

			router := chi.NewRouter()
			router.Post("/api/admin/submissions/{uid}", UpdateSubmissionHandler(makeService(mockStorage, nil)))

			req := httptest.NewRequest(http.MethodPost, "/api/admin/submissions/"+tc.UID, strings.NewReader(tc.Body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rr.Code)
			}
		})
	}
}
