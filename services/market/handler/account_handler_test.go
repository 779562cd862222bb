package handler

import (
	"fmt"
	"net/http"
	"testing"

	"bomul-market/internal/marketerrors"
	model "bomul-market/internal/models"
	"bomul-market/services/market/helpers"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserHandler(t *testing.T) {
	t.Parallel()

	valid := helpers.RegisterUserRequest{ID: "neo", Name: "Neo", Password: "pw", AgreedToTerms: true}

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m mocks)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			requestBody: valid,
			mockSetup: func(m mocks) {
				m.market.EXPECT().RegisterUser(gomock.Any(), valid.ToUser(), "pw").
					Return(model.User{ID: "neo", Name: "Neo", Role: model.RoleBuyer, AgreedToTerms: true}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user registered successfully",
		},
		{
			name:           "missing_password",
			requestBody:    helpers.RegisterUserRequest{ID: "neo", Name: "Neo"},
			mockSetup:      func(m mocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "unknown_role",
			requestBody:    helpers.RegisterUserRequest{ID: "neo", Name: "Neo", Password: "pw", Role: "OWNER"},
			mockSetup:      func(m mocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "terms_not_accepted",
			requestBody: helpers.RegisterUserRequest{ID: "neo", Name: "Neo", Password: "pw"},
			mockSetup: func(m mocks) {
				m.market.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), "pw").
					Return(model.User{}, fmt.Errorf("ledger: %w", marketerrors.ErrTermsNotAccepted))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:        "duplicate",
			requestBody: valid,
			mockSetup: func(m mocks) {
				m.market.EXPECT().RegisterUser(gomock.Any(), gomock.Any(), "pw").
					Return(model.User{}, fmt.Errorf("ledger: register: %w", marketerrors.ErrUserExists))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already exists",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t)
			tc.mockSetup(m)

			w, resp := doJSON(t, router, http.MethodPost, "/users", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

func TestGetUserHandler_IncludesLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		xp            int
		expectedLevel float64
		expectedTitle string
		expectedNext  float64
	}{
		{name: "novice", xp: 60, expectedLevel: 1, expectedTitle: "보따리 상인", expectedNext: 100},
		{name: "top_tier", xp: 450, expectedLevel: 3, expectedTitle: "도깨비 상인", expectedNext: 0},
		{name: "boundary", xp: 400, expectedLevel: 2, expectedTitle: "거상", expectedNext: 400},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, m := newTestRouter(t)
			m.market.EXPECT().GetUserByID("u").Return(model.User{ID: "u", Name: "U", XP: tc.xp}, true)

			w, resp := doJSON(t, router, http.MethodGet, "/users/u", nil)
			require.Equal(t, http.StatusOK, w.Code)

			level := resp["data"].(map[string]any)["level"].(map[string]any)
			require.Equal(t, tc.expectedLevel, level["level"])
			require.Equal(t, tc.expectedTitle, level["title"])
			require.Equal(t, tc.expectedNext, level["next_threshold"])
		})
	}

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().GetUserByID("ghost").Return(model.User{}, false)

		w, _ := doJSON(t, router, http.MethodGet, "/users/ghost", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandlers(t *testing.T) {
	t.Parallel()

	t.Run("subscribe", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().SubscribeUser(gomock.Any(), "user2").
			Return(model.User{ID: "user2", IsSubscribed: true, QuickCloseTickets: 3}, nil)

		w, resp := doJSON(t, router, http.MethodPost, "/users/user2/subscription", nil)
		require.Equal(t, http.StatusOK, w.Code)
		user := resp["data"].(map[string]any)["user"].(map[string]any)
		require.Equal(t, true, user["is_subscribed"])
		require.Equal(t, 3.0, user["quick_close_tickets"])
	})

	t.Run("purchase", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		user := model.User{ID: "user2", QuickCloseTickets: 1, TicketsPurchasedMonth: 1}
		m.market.EXPECT().PurchaseTicket(gomock.Any(), "user2").
			Return(model.Result{Success: true, Message: "ticket purchased (1/3 this month)", User: &user})

		w, resp := doJSON(t, router, http.MethodPost, "/users/user2/tickets", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "ticket purchased (1/3 this month)", resp["message"])
	})

	t.Run("purchase_limit", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().PurchaseTicket(gomock.Any(), "user1").
			Return(model.Result{Message: marketerrors.ErrMonthlyLimitExceeded.Error(), Err: marketerrors.ErrMonthlyLimitExceeded})

		w, resp := doJSON(t, router, http.MethodPost, "/users/user1/tickets", nil)
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		require.Equal(t, false, resp["success"])
	})
}

func TestSessionHandlers(t *testing.T) {
	t.Parallel()

	t.Run("login_success", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().Login(gomock.Any(), "user1", "1234").Return(model.User{ID: "user1", XP: 450}, nil)

		w, _ := doJSON(t, router, http.MethodPost, "/session", helpers.LoginRequest{UserID: "user1", Password: "1234"})
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("login_rejected", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().Login(gomock.Any(), "user1", "bad").
			Return(model.User{}, fmt.Errorf("ledger: %w", marketerrors.ErrInvalidCredentials))

		w, _ := doJSON(t, router, http.MethodPost, "/session", helpers.LoginRequest{UserID: "user1", Password: "bad"})
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("current_and_logout", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		gomock.InOrder(
			m.market.EXPECT().CurrentUser().Return(&model.User{ID: "user1"}),
			m.market.EXPECT().ClearSession(gomock.Any()),
			m.market.EXPECT().CurrentUser().Return(nil),
		)

		w, resp := doJSON(t, router, http.MethodGet, "/session", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, resp["data"])

		w, _ = doJSON(t, router, http.MethodDelete, "/session", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, resp = doJSON(t, router, http.MethodGet, "/session", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Nil(t, resp["data"])
		require.Equal(t, "no active session", resp["message"])
	})
}

func TestReportHandlers(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().AddReport(gomock.Any(), model.Report{
			TargetID: "p1", TargetType: model.ReportTargetProduct, ReporterID: "user2", Reason: "fake",
		}).Return(model.Report{ID: "r1", TargetID: "p1", Status: model.ReportStatusPending}, nil)

		w, resp := doJSON(t, router, http.MethodPost, "/reports", helpers.CreateReportRequest{
			TargetID: "p1", TargetType: model.ReportTargetProduct, ReporterID: "user2", Reason: "fake",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "PENDING", resp["data"].(map[string]any)["status"])
	})

	t.Run("create_bad_target", func(t *testing.T) {
		t.Parallel()
		router, _ := newTestRouter(t)

		w, _ := doJSON(t, router, http.MethodPost, "/reports", map[string]any{
			"target_id": "p1", "target_type": "COMMENT", "reporter_id": "user2", "reason": "x",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list_empty_is_array", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().GetReports().Return(nil)
		m.market.EXPECT().OrphanedReports().Return([]model.Report{{ID: "r1", TargetID: "gone"}})

		w, resp := doJSON(t, router, http.MethodGet, "/reports", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, []any{}, resp["data"])

		w, resp = doJSON(t, router, http.MethodGet, "/reports/orphaned", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"], 1)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()
		router, m := newTestRouter(t)
		m.market.EXPECT().UpdateReportStatus(gomock.Any(), "r1", model.ReportStatusResolved).
			Return(model.Report{ID: "r1", Status: model.ReportStatusResolved}, nil)
		m.market.EXPECT().UpdateReportStatus(gomock.Any(), "r9", model.ReportStatusDismissed).
			Return(model.Report{}, fmt.Errorf("ledger: %w", marketerrors.ErrReportNotFound))

		w, _ := doJSON(t, router, http.MethodPatch, "/reports/r1", helpers.UpdateReportRequest{Status: model.ReportStatusResolved})
		require.Equal(t, http.StatusOK, w.Code)
		w, _ = doJSON(t, router, http.MethodPatch, "/reports/r9", helpers.UpdateReportRequest{Status: model.ReportStatusDismissed})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
