package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nikmy/rangepicker/internal/picker"
	"github.com/nikmy/rangepicker/internal/ranges"
	"github.com/nikmy/rangepicker/pkg/logger"
	"github.com/nikmy/rangepicker/pkg/rangepicker"
)

const testSecret = "test-secret"

func newAuthServer(repo ranges.Repo) *server {
	var cfg Config
	cfg.Auth.Secret = testSecret

	pickers := picker.NewFactory(picker.Config{}, nil, rangepicker.FixedClock(testNow))
	return NewServer(cfg, logger.NewStub(), repo, pickers).(*server)
}

func token(t *testing.T, secret string, user int64, ttl time.Duration) string {
	t.Helper()

	raw, err := IssueToken(secret, user, ttl, time.Now())
	require.NoError(t, err)
	return raw
}

func TestParseToken(t *testing.T) {
	user, err := ParseToken([]byte(testSecret), token(t, testSecret, 42, time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(42), user)

	_, err = ParseToken([]byte(testSecret), token(t, "other", 42, time.Hour))
	require.Error(t, err)

	_, err = ParseToken([]byte(testSecret), token(t, testSecret, 42, -time.Hour))
	require.Error(t, err)
}

func TestServer_auth(t *testing.T) {
	type testcase struct {
		name   string
		method string
		path   string
		header string

		expect     func(repo *ranges.MockRepo)
		wantStatus int
	}

	tests := [...]testcase{
		{
			name:       "no token",
			method:     http.MethodGet,
			path:       "/ranges?user=42",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			method:     http.MethodGet,
			path:       "/ranges?user=42",
			header:     "Bearer garbage",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "foreign user",
			method:     http.MethodGet,
			path:       "/ranges?user=7",
			header:     "Bearer " + token(t, testSecret, 42, time.Hour),
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "own ranges from token",
			method: http.MethodGet,
			path:   "/ranges",
			header: "Bearer " + token(t, testSecret, 42, time.Hour),
			expect: func(repo *ranges.MockRepo) {
				repo.EXPECT().ListByUser(gomock.Any(), int64(42)).Return(nil, nil).Times(1)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete foreign range",
			method: http.MethodDelete,
			path:   "/ranges?id=b",
			header: "Bearer " + token(t, testSecret, 42, time.Hour),
			expect: func(repo *ranges.MockRepo) {
				repo.EXPECT().ListByUser(gomock.Any(), int64(42)).Return([]ranges.Range{{ID: "a"}}, nil).Times(1)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "delete own range",
			method: http.MethodDelete,
			path:   "/ranges?id=a",
			header: "Bearer " + token(t, testSecret, 42, time.Hour),
			expect: func(repo *ranges.MockRepo) {
				repo.EXPECT().ListByUser(gomock.Any(), int64(42)).Return([]ranges.Range{{ID: "a"}}, nil).Times(1)
				repo.EXPECT().Delete(gomock.Any(), "a").Return(true, nil).Times(1)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "picker routes stay public",
			method:     http.MethodGet,
			path:       "/month",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := ranges.NewMockRepo(ctrl)
			if tt.expect != nil {
				tt.expect(repo)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			status := do(t, newAuthServer(repo), req, nil)
			require.Equal(t, tt.wantStatus, status)
		})
	}
}
