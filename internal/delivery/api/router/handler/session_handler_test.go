package handler

import (
	"net/http"
	"testing"

	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSessionTestEcho(f handlerFixtures) *echo.Echo {
	h := NewSessionHandler(SessionHandlerParams{SessionUC: f.sessionUC})
	e := newTestEcho()
	e.POST("/auth/login", h.Login)

	return e
}

func TestSessionHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(f handlerFixtures)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"username":"kasir","password":"rahasia"}`,
			setup: func(f handlerFixtures) {
				f.sessionUC.EXPECT().Login(mock.Anything, "kasir", "rahasia").
					Return(&entity.TokenPair{AccessToken: "token", ExpiresIn: 43200}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "wrong password",
			body: `{"username":"kasir","password":"salah"}`,
			setup: func(f handlerFixtures) {
				f.sessionUC.EXPECT().Login(mock.Anything, "kasir", "salah").
					Return(nil, domainerrors.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "missing password",
			body:       `{"username":"kasir"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixtures(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			rec := doRequest(newSessionTestEcho(f), http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeEnvelope(t, rec).Error.Code)
				return
			}
			assert.Equal(t, "token", decodeData[entity.TokenPair](t, rec).AccessToken)
		})
	}
}
