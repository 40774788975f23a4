package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "pos/internal/delivery/api/middleware"
	"pos/internal/delivery/api/response"
	"pos/internal/delivery/api/validator"
	mockusecase "pos/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	catalogUC  *mockusecase.MockCatalogUsecase
	cartUC     *mockusecase.MockCartUsecase
	checkoutUC *mockusecase.MockCheckoutUsecase
	orderUC    *mockusecase.MockOrderUsecase
	reportUC   *mockusecase.MockReportUsecase
	settingsUC *mockusecase.MockSettingsUsecase
	backupUC   *mockusecase.MockBackupUsecase
	sessionUC  *mockusecase.MockSessionUsecase
}

func newHandlerFixtures(t *testing.T) handlerFixtures {
	return handlerFixtures{
		catalogUC:  mockusecase.NewMockCatalogUsecase(t),
		cartUC:     mockusecase.NewMockCartUsecase(t),
		checkoutUC: mockusecase.NewMockCheckoutUsecase(t),
		orderUC:    mockusecase.NewMockOrderUsecase(t),
		reportUC:   mockusecase.NewMockReportUsecase(t),
		settingsUC: mockusecase.NewMockSettingsUsecase(t),
		backupUC:   mockusecase.NewMockBackupUsecase(t),
		sessionUC:  mockusecase.NewMockSessionUsecase(t),
	}
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))

	return out
}
