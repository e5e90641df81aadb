package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestnav/guestnav/internal/pkg/models"
	"github.com/guestnav/guestnav/services/guidance"
	"github.com/guestnav/guestnav/services/guidance/mocks"
)

func setupHandlerTest(t *testing.T) (*SessionHandler, *mocks.MockGuidanceUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockGuidanceUC(ctrl)
	return NewSessionHandler(uc), uc
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartSession(t *testing.T) {
	handler, uc := setupHandlerTest(t)
	e := echo.New()

	body := `{"courier_id":"courier-1","order_id":"order-1","target":{"latitude":36.089,"longitude":-115.176,"floor_level":2,"label":"Table 12"}}`
	c, rec := newContext(e, http.MethodPost, "/sessions", body)

	uc.EXPECT().StartSession(gomock.Any(), "courier-1", "order-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, courierID, orderID string, target models.Target) (*models.NavigationSession, error) {
			assert.Equal(t, 36.089, target.Latitude)
			assert.Equal(t, "Table 12", target.Label)
			return &models.NavigationSession{
				SessionID: "session-1",
				CourierID: courierID,
				OrderID:   orderID,
				Target:    target,
			}, nil
		})

	require.NoError(t, handler.StartSession(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "session-1")
}

func TestStartSessionMissingIDs(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodPost, "/sessions", `{"courier_id":"courier-1"}`)

	require.NoError(t, handler.StartSession(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	handler, uc := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodGet, "/sessions/courier-1", "")
	c.SetParamNames("courier_id")
	c.SetParamValues("courier-1")

	uc.EXPECT().GetSession(gomock.Any(), "courier-1").Return(nil, guidance.ErrSessionNotFound)

	require.NoError(t, handler.GetSession(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStopSession(t *testing.T) {
	handler, uc := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodDelete, "/sessions/courier-1", "")
	c.SetParamNames("courier_id")
	c.SetParamValues("courier-1")

	uc.EXPECT().StopSession(gomock.Any(), "courier-1").Return(nil)

	require.NoError(t, handler.StopSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
