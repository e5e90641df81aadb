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
	"github.com/guestnav/guestnav/services/position/mocks"
	"github.com/guestnav/guestnav/services/position/usecase"
)

func setupHandlerTest(t *testing.T) (*PositionHandler, *mocks.MockPositionUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockPositionUC(ctrl)
	return NewPositionHandler(uc), uc
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStartTracking(t *testing.T) {
	handler, uc := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodPost, "/couriers/courier-1/track", "")
	c.SetParamNames("id")
	c.SetParamValues("courier-1")

	uc.EXPECT().StartTracking(gomock.Any(), "courier-1").Return(nil)

	require.NoError(t, handler.StartTracking(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitGPSReport(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		wantStatus int
	}{
		{
			name:       "accepted",
			body:       `{"latitude":36.089,"longitude":-115.176,"altitude_meters":618.2,"accuracy_meters":9.0}`,
			ucErr:      nil,
			wantStatus: http.StatusAccepted,
		},
		{
			name:       "courier not tracked",
			body:       `{"latitude":36.089,"longitude":-115.176}`,
			ucErr:      usecase.ErrCourierNotTracked,
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, uc := setupHandlerTest(t)
			e := echo.New()

			c, rec := newContext(e, http.MethodPost, "/couriers/courier-1/gps", tt.body)
			c.SetParamNames("id")
			c.SetParamValues("courier-1")

			uc.EXPECT().SubmitGPSReport(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ interface{}, reading *models.ProviderReading) error {
					assert.Equal(t, "courier-1", reading.CourierID)
					assert.False(t, reading.Timestamp.IsZero())
					return tt.ucErr
				})

			require.NoError(t, handler.SubmitGPSReport(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetLastSample_NotFound(t *testing.T) {
	handler, uc := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodGet, "/couriers/courier-1/position", "")
	c.SetParamNames("id")
	c.SetParamValues("courier-1")

	uc.EXPECT().GetLastSample(gomock.Any(), "courier-1").
		Return(nil, assert.AnError)

	require.NoError(t, handler.GetLastSample(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFindNearbyCouriers_InvalidParams(t *testing.T) {
	handler, _ := setupHandlerTest(t)
	e := echo.New()

	c, rec := newContext(e, http.MethodGet, "/couriers/nearby?latitude=abc", "")

	require.NoError(t, handler.FindNearbyCouriers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
