package register_client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarwashService/internal/domain"
	registerClient "github.com/m04kA/SMC-CarwashService/internal/usecase/register_client"
)

type stubLogger struct{}

func (stubLogger) Info(string, ...interface{})  {}
func (stubLogger) Warn(string, ...interface{})  {}
func (stubLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *registerClient.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, _ *registerClient.Request) (*registerClient.Response, error) {
	return s.resp, s.err
}

func post(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/car/register-new-client", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"customerName":"כהן","driverName":"דוד","carNum":"1234567","carType":"פרטי","phone":"0501234567"}`

func TestHandle_Created(t *testing.T) {
	h := NewHandler(&stubUseCase{
		resp: &registerClient.Response{Record: domain.CustomerRecord{
			CarNum:       "1234567",
			Phone:        "0501234567",
			DriverName:   "דוד",
			CustomerName: "כהן",
			CarType:      "פרטי",
		}},
	}, stubLogger{})

	rec := post(t, h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"carNum":"1234567"`)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, stubLogger{})

	assert.Equal(t, http.StatusBadRequest, post(t, h, `{broken`).Code)
	assert.Equal(t, http.StatusBadRequest, post(t, h, `{"unknown":"field"}`).Code)
}

func TestHandle_ValidationError(t *testing.T) {
	h := NewHandler(&stubUseCase{err: registerClient.ErrInvalidInput}, stubLogger{})

	assert.Equal(t, http.StatusUnprocessableEntity, post(t, h, validBody).Code)
}

func TestHandle_Conflict(t *testing.T) {
	h := NewHandler(&stubUseCase{err: registerClient.ErrAlreadyRegistered}, stubLogger{})

	assert.Equal(t, http.StatusConflict, post(t, h, validBody).Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&stubUseCase{err: registerClient.ErrInternal}, stubLogger{})

	assert.Equal(t, http.StatusInternalServerError, post(t, h, validBody).Code)
}
