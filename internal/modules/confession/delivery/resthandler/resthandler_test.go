package resthandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"church-finder-service/internal/modules/confession/domain"
	mockusecase "church-finder-service/pkg/mocks/modules/confession/usecase"
	mocksharedusecase "church-finder-service/pkg/mocks/shared/usecase"
	"church-finder-service/pkg/shared/schedule"

	"github.com/golangid/candi/candishared"
	mockinterfaces "github.com/golangid/candi/mocks/codebase/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
)

type testCase struct {
	name, reqBody                       string
	wantValidateError, wantUsecaseError error
	wantRespCode                        int
}

var errFoo = errors.New("Something error")

func TestRestHandler_getAllRecurringConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("GetAllRecurringConfession", mock.Anything, mock.Anything).Return(
				[]domain.ResponseRecurringConfession{}, candishared.Meta{}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			res := httptest.NewRecorder()
			handler.getAllRecurringConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_createRecurringConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"dayOfWeek": 6, "startTime": "17:00", "endTime": "18:00", "churchId": "507f191e810c19729de860ea"}`,
			wantRespCode: 201,
		},
		{
			name: "Testcase #2: Negative, payload rejected by schema", reqBody: `{"dayOfWeek": "six"}`,
			wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, window ends before it starts", reqBody: `{"dayOfWeek": 6, "startTime": "18:00", "endTime": "17:00"}`,
			wantUsecaseError: &schedule.ValidationError{Message: "endTime must be greater than startTime"}, wantRespCode: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("CreateRecurringConfession", mock.Anything, mock.Anything).Return(
				domain.ResponseRecurringConfession{}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.reqBody))
			res := httptest.NewRecorder()
			handler.createRecurringConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_updateRecurringConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"dayOfWeek": 2, "startTime": "17:00", "endTime": "18:00"}`,
			wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative", reqBody: `{"dayOfWeek": 2, "startTime": "17:00", "endTime": "18:00"}`,
			wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("UpdateRecurringConfession", mock.Anything, mock.Anything).Return(tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.reqBody))
			res := httptest.NewRecorder()
			handler.updateRecurringConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_deleteRecurringConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative", wantUsecaseError: mongo.ErrNoDocuments, wantRespCode: 404,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("DeleteRecurringConfession", mock.Anything, mock.Anything).Return(tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			res := httptest.NewRecorder()
			handler.deleteRecurringConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_getAllLiveConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative", wantUsecaseError: errFoo, wantRespCode: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("GetAllLiveConfession", mock.Anything, mock.Anything).Return(
				[]domain.ResponseLiveConfession{}, tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			res := httptest.NewRecorder()
			handler.getAllLiveConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_createLiveConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", reqBody: `{"churchId": "507f191e810c19729de860ea"}`,
			wantRespCode: 201,
		},
		{
			name: "Testcase #2: Negative, payload rejected by schema", reqBody: `{"churchId": 1}`,
			wantValidateError: errFoo, wantRespCode: 400,
		},
		{
			name: "Testcase #3: Negative, expiry in the past", reqBody: `{"churchId": "507f191e810c19729de860ea", "expireAt": "2020-01-01T00:00:00Z"}`,
			wantUsecaseError: &schedule.ValidationError{Message: "expireAt must be in the future"}, wantRespCode: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("CreateLiveConfession", mock.Anything, mock.Anything).Return(
				domain.ResponseLiveConfession{}, tt.wantUsecaseError)
			mockValidator := &mockinterfaces.Validator{}
			mockValidator.On("ValidateDocument", mock.Anything, mock.Anything).Return(tt.wantValidateError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc, validator: mockValidator}

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.reqBody))
			res := httptest.NewRecorder()
			handler.createLiveConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}

func TestRestHandler_deleteLiveConfession(t *testing.T) {
	tests := []testCase{
		{
			name: "Testcase #1: Positive", wantRespCode: 200,
		},
		{
			name: "Testcase #2: Negative, malformed id", wantUsecaseError: &schedule.ValidationError{Message: "invalid id format"}, wantRespCode: 400,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			confessionUsecase := &mockusecase.ConfessionUsecase{}
			confessionUsecase.On("DeleteLiveConfession", mock.Anything, mock.Anything).Return(tt.wantUsecaseError)

			uc := &mocksharedusecase.Usecase{}
			uc.On("Confession").Return(confessionUsecase)

			handler := RestHandler{uc: uc}

			req := httptest.NewRequest(http.MethodDelete, "/", nil)
			res := httptest.NewRecorder()
			handler.deleteLiveConfession(res, req)
			assert.Equal(t, tt.wantRespCode, res.Code)
		})
	}
}
