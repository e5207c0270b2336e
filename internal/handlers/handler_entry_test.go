package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dailyforge/journal_backend/internal/apperrors"
	"github.com/dailyforge/journal_backend/internal/core/domain"
	portssvc "github.com/dailyforge/journal_backend/internal/core/ports/services"
	"github.com/dailyforge/journal_backend/internal/dto"
	"github.com/dailyforge/journal_backend/internal/handlers"
	"github.com/dailyforge/journal_backend/internal/middleware"
	"github.com/dailyforge/journal_backend/internal/utils/validation"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, subject string) (*domain.Entry, error) {
	args := m.Called(ctx, req, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockEntryService) DeleteAllEntries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	jwtSecret        string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EntryHandlerTestSuite) generateTestToken(subject string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "journal-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	// The DTO binding tags need the denylist rule on gin's validator engine.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(validation.RegisterContentRules(v))
	}

	// Use the actual AuthMiddleware so the 401 contract is exercised too.
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEntryService = new(MockEntryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEntryRoutes(v1, suite.mockEntryService)
}

func (suite *EntryHandlerTestSuite) performRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	suite.router.ServeHTTP(rr, req)
	return rr
}

func sampleEntry(subject string) *domain.Entry {
	now := time.Now().UTC()
	return &domain.Entry{
		EntryID:       uuid.NewString(),
		Work:          "shipped the handlers",
		Struggle:      "route grouping",
		Intention:     "write more tests",
		CreatedBy:     subject,
		CreatedAt:     now,
		UpdatedAt:     now,
		SchemaVersion: domain.SchemaVersion,
	}
}

// --- Test Cases ---

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	subject := "test_user"
	token := suite.generateTestToken(subject)
	reqBody := dto.CreateEntryRequest{
		Work:      "shipped the handlers",
		Struggle:  "route grouping",
		Intention: "write more tests",
	}
	expected := sampleEntry(subject)

	suite.mockEntryService.On("CreateEntry", mock.Anything, reqBody, subject).Return(expected, nil).Once()

	rr := suite.performRequest(http.MethodPost, "/api/v1/entries", token, reqBody)

	suite.Equal(http.StatusCreated, rr.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(expected.EntryID, resp.EntryID)
	suite.Equal(expected.Work, resp.Work)
	suite.Equal(domain.SchemaVersion, resp.SchemaVersion)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Unauthorized() {
	rr := suite.performRequest(http.MethodPost, "/api/v1/entries", "", dto.CreateEntryRequest{
		Work: "w", Struggle: "s", Intention: "i",
	})

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_DenylistedFieldRejectedAtBinding() {
	token := suite.generateTestToken("test_user")

	rr := suite.performRequest(http.MethodPost, "/api/v1/entries", token, dto.CreateEntryRequest{
		Work:      "tried to hack it",
		Struggle:  "s",
		Intention: "i",
	})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MissingField() {
	token := suite.generateTestToken("test_user")

	rr := suite.performRequest(http.MethodPost, "/api/v1/entries", token, map[string]string{
		"work": "only work, nothing else",
	})

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_SameDayConflict() {
	subject := "test_user"
	token := suite.generateTestToken(subject)
	reqBody := dto.CreateEntryRequest{Work: "w", Struggle: "s", Intention: "i"}

	suite.mockEntryService.On("CreateEntry", mock.Anything, reqBody, subject).
		Return(nil, fmt.Errorf("entry for this day already exists: %w", apperrors.ErrDuplicate)).Once()

	rr := suite.performRequest(http.MethodPost, "/api/v1/entries", token, reqBody)

	suite.Equal(http.StatusConflict, rr.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_Success() {
	subject := "test_user"
	token := suite.generateTestToken(subject)
	expected := []domain.Entry{*sampleEntry(subject), *sampleEntry(subject)}

	suite.mockEntryService.On("ListEntries", mock.Anything).Return(expected, nil).Once()

	rr := suite.performRequest(http.MethodGet, "/api/v1/entries", token, nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 2)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestListEntries_StoreUnavailable() {
	token := suite.generateTestToken("test_user")

	suite.mockEntryService.On("ListEntries", mock.Anything).
		Return(nil, fmt.Errorf("listing entries: %w", apperrors.ErrStoreUnavailable)).Once()

	rr := suite.performRequest(http.MethodGet, "/api/v1/entries", token, nil)

	suite.Equal(http.StatusServiceUnavailable, rr.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestGetEntry_Success() {
	subject := "test_user"
	token := suite.generateTestToken(subject)
	expected := sampleEntry(subject)

	suite.mockEntryService.On("GetEntryByID", mock.Anything, expected.EntryID).Return(expected, nil).Once()

	rr := suite.performRequest(http.MethodGet, "/api/v1/entries/"+expected.EntryID, token, nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(expected.EntryID, resp.EntryID)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	token := suite.generateTestToken("test_user")
	entryID := uuid.NewString()

	suite.mockEntryService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	rr := suite.performRequest(http.MethodGet, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_Success() {
	subject := "test_user"
	token := suite.generateTestToken(subject)
	expected := sampleEntry(subject)
	newWork := "rewrote the middleware"
	expected.Work = newWork
	reqBody := dto.UpdateEntryRequest{Work: &newWork}

	suite.mockEntryService.On("UpdateEntry", mock.Anything, expected.EntryID, reqBody).
		Return(expected, nil).Once()

	rr := suite.performRequest(http.MethodPatch, "/api/v1/entries/"+expected.EntryID, token, reqBody)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(newWork, resp.Work)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestUpdateEntry_MalformedID() {
	token := suite.generateTestToken("test_user")
	newWork := "anything"
	reqBody := dto.UpdateEntryRequest{Work: &newWork}

	suite.mockEntryService.On("UpdateEntry", mock.Anything, "17", reqBody).
		Return(nil, fmt.Errorf("malformed entry ID: %w", apperrors.ErrValidation)).Once()

	rr := suite.performRequest(http.MethodPatch, "/api/v1/entries/17", token, reqBody)

	suite.Equal(http.StatusBadRequest, rr.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_Success() {
	token := suite.generateTestToken("test_user")
	entryID := uuid.NewString()

	suite.mockEntryService.On("DeleteEntry", mock.Anything, entryID).Return(nil).Once()

	rr := suite.performRequest(http.MethodDelete, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNoContent, rr.Code)
	suite.Empty(rr.Body.Bytes())
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_NotFound() {
	token := suite.generateTestToken("test_user")
	entryID := uuid.NewString()

	suite.mockEntryService.On("DeleteEntry", mock.Anything, entryID).
		Return(apperrors.ErrNotFound).Once()

	rr := suite.performRequest(http.MethodDelete, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNotFound, rr.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestDeleteAllEntries_Success() {
	token := suite.generateTestToken("test_user")

	suite.mockEntryService.On("DeleteAllEntries", mock.Anything).Return(int64(4), nil).Once()

	rr := suite.performRequest(http.MethodDelete, "/api/v1/entries", token, nil)

	suite.Equal(http.StatusOK, rr.Code)
	var resp dto.DeleteAllEntriesResponse
	suite.Require().NoError(json.Unmarshal(rr.Body.Bytes(), &resp))
	suite.Equal(int64(4), resp.Deleted)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestExpiredTokenRejected() {
	claims := jwt.RegisteredClaims{
		Issuer:    "journal-test",
		Subject:   "test_user",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	rr := suite.performRequest(http.MethodGet, "/api/v1/entries", signedString, nil)

	suite.Equal(http.StatusUnauthorized, rr.Code)
	suite.Contains(rr.Body.String(), "expired")
}

// --- Run Suite ---
func TestEntryHandler(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
