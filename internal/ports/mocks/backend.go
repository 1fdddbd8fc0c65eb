package mocks

import (
	"context"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockAuthBackend struct {
	mock.Mock
}

type MockAuthBackend_Expecter struct {
	mock *mock.Mock
}

func NewMockAuthBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthBackend {
	m := &MockAuthBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAuthBackend) EXPECT() *MockAuthBackend_Expecter {
	return &MockAuthBackend_Expecter{mock: &m.Mock}
}

func (m *MockAuthBackend) Login(ctx context.Context, credentials domain.Credentials) (domain.LoginResponse, error) {
	args := m.Called(ctx, credentials)
	return args.Get(0).(domain.LoginResponse), args.Error(1)
}

func (e *MockAuthBackend_Expecter) Login(ctx interface{}, credentials interface{}) *mock.Call {
	return e.mock.On("Login", ctx, credentials)
}

func (m *MockAuthBackend) Signup(ctx context.Context, request domain.SignupRequest) (domain.SignupResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(domain.SignupResponse), args.Error(1)
}

func (e *MockAuthBackend_Expecter) Signup(ctx interface{}, request interface{}) *mock.Call {
	return e.mock.On("Signup", ctx, request)
}

type MockProfileBackend struct {
	mock.Mock
}

type MockProfileBackend_Expecter struct {
	mock *mock.Mock
}

func NewMockProfileBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileBackend {
	m := &MockProfileBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileBackend) EXPECT() *MockProfileBackend_Expecter {
	return &MockProfileBackend_Expecter{mock: &m.Mock}
}

func (m *MockProfileBackend) GetUserProfile(ctx context.Context) (domain.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func (e *MockProfileBackend_Expecter) GetUserProfile(ctx interface{}) *mock.Call {
	return e.mock.On("GetUserProfile", ctx)
}

type MockMediaBackend struct {
	mock.Mock
}

type MockMediaBackend_Expecter struct {
	mock *mock.Mock
}

func NewMockMediaBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaBackend {
	m := &MockMediaBackend{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMediaBackend) EXPECT() *MockMediaBackend_Expecter {
	return &MockMediaBackend_Expecter{mock: &m.Mock}
}

func (m *MockMediaBackend) GenerateImage(ctx context.Context, prompt string, settings domain.ImageSettings) domain.MediaEnvelope {
	return m.Called(ctx, prompt, settings).Get(0).(domain.MediaEnvelope)
}

func (e *MockMediaBackend_Expecter) GenerateImage(ctx interface{}, prompt interface{}, settings interface{}) *mock.Call {
	return e.mock.On("GenerateImage", ctx, prompt, settings)
}

func (m *MockMediaBackend) GenerateVideo(ctx context.Context, prompt string, settings domain.VideoSettings) domain.MediaEnvelope {
	return m.Called(ctx, prompt, settings).Get(0).(domain.MediaEnvelope)
}

func (e *MockMediaBackend_Expecter) GenerateVideo(ctx interface{}, prompt interface{}, settings interface{}) *mock.Call {
	return e.mock.On("GenerateVideo", ctx, prompt, settings)
}

func (m *MockMediaBackend) GenerateImageToImage(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToImageSettings) domain.MediaEnvelope {
	return m.Called(ctx, image, prompt, settings).Get(0).(domain.MediaEnvelope)
}

func (e *MockMediaBackend_Expecter) GenerateImageToImage(ctx interface{}, image interface{}, prompt interface{}, settings interface{}) *mock.Call {
	return e.mock.On("GenerateImageToImage", ctx, image, prompt, settings)
}

func (m *MockMediaBackend) GenerateImageToVideo(ctx context.Context, image *domain.SourceImage, prompt string, settings domain.ImageToVideoSettings) domain.MediaEnvelope {
	return m.Called(ctx, image, prompt, settings).Get(0).(domain.MediaEnvelope)
}

func (e *MockMediaBackend_Expecter) GenerateImageToVideo(ctx interface{}, image interface{}, prompt interface{}, settings interface{}) *mock.Call {
	return e.mock.On("GenerateImageToVideo", ctx, image, prompt, settings)
}

func (m *MockMediaBackend) CheckGenerationStatus(ctx context.Context, id string) domain.MediaEnvelope {
	return m.Called(ctx, id).Get(0).(domain.MediaEnvelope)
}

func (e *MockMediaBackend_Expecter) CheckGenerationStatus(ctx interface{}, id interface{}) *mock.Call {
	return e.mock.On("CheckGenerationStatus", ctx, id)
}
