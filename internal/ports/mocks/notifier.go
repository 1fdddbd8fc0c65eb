package mocks

import (
	"context"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

type MockNotifier_Expecter struct {
	mock *mock.Mock
}

func NewMockNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) EXPECT() *MockNotifier_Expecter {
	return &MockNotifier_Expecter{mock: &m.Mock}
}

func (m *MockNotifier) Success(message string) {
	m.Called(message)
}

func (e *MockNotifier_Expecter) Success(message interface{}) *mock.Call {
	return e.mock.On("Success", message)
}

func (m *MockNotifier) Error(message string) {
	m.Called(message)
}

func (e *MockNotifier_Expecter) Error(message interface{}) *mock.Call {
	return e.mock.On("Error", message)
}

type MockHistoryRepository struct {
	mock.Mock
}

type MockHistoryRepository_Expecter struct {
	mock *mock.Mock
}

func NewMockHistoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryRepository {
	m := &MockHistoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHistoryRepository) EXPECT() *MockHistoryRepository_Expecter {
	return &MockHistoryRepository_Expecter{mock: &m.Mock}
}

func (m *MockHistoryRepository) Append(ctx context.Context, record domain.GenerationRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (e *MockHistoryRepository_Expecter) Append(ctx interface{}, record interface{}) *mock.Call {
	return e.mock.On("Append", ctx, record)
}

func (m *MockHistoryRepository) List(ctx context.Context) ([]domain.GenerationRecord, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]domain.GenerationRecord)
	return records, args.Error(1)
}

func (e *MockHistoryRepository_Expecter) List(ctx interface{}) *mock.Call {
	return e.mock.On("List", ctx)
}

type MockClipboard struct {
	mock.Mock
}

type MockClipboard_Expecter struct {
	mock *mock.Mock
}

func NewMockClipboard(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClipboard {
	m := &MockClipboard{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockClipboard) EXPECT() *MockClipboard_Expecter {
	return &MockClipboard_Expecter{mock: &m.Mock}
}

func (m *MockClipboard) WriteAll(text string) error {
	return m.Called(text).Error(0)
}

func (e *MockClipboard_Expecter) WriteAll(text interface{}) *mock.Call {
	return e.mock.On("WriteAll", text)
}

type MockPublisher struct {
	mock.Mock
}

type MockPublisher_Expecter struct {
	mock *mock.Mock
}

func NewMockPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPublisher {
	m := &MockPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPublisher) EXPECT() *MockPublisher_Expecter {
	return &MockPublisher_Expecter{mock: &m.Mock}
}

func (m *MockPublisher) Publish(ctx context.Context, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, data, contentType)
	return args.String(0), args.Error(1)
}

func (e *MockPublisher_Expecter) Publish(ctx interface{}, data interface{}, contentType interface{}) *mock.Call {
	return e.mock.On("Publish", ctx, data, contentType)
}
