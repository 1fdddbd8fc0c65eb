package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLocalStorage struct {
	mock.Mock
}

type MockLocalStorage_Expecter struct {
	mock *mock.Mock
}

func NewMockLocalStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocalStorage {
	m := &MockLocalStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockLocalStorage) EXPECT() *MockLocalStorage_Expecter {
	return &MockLocalStorage_Expecter{mock: &m.Mock}
}

func (m *MockLocalStorage) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (e *MockLocalStorage_Expecter) Get(ctx interface{}, key interface{}) *mock.Call {
	return e.mock.On("Get", ctx, key)
}

func (m *MockLocalStorage) Set(ctx context.Context, key string, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (e *MockLocalStorage_Expecter) Set(ctx interface{}, key interface{}, value interface{}) *mock.Call {
	return e.mock.On("Set", ctx, key, value)
}

func (m *MockLocalStorage) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (e *MockLocalStorage_Expecter) Remove(ctx interface{}, key interface{}) *mock.Call {
	return e.mock.On("Remove", ctx, key)
}
