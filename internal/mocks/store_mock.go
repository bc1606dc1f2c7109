package mocks

import (
	"context"

	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/stretchr/testify/mock"
)

// MockStore is a mock type for the backroom.Store type
type MockStore struct {
	mock.Mock
}

// SaveLevel provides a mock function with given fields: ctx, level, authorName
func (_m *MockStore) SaveLevel(ctx context.Context, level *backroom.Level, authorName string) (backroom.SaveResult, error) {
	ret := _m.Called(ctx, level, authorName)

	if rf, ok := ret.Get(0).(func(context.Context, *backroom.Level, string) (backroom.SaveResult, error)); ok {
		return rf(ctx, level, authorName)
	}

	var r0 backroom.SaveResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(backroom.SaveResult)
	}

	return r0, ret.Error(1)
}

// ListLevels provides a mock function with given fields: ctx
func (_m *MockStore) ListLevels(ctx context.Context) ([]*backroom.Level, error) {
	ret := _m.Called(ctx)

	var r0 []*backroom.Level
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*backroom.Level)
	}

	return r0, ret.Error(1)
}

// GetLevel provides a mock function with given fields: ctx, id
func (_m *MockStore) GetLevel(ctx context.Context, id string) (*backroom.Level, error) {
	ret := _m.Called(ctx, id)

	var r0 *backroom.Level
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backroom.Level)
	}

	return r0, ret.Error(1)
}

// NewMockStore creates a new instance of MockStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStore {
	m := &MockStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ backroom.Store = (*MockStore)(nil)
