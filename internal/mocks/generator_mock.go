package mocks

import (
	"context"

	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/stretchr/testify/mock"
)

// MockTextGenerator is a mock type for the backroom.TextGenerator type
type MockTextGenerator struct {
	mock.Mock
}

// GenerateLevel provides a mock function with given fields: ctx, prompt
func (_m *MockTextGenerator) GenerateLevel(ctx context.Context, prompt string) (*backroom.Level, error) {
	ret := _m.Called(ctx, prompt)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*backroom.Level, error)); ok {
		return rf(ctx, prompt)
	}

	var r0 *backroom.Level
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*backroom.Level)
	}

	return r0, ret.Error(1)
}

// NewMockTextGenerator creates a new instance of MockTextGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTextGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTextGenerator {
	m := &MockTextGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ backroom.TextGenerator = (*MockTextGenerator)(nil)

// MockImageGenerator is a mock type for the backroom.ImageGenerator type
type MockImageGenerator struct {
	mock.Mock
}

// GenerateImage provides a mock function with given fields: ctx, level
func (_m *MockImageGenerator) GenerateImage(ctx context.Context, level *backroom.Level) (string, error) {
	ret := _m.Called(ctx, level)

	if rf, ok := ret.Get(0).(func(context.Context, *backroom.Level) (string, error)); ok {
		return rf(ctx, level)
	}

	return ret.String(0), ret.Error(1)
}

// NewMockImageGenerator creates a new instance of MockImageGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageGenerator {
	m := &MockImageGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ backroom.ImageGenerator = (*MockImageGenerator)(nil)
