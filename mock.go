package treelog

import (
	"github.com/stretchr/testify/mock"
)

// MockSink is a testify-based mock implementation of the Sink interface,
// exported so consumers can assert on the records their code emits.
type MockSink struct {
	mock.Mock
}

var _ Sink = (*MockSink)(nil)

func NewMockSink() *MockSink {
	return &MockSink{}
}

func (m *MockSink) Accept(r *Record) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockSink) Close() error {
	args := m.Called()
	return args.Error(0)
}
