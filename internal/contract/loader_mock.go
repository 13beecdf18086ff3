package contract

import (
	"context"

	"github.com/huangsam/healthdash/schema"
	"github.com/stretchr/testify/mock"
)

// MockTableLoader is a testify mock for TableLoader.
type MockTableLoader struct {
	mock.Mock
}

var _ TableLoader = &MockTableLoader{} // Compile-time check

// Load implements the TableLoader interface.
func (m *MockTableLoader) Load(ctx context.Context, path string) (*schema.WideTable, error) {
	ret := m.Called(ctx, path)
	table, _ := ret.Get(0).(*schema.WideTable)
	return table, ret.Error(1)
}
