package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogrusAdapter(t *testing.T) {
	logger := NewLogrusAdapter("debug", "json")
	require.NotNil(t, logger)

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.DebugLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapter_InvalidLevelDefaultsToInfo(t *testing.T) {
	logger := NewLogrusAdapter("chatty", "text")
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestNewLogrusAdapterFromLogger_NilFallsBack(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapterFromLogger(nil))
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{
		{Key: "category", Value: "Food"},
		{Key: "count", Value: 3},
	})
	assert.Equal(t, logrus.Fields{"category": "Food", "count": 3}, fields)
}

func TestMockLogger(t *testing.T) {
	mock := &MockLogger{}
	mock.Info("loaded store", Field{Key: "count", Value: 2})
	mock.Warn("store missing")

	assert.True(t, mock.HasEntry("INFO", "loaded store"))
	assert.True(t, mock.HasEntry("WARN", "store missing"))
	assert.False(t, mock.HasEntry("ERROR", "loaded store"))
	require.Len(t, mock.Entries, 2)
	assert.Equal(t, "count", mock.Entries[0].Fields[0].Key)
}
