package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	require.Equal(t, logrus.DebugLevel, New("local").GetLevel())
	require.Equal(t, logrus.DebugLevel, New("DEV").GetLevel())
	require.Equal(t, logrus.InfoLevel, New("production").GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, New("staging").Formatter)
}
