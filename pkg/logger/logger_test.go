package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranapos/pos-api/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "debug", Service: "kirana-pos"})
	assert.Equal(t, zerolog.DebugLevel, log.Zerolog().GetLevel())
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "verbose"})
	assert.Equal(t, zerolog.InfoLevel, log.Zerolog().GetLevel())
}

func TestComponent_DerivaSublogger(t *testing.T) {
	log := logger.New(logger.Config{Env: "production", Level: "info", Service: "kirana-pos"})
	sub := log.Component("http")
	require.NotNil(t, sub)
	assert.NotSame(t, log, sub)
	assert.Equal(t, log.Zerolog().GetLevel(), sub.Zerolog().GetLevel())
}
