package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmokeScenarioPasses(t *testing.T) {
	require.NoError(t, run(context.Background(), "smoke.og"))
}

func TestSmokeScenarioRejectsBadName(t *testing.T) {
	require.Error(t, run(context.Background(), "smoke.eth"))
}
