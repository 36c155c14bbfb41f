package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/goleak"
)

func TestModule(t *testing.T) {
	assert.NotNil(t, fx.Options(Module))
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
