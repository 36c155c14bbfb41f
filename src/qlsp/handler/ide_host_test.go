package handler

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	notifier "github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client"
	"github.com/uber/amazonq-lsp/src/qlsp/gateway/ide-client/ideclientmock"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConnectHost(t *testing.T) {
	t.Run("stdio disabled", func(t *testing.T) {
		provider, err := config.NewStaticProvider(map[string]interface{}{
			"host": map[string]interface{}{"stdio": false},
		})
		require.NoError(t, err)

		lc := fxtest.NewLifecycle(t)
		gw := ideclientmock.NewMockGateway(gomock.NewController(t))
		require.NoError(t, connectHost(provider, lc, gw, zap.NewNop().Sugar()))
		lc.RequireStart().RequireStop()
	})

	t.Run("invalid config", func(t *testing.T) {
		provider, err := config.NewStaticProvider(map[string]interface{}{
			"host": []interface{}{1},
		})
		require.NoError(t, err)

		gw := ideclientmock.NewMockGateway(gomock.NewController(t))
		assert.Error(t, connectHost(provider, fxtest.NewLifecycle(t), gw, zap.NewNop().Sugar()))
	})
}

func TestRegisterHost(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.DebugLevel)
	gw := notifier.New(zap.NewNop())
	local, remote := net.Pipe()

	received := make(chan string, 1)
	ide := jsonrpc2.NewConn(jsonrpc2.NewStream(remote))
	ide.Go(ctx, func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		received <- req.Method()
		return reply(ctx, nil, nil)
	})

	lc := fxtest.NewLifecycle(t)
	registerHost(lc, gw, local, zap.New(core).Sugar())
	lc.RequireStart()

	require.NoError(t, gw.ShowMessage(ctx, &protocol.ShowMessageParams{Type: protocol.MessageTypeInfo, Message: "signed in"}))
	select {
	case method := <-received:
		assert.Equal(t, protocol.MethodWindowShowMessage, method)
	case <-time.After(2 * time.Second):
		t.Fatal("IDE host did not receive the notification")
	}

	lc.RequireStop()
	<-ide.Done()

	_, err := gw.ShowMessageRequest(ctx, &protocol.ShowMessageRequestParams{Type: protocol.MessageTypeInfo, Message: "retry?"})
	assert.ErrorIs(t, err, notifier.ErrNoHost)
	assert.Eventually(t, func() bool {
		return logs.FilterMessage("IDE host disconnected").Len() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRegisterHostFailure(t *testing.T) {
	local, remote := net.Pipe()
	defer remote.Close()

	gw := ideclientmock.NewMockGateway(gomock.NewController(t))
	gw.EXPECT().RegisterHost(gomock.Any(), gomock.Any()).Return(errors.New("already registered"))

	lc := fxtest.NewLifecycle(t)
	registerHost(lc, gw, local, zap.NewNop().Sugar())
	assert.ErrorContains(t, lc.Start(context.Background()), "registering IDE host: already registered")
}
