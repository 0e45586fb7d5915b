package application

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/bnema/void-bridge/internal/adapters/stdio"
	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type failingSink struct{}

func (failingSink) Write(any) error {
	return errors.New("broken pipe")
}

func outputLines(buf *bytes.Buffer) []string {
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestBridgeRunScenario(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)
	input := strings.Join([]string{
		"not json",
		"",
		"   ",
		`{"command":"register"}`,
		`{"command":"__shutdown__"}`,
		`{"command":"register"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader(input), 0), stdio.NewSink(&out))
	require.NoError(t, err)

	lines := outputLines(&out)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], `{"error":"Invalid JSON payload: `), lines[0])
	assert.Equal(t, `{"error":"Missing manager configuration"}`, lines[1])
	assert.Equal(t, `{"ok":true,"command":"__shutdown__"}`, lines[2])
	fx.logger.AssertLogged(t, zapcore.InfoLevel, "shutdown requested")
}

func TestBridgeRunRegisterResponse(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)
	manager := mocks.NewMockManager(t)
	fx.store.EXPECT().Load(mockAnyContext(), testStatePath).Return(manager, nil).Once()
	manager.EXPECT().RegisterChunks(mockAnyContext(), []string{"a"}, []string{"alpha"}).Return(nil).Once()
	fx.store.EXPECT().Save(mockAnyContext(), manager, testStatePath).Return(nil).Once()
	manager.EXPECT().Stats().Return(domain.Stats{Count: 1, Capacity: 128, Tick: 1}).Once()
	manager.EXPECT().ConsumeEvents().Return(nil).Once()
	manager.EXPECT().Top(DefaultTopN).Return(nil).Once()

	var out bytes.Buffer
	input := registerLine(configJSON(128), "") + "\n"
	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader(input), 0), stdio.NewSink(&out))
	require.NoError(t, err)

	lines := outputLines(&out)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"stats":{"count":1,"capacity":128,"tick":1`)
	assert.Contains(t, lines[0], `"events":[]`)
	assert.Contains(t, lines[0], `"top":[]`)
	fx.logger.AssertLogged(t, zapcore.InfoLevel, "input closed")
}

func TestBridgeRunOversizedLineContinues(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)
	input := strings.Repeat("x", 64) + "\n" + `{"command":"__shutdown__"}` + "\n"

	var out bytes.Buffer
	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader(input), 32), stdio.NewSink(&out))
	require.NoError(t, err)

	lines := outputLines(&out)
	require.Len(t, lines, 2)
	assert.Equal(t, `{"error":"Invalid JSON payload: request line exceeds size limit (32 bytes)"}`, lines[0])
	assert.Equal(t, `{"ok":true,"command":"__shutdown__"}`, lines[1])
}

func TestBridgeRunEmptyInput(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)

	var out bytes.Buffer
	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader(""), 0), stdio.NewSink(&out))

	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestBridgeRunCanceledContext(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := fx.bridge.Run(ctx, stdio.NewSource(strings.NewReader("not json\n"), 0), stdio.NewSink(&out))

	require.NoError(t, err)
	assert.Empty(t, out.String())
	fx.logger.AssertLogged(t, zapcore.InfoLevel, "bridge interrupted")
}

func TestBridgeRunUnencodableResponseKeepsServing(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)
	manager := mocks.NewMockManager(t)
	fx.store.EXPECT().Load(mockAnyContext(), testStatePath).Return(manager, nil).Once()
	manager.EXPECT().RegisterChunks(mockAnyContext(), []string{"a"}, []string{"alpha"}).Return(nil).Twice()
	fx.store.EXPECT().Save(mockAnyContext(), manager, testStatePath).Return(nil).Twice()
	manager.EXPECT().Stats().Return(domain.Stats{TotalHeat: math.Inf(1)}).Once()
	manager.EXPECT().Stats().Return(domain.Stats{Count: 1}).Once()
	manager.EXPECT().ConsumeEvents().Return(nil).Twice()
	manager.EXPECT().Top(DefaultTopN).Return(nil).Twice()

	input := registerLine(configJSON(128), "") + "\n" + registerLine(configJSON(128), "") + "\n"

	var out bytes.Buffer
	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader(input), 0), stdio.NewSink(&out))
	require.NoError(t, err)

	lines := outputLines(&out)
	require.Len(t, lines, 2)
	assert.Equal(t, `{"error":"Void manager error: encode response: json: unsupported value: +Inf"}`, lines[0])
	assert.Contains(t, lines[1], `"count":1`)
}

// A sink that cannot write is a transport failure and ends the loop.
func TestBridgeRunSinkFailure(t *testing.T) {
	t.Parallel()

	fx := newBridgeFixture(t)

	err := fx.bridge.Run(context.Background(), stdio.NewSource(strings.NewReader("not json\n"), 0), failingSink{})

	require.EqualError(t, err, "broken pipe")
}
