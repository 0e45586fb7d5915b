package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/logging"
	"github.com/bnema/void-bridge/internal/ports"
	"go.uber.org/zap"
)

const DefaultTopN = 5

type Options struct {
	Factory   ports.ManagerFactory
	Store     ports.StateStore
	StatePath string
	TopN      int
	Logger    *logging.Logger
}

// Bridge processes requests one at a time against a single cached manager.
// It owns its Session; nothing else reads or writes it.
type Bridge struct {
	cache     *ManagerCache
	store     ports.StateStore
	statePath string
	topN      int
	logger    *logging.Logger
	session   Session
}

func NewBridge(opts Options) *Bridge {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	return &Bridge{
		cache:     NewManagerCache(opts.Factory, opts.Store, opts.StatePath, logger),
		store:     opts.Store,
		statePath: opts.StatePath,
		topN:      topN,
		logger:    logger,
	}
}

func (b *Bridge) Session() Session {
	return b.session
}

// Run reads requests until the shutdown command or end of input, writing one
// response per request. Only transport failures end it with an error.
func (b *Bridge) Run(ctx context.Context, source ports.RequestSource, sink ports.ResponseSink) error {
	b.logger.Info(ctx, "bridge started", zap.String("state_path", b.statePath))

	for seq := int64(1); ; seq++ {
		if err := ctx.Err(); err != nil {
			b.logger.Info(ctx, "bridge interrupted", zap.Error(err))
			return nil
		}

		reqCtx := logging.WithRequestSeq(ctx, seq)

		var (
			response any
			done     bool
		)
		line, err := source.Next()
		switch {
		case errors.Is(err, io.EOF):
			b.logger.Info(ctx, "input closed, bridge stopping")
			return nil
		case errors.Is(err, ports.ErrLineTooLong):
			response = b.fail(reqCtx, newRequestError(MalformedPayload, err))
		case err != nil:
			return err
		default:
			response, done = b.Handle(reqCtx, line)
		}

		if err := sink.Write(response); err != nil {
			return err
		}
		if done {
			b.logger.Info(ctx, "shutdown requested, bridge stopping")
			return nil
		}
	}
}

// Handle processes one request line. done is true only for the shutdown command.
func (b *Bridge) Handle(ctx context.Context, line string) (response any, done bool) {
	b.logger.Trace(ctx, "request received", zap.String("line", line))

	response, done, err := b.process(ctx, line)
	if err == nil {
		err = encodable(response)
	}
	if err != nil {
		return b.fail(ctx, asRequestError(err)), false
	}
	return response, done
}

func (b *Bridge) process(ctx context.Context, line string) (any, bool, error) {
	req, err := parseRequest(line)
	if err != nil {
		return nil, false, newRequestError(MalformedPayload, err)
	}

	command, isString := req.command()
	if isString && command == ShutdownCommand {
		return ShutdownResponse{OK: true, Command: ShutdownCommand}, true, nil
	}

	config, ok := req.config()
	if !ok {
		return nil, false, newRequestError(MissingConfiguration, domain.ErrMissingConfiguration)
	}

	var session Session
	err = recovered(func() error {
		var resolveErr error
		session, resolveErr = b.cache.Resolve(ctx, b.session, config)
		return resolveErr
	})
	if err != nil {
		return nil, false, newRequestError(ManagerInitialization, err)
	}
	b.session = session

	var response any
	err = recovered(func() error {
		var dispatchErr error
		response, dispatchErr = b.dispatch(ctx, session, command, isString, req)
		return dispatchErr
	})
	if err != nil {
		return nil, false, err
	}

	return response, false, nil
}

// dispatch runs after resolution, so an unsupported command still creates or
// refreshes the cached manager.
func (b *Bridge) dispatch(ctx context.Context, session Session, command string, isString bool, req request) (any, error) {
	if isString && command == RegisterCommand {
		return b.registerAndReinforce(ctx, session.Manager(), req)
	}

	return nil, newRequestError(UnsupportedCommand, errors.New(command))
}

// encodable reports a response the sink could not write, so it becomes an
// error response instead of a transport failure.
func encodable(response any) error {
	if _, err := json.Marshal(response); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}

func (b *Bridge) fail(ctx context.Context, err *RequestError) ErrorResponse {
	b.logger.Warn(ctx, "request failed",
		zap.String("kind", err.Kind.String()),
		zap.String("error", err.Message()))
	return errorResponse(err)
}

func (b *Bridge) persist(ctx context.Context, manager ports.Manager) error {
	if err := b.store.Save(ctx, manager, b.statePath); err != nil {
		return fmt.Errorf("persist manager state: %w", err)
	}
	b.logger.Debug(ctx, "persisted manager state", zap.String("path", b.statePath))
	return nil
}
