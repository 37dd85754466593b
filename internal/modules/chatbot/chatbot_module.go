package chatbot

import (
	"context"

	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/codebase/factory/types"
	"github.com/golangid/weathertogo/codebase/interfaces"
	"github.com/golangid/weathertogo/config/env"
	"github.com/golangid/weathertogo/internal/modules/chatbot/delivery/resthandler"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
	"github.com/golangid/weathertogo/internal/modules/chatbot/repository"
	"github.com/golangid/weathertogo/internal/modules/chatbot/usecase"
	"github.com/golangid/weathertogo/logger"
)

const (
	// Chatbot module name
	Chatbot types.Module = "Chatbot"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
	webhookPool candiutils.WorkerPool[domain.WebhookJob]
}

// NewModule module constructor
func NewModule(cfg env.Env, validator interfaces.Validator) *Module {
	repo := repository.NewRepository(cfg)
	uc := usecase.NewChatbotUsecase(repo, validator,
		usecase.SetOracleTimeout(cfg.OracleTimeout),
		usecase.SetMaxGoroutines(cfg.MaxGoroutines),
	)

	webhookPool := candiutils.NewWorkerPool[domain.WebhookJob](cfg.MaxGoroutines, cfg.WebhookQueueSize)
	webhookPool.Dispatch(context.Background(), webhookJobHandler(uc))

	var mod Module
	mod.webhookPool = webhookPool
	mod.restHandler = resthandler.NewRestHandler(uc, validator, webhookPool, cfg.VerifyToken)
	return &mod
}

// RESTHandler method
func (m *Module) RESTHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() types.Module {
	return Chatbot
}

// Disconnect stop accepting webhook job and wait pending job routed
func (m *Module) Disconnect(ctx context.Context) error {
	deferFunc := logger.LogWithDefer("chatbot: drain webhook worker pool...")
	defer deferFunc()

	done := make(chan struct{})
	go func() {
		defer close(done)
		m.webhookPool.Finish()
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// webhookJobHandler route accepted delivery with detached context carrying its request id
func webhookJobHandler(uc usecase.ChatbotUsecase) func(context.Context, domain.WebhookJob) {
	return func(ctx context.Context, job domain.WebhookJob) {
		ctx = candishared.SetToContext(ctx, candishared.ContextKeyRequestID, job.RequestID)
		if err := uc.ProcessWebhook(ctx, job.Request); err != nil {
			logger.LogEf("[request_id:%s] process webhook: %v", job.RequestID, err)
		}
	}
}
