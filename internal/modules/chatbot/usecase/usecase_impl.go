package usecase

import (
	"context"
	"fmt"

	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/codebase/interfaces"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
	"github.com/golangid/weathertogo/internal/modules/chatbot/repository"
	repointerfaces "github.com/golangid/weathertogo/internal/modules/chatbot/repository/interfaces"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
	"golang.org/x/sync/errgroup"
)

type chatbotUsecaseImpl struct {
	opt           option
	weatherRepo   repointerfaces.Weather
	trafficRepo   repointerfaces.Traffic
	messengerRepo repointerfaces.Messenger
	validator     interfaces.Validator
}

// NewChatbotUsecase usecase impl constructor
func NewChatbotUsecase(repo *repository.Repository, validator interfaces.Validator, opts ...OptionFunc) ChatbotUsecase {
	uc := &chatbotUsecaseImpl{
		opt:           getDefaultOption(),
		weatherRepo:   repo.Weather,
		trafficRepo:   repo.Traffic,
		messengerRepo: repo.Messenger,
		validator:     validator,
	}
	for _, opt := range opts {
		opt(&uc.opt)
	}
	return uc
}

func (uc *chatbotUsecaseImpl) ProcessWebhook(ctx context.Context, request domain.WebhookRequest) error {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:ProcessWebhook")
	defer trace.Finish()
	ctx = trace.Context()

	trace.SetTag("request_id", candishared.ParseRequestIDFromContext(ctx))
	trace.SetTag("entries", len(request.Entry))

	// events of the same sender keep delivery order, different senders are routed concurrently
	var senders []string
	bySender := make(map[string][]domain.MessagingEvent)
	for _, entry := range request.Entry {
		event, ok := entry.FirstEvent()
		if !ok {
			logger.LogWf("%s entry %s has no messaging event", logPrefix(ctx), entry.ID)
			continue
		}
		if _, exist := bySender[event.Sender.ID]; !exist {
			senders = append(senders, event.Sender.ID)
		}
		bySender[event.Sender.ID] = append(bySender[event.Sender.ID], event)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(uc.opt.maxGoroutines)
	for _, senderID := range senders {
		events := bySender[senderID]
		eg.Go(func() error {
			for _, event := range events {
				if err := ctx.Err(); err != nil {
					return err
				}
				uc.RouteEvent(ctx, event)
			}
			return nil
		})
	}

	err := eg.Wait()
	trace.SetError(err)
	return err
}

func (uc *chatbotUsecaseImpl) RouteEvent(ctx context.Context, event domain.MessagingEvent) {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:RouteEvent")
	defer trace.Finish()
	ctx = trace.Context()

	kind := event.Kind()
	trace.SetTag("event.kind", string(kind))

	candihelper.TryCatch{
		Try: func() {
			var reply domain.OutboundMessage
			switch kind {
			case domain.KindMessage:
				reply = uc.ComposeForMessage(ctx, *event.Message)
			case domain.KindPostback:
				reply = uc.ComposeForPostback(ctx, *event.Postback)
			default:
				logger.LogWf("%s drop event from %s: neither message nor postback", logPrefix(ctx), event.Sender.ID)
				return
			}

			if err := uc.SendMessage(ctx, event.Sender.ID, reply); err != nil {
				trace.SetError(err)
			}
		},
		Catch: func(err error) {
			trace.SetError(err)
			logger.LogEf("%s route event panic: %v", logPrefix(ctx), err)
		},
	}.Do()
}

func (uc *chatbotUsecaseImpl) ComposeForMessage(ctx context.Context, message domain.Message) domain.OutboundMessage {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:ComposeForMessage")
	defer trace.Finish()
	ctx = trace.Context()

	switch variant := message.Classify().(type) {
	case domain.TextMessage:
		trace.SetTag("variant", "text")
		return domain.NewTextMessage(uc.IsCurrentlyRaining(ctx).WeatherText())

	case domain.LocationAttachment:
		trace.SetTag("variant", "location")
		if err := uc.validator.ValidateStruct(variant.Coordinates); err != nil {
			logger.LogWf("%s invalid shared location %+v: %v", logPrefix(ctx), variant.Coordinates, err)
			break
		}
		weather, advisory := uc.weatherAndAdvisory(ctx, variant.Coordinates)
		return domain.NewTextMessage(domain.TextLatestInfoPrefix + weather.WeatherText() + " " + advisory.Message)

	case domain.ImageAttachment:
		trace.SetTag("variant", "image")
		return domain.NewGenericTemplateMessage(domain.TemplateElement{
			Title:    domain.TextConfirmImageTitle,
			Subtitle: domain.TextConfirmImageSubtitle,
			ImageURL: variant.URL,
			Buttons: []domain.Button{
				{Type: domain.ButtonTypePostback, Title: domain.TextButtonYes, Payload: domain.PostbackYes},
				{Type: domain.ButtonTypePostback, Title: domain.TextButtonNo, Payload: domain.PostbackNo},
			},
		})

	case domain.UnrecognizedAttachment:
		trace.SetTag("variant", "unrecognized")
		trace.SetTag("attachment.type", variant.Type)
	}

	return domain.NewTextMessage(domain.TextLatestInfoPrefix + uc.IsCurrentlyRaining(ctx).WeatherText())
}

func (uc *chatbotUsecaseImpl) ComposeForPostback(ctx context.Context, postback domain.Postback) domain.OutboundMessage {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:ComposeForPostback")
	defer trace.Finish()
	trace.SetTag("payload", postback.Payload)

	switch variant := postback.Classify().(type) {
	case domain.KnownPostback:
		switch variant.Payload {
		case domain.PostbackYes:
			return domain.NewTextMessage(domain.TextThanks)
		case domain.PostbackNo:
			return domain.NewTextMessage(domain.TextTryAnother)
		case domain.PostbackInitial:
			return domain.NewLocationPromptMessage(domain.TextOnboarding)
		}
	case domain.UnknownPostback:
		logger.LogWf("%s unknown postback payload %q", logPrefix(trace.Context()), variant.Payload)
	}

	return domain.NewLocationPromptMessage(domain.TextUnknownInput)
}

func (uc *chatbotUsecaseImpl) SendMessage(ctx context.Context, recipientID string, message domain.OutboundMessage) (err error) {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:SendMessage")
	defer func() {
		trace.SetError(err)
		trace.Finish()
	}()
	trace.SetTag("recipient_id", recipientID)

	err = uc.messengerRepo.SendMessage(trace.Context(), domain.NewSendRequest(recipientID, message))
	if err != nil {
		logger.LogEf("%s unable to send message to %s (%s): %v", logPrefix(ctx), recipientID, candishared.ErrorKindOf(err), err)
		return err
	}

	logger.LogIf("%s message sent to %s", logPrefix(ctx), recipientID)
	return nil
}

func logPrefix(ctx context.Context) string {
	return fmt.Sprintf("[request_id:%s]", candishared.ParseRequestIDFromContext(ctx))
}
