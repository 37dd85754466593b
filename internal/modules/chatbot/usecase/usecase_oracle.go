package usecase

import (
	"context"
	"errors"

	"github.com/golangid/weathertogo/candishared"
	"github.com/golangid/weathertogo/internal/modules/chatbot/domain"
	"github.com/golangid/weathertogo/logger"
	"github.com/golangid/weathertogo/tracer"
)

const (
	oracleWeather = "WeatherOracle"
	oracleTraffic = "TrafficOracle"
)

func (uc *chatbotUsecaseImpl) IsCurrentlyRaining(ctx context.Context) domain.WeatherState {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:IsCurrentlyRaining")
	defer trace.Finish()

	ctx, cancel := context.WithTimeout(trace.Context(), uc.opt.oracleTimeout)
	defer cancel()

	state := uc.awaitWeather(ctx, uc.weatherRepo.FetchObservations(ctx))
	trace.SetTag("is_raining", state.IsRaining)
	return state
}

func (uc *chatbotUsecaseImpl) LocalAdvisory(ctx context.Context, coordinates domain.Coordinates) domain.TrafficAdvisory {
	trace := tracer.StartTrace(ctx, "ChatbotUsecase:LocalAdvisory")
	defer trace.Finish()

	ctx, cancel := context.WithTimeout(trace.Context(), uc.opt.oracleTimeout)
	defer cancel()

	advisory := uc.awaitAdvisory(ctx, coordinates, uc.trafficRepo.FetchIncidents(ctx))
	trace.SetTag("advisory", advisory.Message)
	return advisory
}

// weatherAndAdvisory fetch both feeds at once, then wait for both
func (uc *chatbotUsecaseImpl) weatherAndAdvisory(ctx context.Context, coordinates domain.Coordinates) (domain.WeatherState, domain.TrafficAdvisory) {
	ctx, cancel := context.WithTimeout(ctx, uc.opt.oracleTimeout)
	defer cancel()

	weatherResult := uc.weatherRepo.FetchObservations(ctx)
	trafficResult := uc.trafficRepo.FetchIncidents(ctx)

	return uc.awaitWeather(ctx, weatherResult), uc.awaitAdvisory(ctx, coordinates, trafficResult)
}

func (uc *chatbotUsecaseImpl) awaitWeather(ctx context.Context, result <-chan candishared.Result[[]domain.Observation]) domain.WeatherState {
	res := awaitResult(ctx, oracleWeather, result)
	if res.Error != nil {
		logOracleFailure(ctx, oracleWeather, res.Error)
		return domain.WeatherState{}
	}
	if len(res.Data) < 2 {
		logger.LogWf("%s %s: need 2 observations, got %d", logPrefix(ctx), oracleWeather, len(res.Data))
	}
	return domain.NewWeatherState(res.Data)
}

func (uc *chatbotUsecaseImpl) awaitAdvisory(ctx context.Context, coordinates domain.Coordinates, result <-chan candishared.Result[[]domain.Incident]) domain.TrafficAdvisory {
	res := awaitResult(ctx, oracleTraffic, result)
	if res.Error != nil {
		logOracleFailure(ctx, oracleTraffic, res.Error)
		return domain.TrafficAdvisory{Message: domain.TextNormalTraffic}
	}
	return domain.NewTrafficAdvisory(coordinates, res.Data)
}

func awaitResult[T any](ctx context.Context, source string, result <-chan candishared.Result[T]) candishared.Result[T] {
	select {
	case res, ok := <-result:
		if !ok {
			return candishared.Result[T]{Error: candishared.NewNetworkError(source, errors.New("no result"))}
		}
		return res
	case <-ctx.Done():
		return candishared.Result[T]{Error: candishared.NewNetworkError(source, ctx.Err())}
	}
}

func logOracleFailure(ctx context.Context, source string, err error) {
	logger.LogWf("%s %s fail open (%s): %v", logPrefix(ctx), source, candishared.ErrorKindOf(err), err)
}
