package repository

import (
	"github.com/golangid/weathertogo/candiutils"
	"github.com/golangid/weathertogo/config/env"
	"github.com/golangid/weathertogo/internal/modules/chatbot/repository/httpcall"
	"github.com/golangid/weathertogo/internal/modules/chatbot/repository/interfaces"
	"github.com/golangid/weathertogo/logger"
)

// Repository repo
type Repository struct {
	Weather   interfaces.Weather
	Traffic   interfaces.Traffic
	Messenger interfaces.Messenger
}

// NewRepository constructor, single attempt http client per call
func NewRepository(cfg env.Env) *Repository {
	masker := logger.NewMasker()
	oracleReq := candiutils.NewHTTPRequest(
		candiutils.HTTPRequestSetRetries(0),
		candiutils.HTTPRequestSetTimeout(cfg.OracleTimeout),
		candiutils.HTTPRequestSetMasker(masker),
	)
	sendReq := candiutils.NewHTTPRequest(
		candiutils.HTTPRequestSetRetries(0),
		candiutils.HTTPRequestSetTimeout(cfg.SendTimeout),
		candiutils.HTTPRequestSetMasker(masker),
	)

	return &Repository{
		Weather:   httpcall.NewWeatherHTTP(oracleReq, cfg.WeatherFeedURL, cfg.UserAgent),
		Traffic:   httpcall.NewTrafficHTTP(oracleReq, cfg.TrafficFeedURL, cfg.TrafficAPIKey, cfg.UserAgent),
		Messenger: httpcall.NewMessengerHTTP(sendReq, cfg.SendAPIURL, cfg.PageAccessToken),
	}
}
