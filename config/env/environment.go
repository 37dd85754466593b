package env

import (
	"errors"
	"log"
	"os"
	"reflect"
	"strings"
	"time"

	caarlosenv "github.com/caarlos0/env/v11"
	validatorengine "github.com/go-playground/validator/v10"
	"github.com/golangid/weathertogo/candihelper"
	"github.com/golangid/weathertogo/validator"
	"github.com/joho/godotenv"
)

// Env model
type Env struct {
	RootApp, ServiceName string
	BuildNumber          string `env:"BUILD_NUMBER"`
	// Env on application
	Environment string `env:"ENVIRONMENT"`
	DebugMode   bool   `env:"DEBUG_MODE" envDefault:"false"`

	// HTTPPort config
	HTTPPort uint16 `env:"PORT" envDefault:"1337" validate:"gt=0"`
	// HTTPBodyLimit max accepted request body size
	HTTPBodyLimit string `env:"HTTP_BODY_LIMIT" envDefault:"1M"`

	// PageAccessToken credential for messaging platform send api, sent as query credential
	PageAccessToken string `env:"PAGE_ACCESS_TOKEN" validate:"required"`
	// VerifyToken shared secret for webhook subscription verification
	VerifyToken string `env:"VERIFY_TOKEN" validate:"required"`
	// TrafficAPIKey static api key for traffic incident feed
	TrafficAPIKey string `env:"TRANSPORT_NSW_API_KEY"`

	SendAPIURL     string `env:"SEND_API_URL" envDefault:"https://graph.facebook.com/v2.6/me/messages" validate:"url"`
	WeatherFeedURL string `env:"WEATHER_FEED_URL" envDefault:"http://reg.bom.gov.au/fwo/IDN60901/IDN60901.94768.json" validate:"url"`
	TrafficFeedURL string `env:"TRAFFIC_FEED_URL" envDefault:"https://api.transport.nsw.gov.au/v1/ttds/events" validate:"url"`
	UserAgent      string `env:"USER_AGENT" envDefault:"weathertogo/1.0"`

	// OracleTimeout bound of each weather/traffic call
	OracleTimeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	// SendTimeout bound of each send api call
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	// MaxGoroutines env for worker pool and event fan out
	MaxGoroutines int `env:"MAX_GOROUTINES" envDefault:"10" validate:"gt=0"`
	// WebhookQueueSize pending webhook deliveries before intake block
	WebhookQueueSize int `env:"WEBHOOK_QUEUE_SIZE" envDefault:"100" validate:"gte=0"`

	// JaegerTracingHost env
	JaegerTracingHost string `env:"JAEGER_TRACING_HOST"`
	// JaegerMaxPacketSize env
	JaegerMaxPacketSize int `env:"JAEGER_MAX_PACKET_SIZE" envDefault:"65000"`

	StartAt string
}

var (
	env Env

	// envValidator report field error with its environment variable name
	envValidator = validator.NewStructValidator(validator.SetCoreStructValidatorOption(func(v *validatorengine.Validate) {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			return strings.Split(field.Tag.Get("env"), ",")[0]
		})
	}))
)

// BaseEnv get global basic environment
func BaseEnv() Env {
	return env
}

// SetEnv set env for mocking data env
func SetEnv(newEnv Env) {
	env = newEnv
}

// Load environment, .env file in WORKDIR is optional
func Load(serviceName string) error {
	// load main .env and additional .env in app
	if err := godotenv.Load(os.Getenv(candihelper.WORKDIR) + ".env"); err != nil {
		log.Println(candihelper.StringYellow("Warning: load env, " + err.Error()))
	}

	newEnv, err := Parse()
	if err != nil {
		return err
	}
	newEnv.ServiceName = serviceName
	newEnv.RootApp = os.Getenv(candihelper.WORKDIR)
	newEnv.StartAt = time.Now().Format(time.RFC3339)
	env = newEnv
	return nil
}

// Parse environment variables of current process into Env, validated
func Parse() (newEnv Env, err error) {
	mErrs := candihelper.NewMultiError()

	if err := caarlosenv.Parse(&newEnv); err != nil {
		mErrs.Append("parse", err)
	}

	if mErrs.IsNil() {
		if err := envValidator.ValidateStruct(newEnv); err != nil {
			var fieldErrs candihelper.MultiError
			if errors.As(err, &fieldErrs) {
				mErrs.Merge(fieldErrs)
			} else {
				mErrs.Append("validate", err)
			}
		}
	}

	if mErrs.HasError() {
		return newEnv, errors.New("Basic environment error: \n" + mErrs.Error())
	}
	return newEnv, nil
}
