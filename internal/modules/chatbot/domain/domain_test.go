package domain

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessagingEventKind(t *testing.T) {
	tests := []struct {
		name string
		body string
		want EventKind
	}{
		{"Testcase #1: message", `{"sender":{"id":"1"},"message":{"text":"hi"}}`, KindMessage},
		{"Testcase #2: postback", `{"sender":{"id":"1"},"postback":{"payload":"yes"}}`, KindPostback},
		{"Testcase #3: delivery receipt", `{"sender":{"id":"1"},"delivery":{"mids":["m1"]}}`, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event MessagingEvent
			require.NoError(t, json.Unmarshal([]byte(tt.body), &event))
			assert.Equal(t, tt.want, event.Kind())
		})
	}
}

func TestWebhookEntryFirstEvent(t *testing.T) {
	entry := WebhookEntry{}
	_, ok := entry.FirstEvent()
	assert.False(t, ok)

	entry.Messaging = []MessagingEvent{{Sender: Participant{ID: "first"}}, {Sender: Participant{ID: "second"}}}
	event, ok := entry.FirstEvent()
	assert.True(t, ok)
	assert.Equal(t, "first", event.Sender.ID)
}

func TestMessageClassify(t *testing.T) {
	tests := []struct {
		name string
		body string
		want MessageVariant
	}{
		{
			name: "Testcase #1: text",
			body: `{"mid":"m1","text":"hello"}`,
			want: TextMessage{Text: "hello"},
		},
		{
			name: "Testcase #2: location keep lat and long",
			body: `{"attachments":[{"type":"location","payload":{"coordinates":{"lat":-33.830969,"long":151.224775}}}]}`,
			want: LocationAttachment{Coordinates: Coordinates{Lat: -33.830969, Long: 151.224775}},
		},
		{
			name: "Testcase #3: image",
			body: `{"attachments":[{"type":"image","payload":{"url":"https://cdn.test/cat.png"}}]}`,
			want: ImageAttachment{URL: "https://cdn.test/cat.png"},
		},
		{
			name: "Testcase #4: coordinates with other type",
			body: `{"attachments":[{"type":"fallback","payload":{"coordinates":{"lat":1,"long":2}}}]}`,
			want: UnrecognizedAttachment{Type: "fallback"},
		},
		{
			name: "Testcase #5: empty payload",
			body: `{"attachments":[{"type":"audio","payload":{}}]}`,
			want: UnrecognizedAttachment{Type: "audio"},
		},
		{
			name: "Testcase #6: no text and no attachment",
			body: `{"mid":"m1"}`,
			want: UnrecognizedAttachment{},
		},
		{
			name: "Testcase #7: location without coordinates",
			body: `{"attachments":[{"type":"location","payload":{"url":"https://maps.test"}}]}`,
			want: ImageAttachment{URL: "https://maps.test"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var message Message
			require.NoError(t, json.Unmarshal([]byte(tt.body), &message))
			assert.Equal(t, tt.want, message.Classify())
		})
	}
}

func TestPostbackClassify(t *testing.T) {
	for _, payload := range []string{PostbackYes, PostbackNo, PostbackInitial} {
		assert.Equal(t, KnownPostback{Payload: payload}, (&Postback{Payload: payload}).Classify())
	}
	for _, payload := range []string{"YES", "No", "initialusermessage", ""} {
		assert.Equal(t, UnknownPostback{Payload: payload}, (&Postback{Payload: payload}).Classify())
	}
}

func TestRainTraceUnmarshal(t *testing.T) {
	var feed WeatherFeed
	err := json.Unmarshal([]byte(`{"observations":{"data":[
		{"rain_trace":"1.2"},{"rain_trace":0.4},{"rain_trace":"-"},{"rain_trace":""},{"rain_trace":null}
	]}}`), &feed)
	require.NoError(t, err)
	require.Len(t, feed.Observations.Data, 5)
	assert.Equal(t, RainTrace(1.2), feed.Observations.Data[0].RainTrace)
	assert.Equal(t, RainTrace(0.4), feed.Observations.Data[1].RainTrace)
	assert.Equal(t, RainTrace(0), feed.Observations.Data[2].RainTrace)
	assert.Equal(t, RainTrace(0), feed.Observations.Data[3].RainTrace)
	assert.Equal(t, RainTrace(0), feed.Observations.Data[4].RainTrace)

	assert.Error(t, json.Unmarshal([]byte(`{"rain_trace":"heavy"}`), &Observation{}))
}

func TestNewWeatherState(t *testing.T) {
	assert.False(t, NewWeatherState(nil).IsRaining)
	assert.False(t, NewWeatherState([]Observation{{RainTrace: 5}}).IsRaining)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		samples := make([]Observation, 2+rnd.Intn(5))
		for j := range samples {
			samples[j].RainTrace = RainTrace(float64(rnd.Intn(4)) * 0.2)
		}
		want := samples[0].RainTrace > samples[1].RainTrace
		assert.Equal(t, want, NewWeatherState(samples).IsRaining, "samples %v", samples)
	}

	assert.Equal(t, TextRaining, WeatherState{IsRaining: true}.WeatherText())
	assert.Equal(t, TextSunny, WeatherState{}.WeatherText())
}

func TestDistanceMeters(t *testing.T) {
	origin := Coordinates{Lat: -33.830969, Long: 151.224775}
	assert.InDelta(t, 0, DistanceMeters(origin, Location{Lat: origin.Lat, Lng: origin.Long}), 0.001)
	assert.InDelta(t, 1113.2, DistanceMeters(origin, Location{Lat: origin.Lat + 0.01, Lng: origin.Long}), 1)
	// Sydney to Melbourne
	assert.InDelta(t, 714000, DistanceMeters(Coordinates{Lat: -33.8688, Long: 151.2093}, Location{Lat: -37.8136, Lng: 144.9631}), 5000)
}

func TestNewTrafficAdvisory(t *testing.T) {
	origin := Coordinates{Lat: -33.830969, Long: 151.224775}
	near := &Location{Lat: origin.Lat + 0.01, Lng: origin.Long}
	far := &Location{Lat: origin.Lat + 0.02, Lng: origin.Long}

	tests := []struct {
		name      string
		incidents []Incident
		want      string
	}{
		{"Testcase #1: empty", nil, TextNormalTraffic},
		{"Testcase #2: only far incident", []Incident{{Head: far}}, TextNormalTraffic},
		{"Testcase #3: near incident after far", []Incident{{Head: far}, {Head: near}}, TextHeavyTraffic},
		{"Testcase #4: missing head skipped", []Incident{{ID: 1}, {ID: 2, Head: near}}, TextHeavyTraffic},
		{"Testcase #5: lat and lng not transposed", []Incident{{Head: &Location{Lat: origin.Long, Lng: origin.Lat}}}, TextNormalTraffic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTrafficAdvisory(origin, tt.incidents).Message)
		})
	}
}

func TestOutboundMessageJSON(t *testing.T) {
	b, err := json.Marshal(NewSendRequest("123", NewLocationPromptMessage(TextOnboarding)))
	require.NoError(t, err)
	assert.JSONEq(t, `{"recipient":{"id":"123"},"messaging_type":"RESPONSE","message":{"text":"`+TextOnboarding+`","quick_replies":[{"content_type":"location"}]}}`, string(b))

	b, err = json.Marshal(NewTextMessage(TextThanks))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"Thanks!"}`, string(b))
}
