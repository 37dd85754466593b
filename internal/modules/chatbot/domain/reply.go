package domain

// Reply text
const (
	TextRaining       = "There is heavy rain predicted. Do not forget your umbrella! ☂️"
	TextSunny         = "It's sunny outside! ☀️"
	TextNormalTraffic = "There is normal traffic in your area. You can leave at your usual time."
	TextHeavyTraffic  = "There is some traffic in your area. Consider leaving 15 minutes earlier."

	TextLatestInfoPrefix = "Here's the latest info for Sydney: "

	TextConfirmImageTitle    = "Is this the right picture?"
	TextConfirmImageSubtitle = "Tap a button to answer."
	TextButtonYes            = "Yes!"
	TextButtonNo             = "No!"

	TextThanks       = "Thanks!"
	TextTryAnother   = "Oops, try sending another image."
	TextOnboarding   = "Hi, I'm your weather to go chatbot and I can help you decide when you should leave, to be on time. I will check the weather forecast, and compare it with the live traffic in your location. Tap the location button at the bottom, to start!"
	TextUnknownInput = "Sorry, I didn't understand that. Tap the location button at the bottom to get the latest weather and traffic info."
)

// DiagnosticCoordinates fixed location used by traffic diagnostic endpoint
var DiagnosticCoordinates = Coordinates{Lat: -33.830969, Long: 151.224775}

// WeatherText baseline weather text
func (w WeatherState) WeatherText() string {
	if w.IsRaining {
		return TextRaining
	}
	return TextSunny
}
