package candishared

// Result common output of async repository call
type Result[T any] struct {
	Data  T
	Error error
}
