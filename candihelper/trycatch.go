package candihelper

import (
	"fmt"
)

// TryCatch run Try, a panic inside it is recovered and handed to Catch as error.
// Finally always run last, after Catch.
type TryCatch struct {
	Try     func()
	Catch   func(error)
	Finally func()
}

// Do run TryCatch
func (t TryCatch) Do() {
	if t.Finally != nil {
		defer t.Finally()
	}
	defer func() {
		r := recover()
		if r == nil || t.Catch == nil {
			return
		}

		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("%v", r)
		}
		t.Catch(err)
	}()

	t.Try()
}
