package timer

import (
	"sync/atomic"
	"time"
)

// ANSIC is the layout of C's ctime() without the trailing newline. It is always
// exactly 24 characters long
const ANSIC = time.ANSIC

// Time contains the unix-time in milliseconds updated every [Resolution] milliseconds
var Time = new(atomic.Int64)

var date atomic.Pointer[string]

func Now() time.Time {
	millis := Time.Load()
	return time.Unix(millis/1000, (millis%1000)*1e6)
}

// Date returns the current local time, rendered with the ANSIC layout. The value is
// cached and refreshed together with Time
func Date() string {
	return *date.Load()
}

// Resolution is the frequency at which time is updated. Date headers have a
// resolution of a second, so 500ms is precise enough
const Resolution = 500 * time.Millisecond

func tick() {
	now := time.Now()
	formatted := now.Format(ANSIC)
	date.Store(&formatted)
	Time.Store(now.UnixMilli())
}

func init() {
	// the first tick is made synchronously, so Date() never dereferences nil
	tick()

	go func() {
		for {
			time.Sleep(Resolution)
			tick()
		}
	}()
}
