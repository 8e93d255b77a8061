package session

import "time"

// Swapped in tests.
var nowUnix = func() int64 { return time.Now().Unix() }
