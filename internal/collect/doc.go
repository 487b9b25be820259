// Package collect runs independent builders concurrently and gathers their
// results in builder order.
//
// Each builder produces one finished value in isolation, such as one loaded
// event group or one fully populated event. Nothing is shared between
// builders while they run; the caller only sees the results once all of them
// have succeeded.
package collect
