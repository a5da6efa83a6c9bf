// Package statemachine implements a minimal finite state machine used
// to guard the client's login state. Only registered (state, event)
// pairs transition; everything else is a typed error, which keeps
// impossible transitions impossible instead of silently tolerated.
package statemachine
