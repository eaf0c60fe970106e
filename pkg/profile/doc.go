// Package profile provides the chain transformation profile.
//
// A profile sits between a handler (a device channel producing state updates and accepting commands) and an
// item (a user facing entity producing commands and consuming state updates). Values going to the item are
// rewritten by the toItem chain, commands going to the handler by the toChannel chain.
//
// When a chain fails the value is dropped, unless undefOnError is set: the item then receives a state update
// carrying UNDEF. Commands have no undefined value, so a failed command also degrades to a state update.
// State updates coming from the item are always ignored.
//
// A profile never returns an error to its caller, all the failures are logged and absorbed.
package profile
