// Package pages wraps each view of the shop in a page object.
//
// A Session binds one browser tab to the configured wait contract. Page objects
// hold the session but never own or close it, and their constructors never
// navigate. Actions that are known to move the browser return the page object
// for the page reached; actions that can land on more than one page return the
// sealed Page interface so callers can type-switch on the outcome.
//
// Every action and query is bounded by config.WaitConfig.Timeout. Failures are
// returned as *ElementError and are never retried here.
package pages
