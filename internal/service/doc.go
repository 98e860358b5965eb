// Package service implements the application's use cases. Services invoke
// the progression rules engine on entities loaded through the store
// interfaces and persist the results, wrapping multi-step writes in
// transactions. Dependencies (stores, the database handle, loggers) are
// injected; nothing in this package reaches into process-wide state.
package service
