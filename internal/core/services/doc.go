// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ledger pipeline is synchronous: each event is parsed and fully
// applied or rejected before the next one is read.
package services
