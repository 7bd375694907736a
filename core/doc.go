// Package core defines the shared contracts of agentloop: conversation
// messages, tool results and the memory store interface.
//
// Keeping these types in a leaf package lets the engine, the tool subsystem,
// model providers and memory backends depend on the same shapes without
// introducing dependency cycles. Concrete implementations live in their own
// packages (memory, tool, model) and are selected at wiring time.
package core
