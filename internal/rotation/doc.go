package rotation

// Package rotation drives the timer-based rotation state machine. A
// Controller owns the current assignment and the pending-timer handle; every
// transition (tick, pause, resume, manual advance, stop) runs to completion
// under one mutex, so at most one pending tick exists at a time and the
// assignment is always swapped whole. The clock is an injected abstraction so
// tests control time.
