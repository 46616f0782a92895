// Package app is the application layer - the only component that references
// multiple domain components. It orchestrates all use cases: account signup
// and login, sauce CRUD with image lifecycle, and the vote state machine.
package app
