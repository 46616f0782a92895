// Package server exposes the HTTP API: account signup and login, the sauce
// CRUD surface, the vote endpoint, static image serving and the
// observability endpoints. Handlers translate between the wire format and
// the application layer and never touch the repositories directly.
package server
