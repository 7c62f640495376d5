// Package api is the HTTP boundary. It decodes and validates requests,
// calls the account and task services, and maps their errors to status
// codes by kind. Routes are declared in a single table with an explicit
// public flag; everything not marked public sits behind the auth guard.
package api
