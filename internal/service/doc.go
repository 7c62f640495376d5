// Package service contains the account and task use cases.
//
// Services are stateless. They receive their collaborators (stores, the
// password hasher and the token service) through constructor injection and
// translate store errors into domain errors, so callers only ever need
// errors.Is against the kinds in internal/domain.
package service
