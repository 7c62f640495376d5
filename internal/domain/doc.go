// Package domain contains the core business entities of the task service:
// users, tasks, the task listing query and its pagination metadata, and the
// error taxonomy shared by every layer. It has no knowledge of storage or
// transport.
package domain
