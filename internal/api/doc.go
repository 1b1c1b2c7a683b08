// Package api contains the HTTP handlers for the vocabulary card API:
// registration and login, category and card management, group sharing,
// per-user learning progress, the admin accounts report, and the
// AI-assisted translation lookup.
//
// Handlers depend on store interfaces and respond through the shared
// helpers so every route carries the same JSON and CORS contract.
package api
