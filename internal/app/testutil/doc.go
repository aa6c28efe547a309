// Package testutil holds shared fixtures and mocks for package tests.
//
// MockTranscriber implements api.Transcriber with testify's mock package and
// can hold a call open with Gate, which is how the lifecycle tests reset a
// session while a run is in flight. Fixtures builds intake inputs and history
// entries; SetupTestSQLite and PostgresTestURL provide databases for the SQL
// history slots.
package testutil
