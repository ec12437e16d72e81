// Package testutil provides helpers for integration tests that need a real NATS
// server. Tests call RequireIntegration first so plain `go test` stays hermetic:
//
//	func TestIntegration_Something(t *testing.T) {
//		testutil.RequireIntegration(t)
//		url := testutil.StartNATS(t)
//		...
//	}
package testutil
