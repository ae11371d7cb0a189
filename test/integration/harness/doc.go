// Package harness provides utilities for integration testing the hotline CLI.
// It handles binary compilation, environment isolation, command execution
// and running a throwaway server.
//
// Environment variables managed:
//   - HOTLINE_HOME: Isolated per test (temp directory)
//   - HOTLINE_DEBUG: Disabled to reduce noise
//   - HOTLINE_SERVER_URL: Unreachable until StartServer points it at a live server
//   - CLAUDE_CONFIG_DIR: Isolated per test so hook files never touch the real agent
package harness
