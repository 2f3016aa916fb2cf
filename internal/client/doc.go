// Package client implements the interactive application runtime.
//
// It wires the terminal UI flows, the data and sync services, and the
// saved API token into a single process lifecycle.
package client
