// Package config provides configuration loading, merging, and validation
// facilities for braindrop.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources override later ones):
//  1. Environment variables (BRAINDROP_ prefixed)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig]. Per-session interface state (which
// panes are visible, how tags are sorted) is persisted separately via
// [UIState].
package config
