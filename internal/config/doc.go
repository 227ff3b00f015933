// Package config loads assat configuration from local and global YAML files
// and validates the scan mode chosen on the command line. It is internal; CLI
// code maps flags and files into engine configuration.
package config
