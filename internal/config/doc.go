// Package config resolves where cdinv keeps its inventory and how it logs
// and renders.
//
// Settings come from a TOML file (DefaultConfigPath, honouring
// XDG_CONFIG_HOME) layered over Default. Command-line flags and CDINV_*
// environment variables are applied on top by the CLI.
package config
