// Package config loads resemble-image settings from an optional HCL file
// and RESEMBLE_* environment variables.
//
// A config file looks like:
//
//	fidelity  = "20%"   # or a bare number of source pixels: 100
//	generator = "complex"
//	direction = "to right"
//	base_dir  = "./assets"
//	timeout   = "10s"
//
// Environment variables take precedence over the file.
package config
