// Package config loads domify CLI settings.
//
// Settings come from, in decreasing precedence: command-line flags bound to
// the viper instance, DOMIFY_* environment variables, and a .domify.yaml
// file in the working directory:
//
//	log-level: debug
//	pretty: true
//	indent: "    "
//	strict: false
//	addr: localhost:8080
//
// # Usage
//
//	v, err := config.NewViper("")
//	if err != nil {
//	    return err
//	}
//	cfg, err := config.Load(v)
package config
