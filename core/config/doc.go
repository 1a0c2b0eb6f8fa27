// Package config provides configuration management for serve-web.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file (via godotenv) and an optional config.yaml.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
//   - Server: preferred port, root directory, port attempts, browser launch
//   - Log: level, format and access logging
//
// # Environment
//
// Keys map to upper-case variables with dots replaced by underscores
// (server.root -> SERVER_ROOT). The preferred port is read from PORT,
// with SERVER_PORT as an alias.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.PreferredPort())
package config
