// Package config loads configuration structs from environment variables.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory. Struct fields declare their sources with
// `env` tags as understood by github.com/caarlos0/env.
package config
