// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to fields left empty by every other source.
const (
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "debug"
	DefaultDriver           = DriverPostgres
	DefaultWaitInterval     = time.Second
	DefaultWaitTimeout      = time.Minute
	DefaultBinaryDataDir    = "media"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultMaxUploadSize    = 10 << 20
	DefaultAdapterAddress   = "http://localhost:8080"
	DefaultAdapterTimeout   = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDriver,
				WaitInterval: DefaultWaitInterval,
				WaitTimeout:  DefaultWaitTimeout,
			},
			Files: Files{
				BinaryDataDir: DefaultBinaryDataDir,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxUploadSize:   DefaultMaxUploadSize,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
