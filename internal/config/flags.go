// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Positional arguments left after the flags are returned in
// [StructuredConfig.Args].
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (postgres, sqlite)
//	-f image storage directory
//	-c/-config json file path with configs
//	-hash-cost bcrypt work factor
//	-log-level minimum log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-db-wait-timeout how long to wait for the database at startup
//	-s3-bucket S3 bucket for recipe images
//	-server API base URL used by the client
//	-token API token used by the client
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("recipe-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var databaseDSN, driver string
	var fileStoragePath string
	var jsonConfigPath string
	var hashCost int
	var logLevel string
	var requestTimeout, shutdownTimeout, dbWaitTimeout time.Duration
	var s3Bucket string
	var adapterAddress, adapterToken string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite)")
	fs.StringVar(&fileStoragePath, "f", "", "Image storage directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt work factor")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&dbWaitTimeout, "db-wait-timeout", 0, "Database wait timeout at startup")
	fs.StringVar(&s3Bucket, "s3-bucket", "", "S3 bucket for recipe images")
	fs.StringVar(&adapterAddress, "server", "", "API base URL used by the client")
	fs.StringVar(&adapterToken, "token", "", "API token used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PasswordHashCost: hashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				Driver:      driver,
				WaitTimeout: dbWaitTimeout,
			},
			Files: Files{
				BinaryDataDir: fileStoragePath,
			},
			S3: S3{
				Bucket: s3Bucket,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
			Token:       adapterToken,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
