// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token verification key
//	-token-issuer expected token issuer
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-server-url base URL of the configuration API (client)
//	-identity-url identity provider URL (client)
//	-realm identity provider realm (client)
//	-client-id identity provider client id (client)
//	-username identity provider user (client)
//	-snapshot path of the SQLite snapshot (client)
//	-watch re-fetch interval, 0 fetches once (client)
//	-strict validate fetched configuration (client)
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var logLevel string
	var serverURL string
	var identityURL string
	var realm string
	var clientID string
	var username string
	var snapshotDSN string
	var watchInterval time.Duration
	var strict bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&serverURL, "server-url", "", "Configuration API base URL")
	flag.StringVar(&identityURL, "identity-url", "", "Identity provider URL")
	flag.StringVar(&realm, "realm", "", "Identity provider realm")
	flag.StringVar(&clientID, "client-id", "", "Identity provider client id")
	flag.StringVar(&username, "username", "", "Identity provider username")
	flag.StringVar(&snapshotDSN, "snapshot", "", "SQLite snapshot path")
	flag.DurationVar(&watchInterval, "watch", 0, "Re-fetch interval (e.g., 30s); 0 fetches once")
	flag.BoolVar(&strict, "strict", false, "Validate fetched configuration against keys")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			LogLevel:         logLevel,
			StrictValidation: strict,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			Snapshot: Snapshot{DSN: snapshotDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			URL:      identityURL,
			Realm:    realm,
			ClientID: clientID,
			Username: username,
		},
		Workers: Workers{
			WatchInterval: watchInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty, "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
