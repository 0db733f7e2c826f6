package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses all configuration flags from args (without the program
// name) on a dedicated flag set, so it can be called more than once.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-legacy-errors answer every failure with 500
//	-driver storage driver: memory, postgres, sqlite, http
//	-d database DSN
//	-adapter-address downstream Resource Service base URL
//	-adapter-timeout downstream request timeout
//	-redis-address Redis host:port for notifications
//	-channel notification channel
//	-dead-letter-key Redis list for failed notifications
//	-c/-config json file path with configs
//	-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("bff", flag.ContinueOnError)

	var serverAddress NetAddress
	var requestTimeout, adapterTimeout time.Duration
	var legacyErrors bool
	var driver, databaseDSN string
	var adapterAddress string
	var redisAddress, channel, deadLetterKey string
	var jsonConfigPath string
	var version string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&legacyErrors, "legacy-errors", false, "Answer every failure with 500")
	fs.StringVar(&driver, "driver", "", "Storage driver: memory, postgres, sqlite, http")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Downstream Resource Service base URL")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Downstream request timeout (e.g., 5s)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&channel, "channel", "", "Notification channel")
	fs.StringVar(&deadLetterKey, "dead-letter-key", "", "Redis list for failed notifications")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			LegacyErrors:   legacyErrors,
		},
		Storage: Storage{
			Driver: driver,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Notifier: Notifier{
			RedisAddress:  redisAddress,
			Channel:       channel,
			DeadLetterKey: deadLetterKey,
		},
		JSONFilePath: jsonConfigPath,
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
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
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
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
