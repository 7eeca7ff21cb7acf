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

type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args (without the program name) into a partial
// [StructuredConfig]. Parsing stops at the first non-flag argument; the
// remaining positional arguments are returned as well.
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var mode string
	var databaseDriver string
	var databaseDSN string
	var jsonConfigPath string
	var dedupePepper string
	var cronSecret string
	var expiryWindow time.Duration
	var kdfIterations int
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var rateLimit float64
	var rateBurst int
	var purgeInterval time.Duration
	var adapterAddress string

	fs := flag.NewFlagSet("seal-doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&mode, "mode", "", "Application mode (development|production)")
	fs.StringVar(&databaseDriver, "driver", "", "Storage driver (postgres|sqlite|memory)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dedupePepper, "dedupe-pepper", "", "Dedupe pepper")
	fs.StringVar(&cronSecret, "cron-secret", "", "Bearer secret of the cleanup endpoint")
	fs.DurationVar(&expiryWindow, "expiry-window", 0, "Document expiry window (e.g., 48h)")
	fs.IntVar(&kdfIterations, "kdf-iterations", 0, "PBKDF2 iterations for new documents")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Maximum request body size")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Requests per second per client IP")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Rate limiter burst size")
	fs.DurationVar(&purgeInterval, "purge-interval", 0, "Background purge period (e.g., 1h)")
	fs.StringVar(&adapterAddress, "s", "", "Server base URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Mode:          mode,
			DedupePepper:  dedupePepper,
			ExpiryWindow:  expiryWindow,
			KDFIterations: kdfIterations,
			CronSecret:    cronSecret,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PurgeInterval: purgeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
