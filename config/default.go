package config

import (
	"path/filepath"

	"github.com/dascoin/dascoin-go/mylog"
	homedir "github.com/mitchellh/go-homedir"
)

const (
	DefaultPrecheckEndPoint = "localhost:8080"
	DefaultConfigName       = "config.toml"
)

// DatabaseConfig connects the operation export plugin to its SQL store.
type DatabaseConfig struct {
	Driver   string
	User     string
	Password string
	Db       string
}

// PrecheckConfig configures the HTTP service that validates operations
// without applying them.
type PrecheckConfig struct {
	HTTPListen string
}

type NodeConfig struct {
	Name    string
	DataDir string
	ChainId string

	LogLevel string
	// log retention in seconds, 0 keeps everything
	LogAge uint32

	// optional JSON file with fee schedule overrides
	FeeScheduleFile string

	EnableOpExport bool
	OpExport       DatabaseConfig

	// profiling endpoint address, empty disables it
	PprofListen string

	Precheck PrecheckConfig
}

// DefaultNodeConfig contains reasonable default settings.
var DefaultNodeConfig = NodeConfig{
	Name:     "dascoin",
	DataDir:  DefaultDataDir(),
	ChainId:  "main",
	LogLevel: mylog.InfoLevel,
	OpExport: DatabaseConfig{
		Driver: "mysql",
		Db:     "dascoinops",
	},
	Precheck: PrecheckConfig{
		HTTPListen: DefaultPrecheckEndPoint,
	},
}

func DefaultDataDir() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dascoin")
}

// LogDir is where the rotating log files of a node live.
func (c *NodeConfig) LogDir() string {
	return filepath.Join(c.DataDir, c.ChainId, "logs")
}

// DbDir is where the account state database lives.
func (c *NodeConfig) DbDir() string {
	return filepath.Join(c.DataDir, c.ChainId, "db")
}
