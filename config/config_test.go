package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteAndReadNodeConfigFile(t *testing.T) {
	a := assert.New(t)

	dir, err := ioutil.TempDir("", "dascoin-config")
	a.NoError(err)
	defer os.RemoveAll(dir)

	cfg := DefaultNodeConfig
	cfg.Name = "testnode"
	cfg.ChainId = "test"
	cfg.LogAge = 3600
	cfg.EnableOpExport = true
	cfg.OpExport.User = "das"
	cfg.OpExport.Password = "secret"

	a.NoError(WriteNodeConfigFile(dir, DefaultConfigName, cfg, 0644))
	_, err = os.Stat(filepath.Join(dir, DefaultConfigName))
	a.NoError(err)

	var loaded NodeConfig
	a.NoError(ReadNodeConfigFile(dir, &loaded))
	a.Equal(cfg, loaded)
}

func TestReadNodeConfigFileMissing(t *testing.T) {
	a := assert.New(t)

	dir, err := ioutil.TempDir("", "dascoin-config")
	a.NoError(err)
	defer os.RemoveAll(dir)

	var loaded NodeConfig
	a.Error(ReadNodeConfigFile(dir, &loaded))
}

func TestDefaultPaths(t *testing.T) {
	a := assert.New(t)

	cfg := DefaultNodeConfig
	cfg.DataDir = "/tmp/dasdata"
	a.Equal(filepath.Join("/tmp/dasdata", "main", "logs"), cfg.LogDir())
	a.Equal(filepath.Join("/tmp/dasdata", "main", "db"), cfg.DbDir())
	a.NotEmpty(DefaultDataDir())
}
