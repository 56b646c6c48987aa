package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var configTemplate *template.Template

func init() {
	var err error
	if configTemplate, err = template.New("configFileTemplate").Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// WriteNodeConfigFile renders config into a TOML file under configDirPath.
func WriteNodeConfigFile(configDirPath string, configName string, config NodeConfig, mode os.FileMode) error {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		return err
	}
	configFilePath := filepath.Join(configDirPath, configName)
	return ioutil.WriteFile(configFilePath, buffer.Bytes(), mode)
}

// ReadNodeConfigFile loads config.toml from confdir into cfg.
func ReadNodeConfigFile(confdir string, cfg *NodeConfig) error {
	viper.Reset()
	viper.AddConfigPath(confdir)
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	if err := viper.ReadInConfig(); err != nil {
		return errors.WithMessage(err, "config file read failed")
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return errors.WithMessage(err, "config file parse failed")
	}
	return nil
}

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

Name = "{{ .Name }}"
DataDir = "{{ .DataDir }}"
ChainId = "{{ .ChainId }}"
LogLevel = "{{ .LogLevel }}"
LogAge = {{ .LogAge }}
FeeScheduleFile = "{{ .FeeScheduleFile }}"
EnableOpExport = {{ .EnableOpExport }}
PprofListen = "{{ .PprofListen }}"

[OpExport]
Driver = "{{ .OpExport.Driver }}"
User = "{{ .OpExport.User }}"
Password = "{{ .OpExport.Password }}"
Db = "{{ .OpExport.Db }}"

[Precheck]
HTTPListen = "{{ .Precheck.HTTPListen }}"
`
