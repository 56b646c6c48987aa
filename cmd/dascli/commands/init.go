package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/config"
)

var cfgName string
var chainName string

var InitCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "initialize the config file",
		Run:   initConf,
	}
	cmd.Flags().StringVarP(&cfgName, "name", "n", "", "node name (default is dascoin)")
	cmd.Flags().StringVarP(&chainName, "chain", "c", "", "chain name [main/test/dev], default is main")
	return cmd
}

func initConf(cmd *cobra.Command, args []string) {
	cfg := config.DefaultNodeConfig
	if cfgName != "" {
		cfg.Name = cfgName
	}
	if chainName != "" {
		cfg.ChainId = chainName
	}

	confdir := filepath.Join(cfg.DataDir, cfg.Name)
	if _, err := os.Stat(confdir); os.IsNotExist(err) {
		if err = os.MkdirAll(confdir, 0700); err != nil {
			fmt.Println(err)
			return
		}
	}
	if err := config.WriteNodeConfigFile(confdir, config.DefaultConfigName, cfg, 0600); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("config written to", filepath.Join(confdir, config.DefaultConfigName))
}
