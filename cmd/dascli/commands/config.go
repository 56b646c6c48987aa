package commands

import (
	"fmt"
	"path/filepath"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/config"
	"github.com/pelletier/go-toml"
)

var ConfigCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect the config file",
	}
	show := &cobra.Command{
		Use:   "show",
		Short: "print the effective node config",
		Run:   showConf,
	}
	show.Flags().StringVarP(&cfgName, "name", "n", "", "node name (default is dascoin)")
	cmd.AddCommand(show)
	return cmd
}

func showConf(cmd *cobra.Command, args []string) {
	cfg := config.DefaultNodeConfig
	if cfgName != "" {
		cfg.Name = cfgName
	}

	confdir := filepath.Join(cfg.DataDir, cfg.Name)
	if err := config.ReadNodeConfigFile(confdir, &cfg); err != nil {
		fmt.Println(err)
		return
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(out))
}
