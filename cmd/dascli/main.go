package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/asaskevich/EventBus"
	"github.com/chzyer/readline"
	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/cmd/dascli/commands"
	"github.com/dascoin/dascoin-go/db/storage"
)

var rootCmd = &cobra.Command{
	Use:   "dascli",
	Short: "dascli is the dascoin operation toolbox",
}

func pcFromCommands(parent readline.PrefixCompleterInterface, c *cobra.Command) {
	pc := readline.PcItem(c.Use)
	parent.SetChildren(append(parent.GetChildren(), pc))
	for _, child := range c.Commands() {
		pcFromCommands(pc, child)
	}
}

func inheritContext(c *cobra.Command) {
	for _, child := range c.Commands() {
		child.Context = c.Context
		inheritContext(child)
	}
}

func runShell() {
	completer := readline.NewPrefixCompleter()
	for _, child := range rootCmd.Commands() {
		pcFromCommands(completer, child)
	}
	shell, err := readline.NewEx(&readline.Config{
		Prompt:       "dascoin> ",
		AutoComplete: completer,
		EOFPrompt:    "exit",
	})
	if err != nil {
		panic(err)
	}
	defer shell.Close()

shell_loop:
	for {
		l, err := shell.Readline()
		if err != nil {
			break shell_loop
		}
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break shell_loop
		}
		cmd, flags, err := rootCmd.Find(fields)
		if err != nil || cmd == rootCmd {
			shell.Terminal.Write([]byte("unknown command: " + l + "\n"))
			continue
		}
		cmd.ParseFlags(flags)
		cmd.Run(cmd, flags)
	}
}

func addCommands() {
	rootCmd.AddCommand(commands.CheckCmd())
	rootCmd.AddCommand(commands.ApplyCmd())
	rootCmd.AddCommand(commands.FeeCmd())
	rootCmd.AddCommand(commands.StatsCmd())
	rootCmd.AddCommand(commands.GenKeyCmd())
	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.ConfigCmd())
	rootCmd.AddCommand(commands.ServerCmd())
}

func init() {
	addCommands()
	// a bare dascli opens the console on a throwaway in-memory chain
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		runShell()
	}
}

func main() {
	control := app.NewController(storage.NewMemDatabase(), nil, EventBus.New())
	control.Open(nil)
	rootCmd.SetContext(commands.ChainContext, control)

	inheritContext(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
