package commands

import (
	"fmt"
	"sort"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/common/constants"
)

var StatsCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "show console chain state and cache statistics",
		Run:   showStats,
	}
	return cmd
}

func showStats(cmd *cobra.Command, args []string) {
	control := cmd.Context[ChainContext].(*app.Controller)

	props := control.GetProps()
	if props == nil {
		fmt.Println("chain not initialized")
		return
	}
	fmt.Println("head block time:", props.HeadBlockTime)
	fmt.Println("accounts:", uint64(props.NextAccountId)-constants.FirstAvailableAccountId)
	fmt.Println("starting cycle grant:", props.StartingCycleAssetAmount)
	kinds := make([]string, 0, len(props.ChainAuthorities))
	for kind := range props.ChainAuthorities {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("%s authority: account %d\n", kind, props.ChainAuthorities[kind])
	}
	fmt.Printf("auth cache: %d entries, %.2f%% hit rate\n",
		control.AuthCacheCount(), control.AuthCacheHitRate()*100)
}
