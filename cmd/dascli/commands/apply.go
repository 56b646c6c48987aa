package commands

import (
	"encoding/json"
	"fmt"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/prototype"
)

var applyFile string

var ApplyCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "apply a signed transaction to the console chain",
		Long: `apply pushes a signed transaction through the full pipeline of the
console's in-memory chain and prints the receipt. The transaction JSON
carries the proven signee keys; a zero expiration is filled in from the
chain clock.`,
		Run: applyTrx,
	}
	cmd.Flags().StringVarP(&applyFile, "file", "f", "", "read the transaction JSON from a file")
	return cmd
}

func applyTrx(cmd *cobra.Command, args []string) {
	control := cmd.Context[ChainContext].(*app.Controller)

	payload, err := readPayload(applyFile, args)
	if err != nil {
		fmt.Println(err)
		return
	}
	sigTrx := &prototype.SignedTransaction{}
	if err := json.Unmarshal(payload, sigTrx); err != nil {
		fmt.Println("transaction parse failed:", err)
		return
	}
	if sigTrx.Trx != nil && sigTrx.Trx.Expiration == 0 {
		sigTrx.Trx.Expiration = control.HeadBlockTime() + 30
	}

	receipt := control.PushTrx(sigTrx)
	out, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(out))
}
