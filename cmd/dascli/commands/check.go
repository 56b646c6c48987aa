package commands

import (
	"encoding/json"
	"fmt"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/prototype"
)

var checkFile string

var CheckCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check",
		Short:   "validate an operation and show its authority and fee demands",
		Example: `check {"type":"set_roll_back_enabled","value":{"account":7,"roll_back_enabled":true}}`,
		Run:     checkOp,
	}
	cmd.Flags().StringVarP(&checkFile, "file", "f", "", "read the operation JSON from a file")
	return cmd
}

func checkOp(cmd *cobra.Command, args []string) {
	control := cmd.Context[ChainContext].(*app.Controller)

	payload, err := readPayload(checkFile, args)
	if err != nil {
		fmt.Println(err)
		return
	}
	op := &prototype.Operation{}
	if err := json.Unmarshal(payload, op); err != nil {
		fmt.Println("operation parse failed:", err)
		return
	}
	base := prototype.GetBaseOperation(op)
	fmt.Println("type:", base.OpType().String())

	if err := base.Validate(); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	fmt.Println("valid")

	required, err := base.CalculateFee(control.FeeSchedule())
	if err != nil {
		fmt.Println("fee calculation failed:", err)
		return
	}
	fmt.Printf("fee payer: account %d\n", base.FeePayer())
	fmt.Println("scheduled fee:", required)
	if offered := base.GetFee(); offered.Amount > 0 {
		fmt.Println("offered fee:", offered)
	}

	active := make(map[prototype.AccountIdType]bool)
	owner := make(map[prototype.AccountIdType]bool)
	base.GetRequiredActive(&active)
	base.GetRequiredOwner(&owner)
	fmt.Println("needs active of:", describeIds(active))
	fmt.Println("needs owner of:", describeIds(owner))
}
