package commands

import (
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/app"
	"github.com/dascoin/dascoin-go/prototype"
)

var feeOverrideFile string
var feeOpFile string

var FeeCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fee",
		Short:   "project an operation's fee, or show the whole schedule",
		Example: `fee {"type":"account_transfer","value":{"account_id":9,"new_owner":10}}`,
		Run:     showFees,
	}
	cmd.Flags().StringVarP(&feeOverrideFile, "schedule", "s", "", "load JSON schedule overrides first")
	cmd.Flags().StringVarP(&feeOpFile, "file", "f", "", "read the operation JSON from a file")
	return cmd
}

func showFees(cmd *cobra.Command, args []string) {
	control := cmd.Context[ChainContext].(*app.Controller)

	if feeOverrideFile != "" {
		data, err := ioutil.ReadFile(feeOverrideFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		schedule, err := prototype.LoadFeeSchedule(data)
		if err != nil {
			fmt.Println("schedule rejected:", err)
			return
		}
		control.SetFeeSchedule(schedule)
	}

	if feeOpFile == "" && len(args) == 0 {
		out, err := json.MarshalIndent(control.FeeSchedule(), "", "  ")
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(string(out))
		return
	}

	payload, err := readPayload(feeOpFile, args)
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
	required, err := base.CalculateFee(control.FeeSchedule())
	if err != nil {
		fmt.Println("fee calculation failed:", err)
		return
	}
	fmt.Printf("%s costs %v, paid by account %d\n",
		base.OpType().String(), required, base.FeePayer())
}
