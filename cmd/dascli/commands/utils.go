package commands

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/dascoin/dascoin-go/prototype"
)

// ChainContext is the command context key the console chain lives under.
var ChainContext = "chain"

// readPayload takes JSON either from a file or from the joined command
// arguments, so payloads work from the shell and from the console alike.
func readPayload(file string, args []string) ([]byte, error) {
	if file != "" {
		return ioutil.ReadFile(file)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("no JSON given, pass it inline or through --file")
	}
	return []byte(strings.Join(args, " ")), nil
}

func sortedIds(set map[prototype.AccountIdType]bool) []uint64 {
	ids := make([]uint64, 0, len(set))
	for id := range set {
		ids = append(ids, uint64(id))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func describeIds(set map[prototype.AccountIdType]bool) string {
	ids := sortedIds(set)
	if len(ids) == 0 {
		return "nobody"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("account %d", id)
	}
	return strings.Join(parts, ", ")
}
