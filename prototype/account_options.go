package prototype

// AccountOptions is the mutable voting and delegation configuration carried
// by every account.
type AccountOptions struct {
	MemoKey           *PublicKeyType    `json:"memo_key"`
	VotingAccount     AccountIdType     `json:"voting_account"`
	NumWitnessVotes   uint16            `json:"num_witness_votes"`
	NumCommitteeVotes uint16            `json:"num_committee_votes"`
	Votes             []VoteIdType      `json:"votes"`
	Extensions        []FutureExtension `json:"extensions"`
}

// Validate checks that the vote counters do not claim more votes of a kind
// than the votes field actually carries.
func (m *AccountOptions) Validate() error {
	if m == nil {
		return ErrNpe
	}
	if m.MemoKey != nil {
		if err := m.MemoKey.Validate(); err != nil {
			return err
		}
	}

	var witness, committee int
	for _, v := range m.Votes {
		switch v.Type() {
		case VoteWitness:
			witness++
		case VoteCommittee:
			committee++
		}
	}
	if int(m.NumWitnessVotes) > witness || int(m.NumCommitteeVotes) > committee {
		return ErrVoteCountMismatch
	}
	return nil
}
