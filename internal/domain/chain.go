package domain

import "math/big"

type Finality string

const (
	FinalityOptimistic Finality = "optimistic"
	FinalityFinal      Finality = "final"
)

type AccountView struct {
	Amount       *big.Int
	Locked       *big.Int
	StorageUsage uint64
	BlockHeight  uint64
	BlockHash    string
}

const PermissionFullAccess = "FullAccess"

type AccessKeyView struct {
	Nonce       uint64
	Permission  string
	BlockHeight uint64
	BlockHash   string
}

func (v AccessKeyView) FullAccess() bool {
	return v.Permission == PermissionFullAccess
}
