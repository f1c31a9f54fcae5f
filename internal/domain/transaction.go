package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
)

const (
	MethodDepositAndStake = "deposit_and_stake"
	MethodUnstake         = "unstake"
	MethodWithdrawAll     = "withdraw_all"

	MethodGetAccountStakedBalance = "get_account_staked_balance"
	MethodGetAccountTotalBalance  = "get_account_total_balance"
)

// DefaultGas is the gas allowance attached to every pool call (50 TGas).
const DefaultGas uint64 = 50_000_000_000_000

type FunctionCall struct {
	MethodName string
	Args       json.RawMessage
	Gas        uint64
	Deposit    *big.Int
}

func NewFunctionCall(method string, args any, gas uint64, deposit *big.Int) (FunctionCall, error) {
	if args == nil {
		args = struct{}{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return FunctionCall{}, fmt.Errorf("encode %s args: %w", method, err)
	}
	if deposit == nil {
		deposit = new(big.Int)
	}

	return FunctionCall{
		MethodName: method,
		Args:       encoded,
		Gas:        gas,
		Deposit:    deposit,
	}, nil
}

type Transaction struct {
	SignerID   AccountID
	ReceiverID AccountID
	Actions    []FunctionCall
}

type TxOutcome struct {
	Hash         string
	SuccessValue string
}
