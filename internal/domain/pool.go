package domain

import (
	"fmt"
	"strings"
)

// DefaultPoolID is the delegation pool the client targets out of the box.
const DefaultPoolID AccountID = "frutero.pool.near"

// Pool describes the delegation pool contract and the rules for staking with it.
type Pool struct {
	ID       AccountID
	Network  Network
	MinStake string
	Gas      uint64
}

func (p Pool) Validate() error {
	if strings.TrimSpace(string(p.ID)) == "" {
		return fmt.Errorf("pool id is required")
	}
	if err := p.ID.Validate(); err != nil {
		return fmt.Errorf("pool id: %w", err)
	}
	if err := p.Network.Validate(); err != nil {
		return err
	}
	if _, err := parseHumanAmount(p.MinStake); err != nil {
		return fmt.Errorf("min stake: %w", err)
	}
	if p.Gas == 0 {
		return fmt.Errorf("gas allowance is required")
	}

	return nil
}

func (p Pool) WithDefaults() Pool {
	if p.ID == "" {
		p.ID = DefaultPoolID
	}
	if p.Network == "" {
		p.Network = NetworkMainnet
	}
	if strings.TrimSpace(p.MinStake) == "" {
		p.MinStake = DefaultMinStake
	}
	if p.Gas == 0 {
		p.Gas = DefaultGas
	}

	return p
}
