package domain

import "fmt"

type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
)

func (n Network) Validate() error {
	switch n {
	case NetworkMainnet, NetworkTestnet:
		return nil
	default:
		return fmt.Errorf("unsupported network %q", n)
	}
}

func (n Network) DefaultRPCURL() string {
	if n == NetworkTestnet {
		return "https://rpc.testnet.near.org"
	}
	return "https://rpc.mainnet.near.org"
}

func (n Network) DefaultWalletURL() string {
	if n == NetworkTestnet {
		return "https://testnet.mynearwallet.com"
	}
	return "https://app.mynearwallet.com"
}
