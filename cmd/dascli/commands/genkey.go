package commands

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"os"

	"github.com/coschain/cobra"
	"github.com/dascoin/dascoin-go/prototype"
	"github.com/itchyny/base58-go"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/ssh/terminal"
)

// hardened purpose, coin and account, then external chain and first index
var dasDerivationPath = []uint32{
	0x80000000 + 44, 0x80000000 + 327, 0x80000000, 0, 0,
}

var recoverKey bool

var GenKeyCmd = func() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "generate a key pair and its mnemonic",
		Run:   genKey,
	}
	cmd.Flags().BoolVarP(&recoverKey, "recover", "r", false, "derive the pair from an existing mnemonic instead")
	return cmd
}

func genKey(cmd *cobra.Command, args []string) {
	var mnemonic string
	if recoverKey {
		// read without echo, mnemonics do not belong in the scrollback
		fmt.Print("mnemonic: ")
		line, err := terminal.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			fmt.Println("mnemonic read failed:", err)
			return
		}
		mnemonic = string(line)
	} else {
		entropy, err := bip39.NewEntropy(256)
		if err != nil {
			fmt.Println("entropy generation failed:", err)
			return
		}
		if mnemonic, err = bip39.NewMnemonic(entropy); err != nil {
			fmt.Println("mnemonic generation failed:", err)
			return
		}
	}

	pubWIF, privWIF, err := deriveKeyPair(mnemonic)
	if err != nil {
		fmt.Println("derivation failed:", err)
		return
	}
	if !recoverKey {
		fmt.Println("Mnemonic:", mnemonic)
	}
	fmt.Println("Public  Key:", pubWIF)
	fmt.Println("Private Key:", privWIF)
}

func deriveKeyPair(mnemonic string) (string, string, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", "", fmt.Errorf("malformed mnemonic")
	}
	seed := bip39.NewSeed(mnemonic, "")
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return "", "", err
	}
	for _, n := range dasDerivationPath {
		if key, err = key.NewChildKey(n); err != nil {
			return "", "", err
		}
	}
	pub := prototype.PublicKeyFromBytes(key.PublicKey().Key)
	return pub.ToWIF(), privateWIF(key.Key), nil
}

// privateWIF renders a raw secret the way PublicKeyType renders key data:
// base58 over the checksummed payload. The 0x80 prefix keeps private keys
// apart from public ones.
func privateWIF(secret []byte) string {
	data := make([]byte, 0, len(secret)+5)
	data = append(data, 0x80)
	data = append(data, secret...)
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	data = append(data, second[0:4]...)

	bi := new(big.Int).SetBytes(data).String()
	encoded, _ := base58.BitcoinEncoding.Encode([]byte(bi))
	return string(encoded)
}
