package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"pos/config"
	"pos/internal/errors"
	"pos/internal/infra/auth"

	"github.com/spf13/cobra"
)

var hashCost int

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the bcrypt hash of a cashier password for auth.cashiers",
	Long: `Prints a bcrypt hash to paste into auth.cashiers[].passwordHash.
The password is read from the first line of stdin when not given as argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", 0, "bcrypt cost, default when 0")
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.Wrap(err, "read password")
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: hashCost}})
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)

	return nil
}
