package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/blsdkg/bn254"
	"github.com/f3rmion/blsdkg/dealer"
)

var (
	verifyThreshold    int
	verifyParticipants int
	verifyBroadcast    string
	verifyShare        string
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a private share against a broadcast",
	Long: `Check that a private share is consistent with the dealer's verification
vector. The recipient is taken from the share file.

Examples:
  blsdkg verify --threshold 3 --participants 5 \
    --broadcast ./deal/broadcast.json --share ./deal/share-2.json`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVarP(&verifyThreshold, "threshold", "t", 2, "number of shares needed to reconstruct (t)")
	verifyCmd.Flags().IntVarP(&verifyParticipants, "participants", "n", 3, "total number of participants (n)")
	verifyCmd.Flags().StringVarP(&verifyBroadcast, "broadcast", "b", "", "path to broadcast file")
	verifyCmd.Flags().StringVarP(&verifyShare, "share", "s", "", "path to private share file")

	for key, flag := range map[string]string{
		"verify.threshold":    "threshold",
		"verify.participants": "participants",
		"verify.broadcast":    "broadcast",
		"verify.share":        "share",
	} {
		if err := viper.BindPFlag(key, verifyCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}

func runVerify(cmd *cobra.Command, args []string) error {
	c, err := newCodec()
	if err != nil {
		return err
	}

	broadcastPath := viper.GetString("verify.broadcast")
	sharePath := viper.GetString("verify.share")
	if broadcastPath == "" || sharePath == "" {
		return errors.New("both --broadcast and --share are required")
	}

	g := bn254.NewG2()

	data, err := os.ReadFile(filepath.Clean(broadcastPath))
	if err != nil {
		return fmt.Errorf("failed to read broadcast: %w", err)
	}
	b, err := c.DecodeBroadcast(g, data)
	if err != nil {
		return err
	}

	data, err = os.ReadFile(filepath.Clean(sharePath))
	if err != nil {
		return fmt.Errorf("failed to read share: %w", err)
	}
	s, err := c.DecodePrivateShare(g, data)
	for i := range data {
		data[i] = 0
	}
	if err != nil {
		return err
	}

	r, err := dealer.NewRecipient(g,
		viper.GetInt("verify.threshold"),
		viper.GetInt("verify.participants"),
		s.RecipientID,
		dealer.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer r.Zeroize()
	defer s.Share.Zeroize()

	if err := r.Receive(b, s); err != nil {
		return err
	}

	logger.Debug("share verified", zap.Int("dealer", s.DealerID), zap.Int("participant", s.RecipientID))
	fmt.Fprintf(cmd.OutOrStdout(), "Share from dealer %d to participant %d: valid\n", s.DealerID, s.RecipientID)
	return nil
}
