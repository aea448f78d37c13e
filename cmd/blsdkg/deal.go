package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/f3rmion/blsdkg/bn254"
	"github.com/f3rmion/blsdkg/dealer"
	"github.com/f3rmion/blsdkg/rng"
)

var (
	dealThreshold    int
	dealParticipants int
	dealID           int
	dealSeed         string
	dealOutput       string
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal Feldman VSS shares",
	Long: `Sample a secret polynomial of degree t-1 and write its outputs:

  broadcast.<codec>      verification vector (public, send to everyone)
  share-<id>.<codec>     private share for participant <id> (secret, 0600)

The polynomial is erased from memory before the files are written.

Examples:
  # 3-of-5 dealing by participant 1
  blsdkg deal --threshold 3 --participants 5 --id 1 --output ./deal

  # Reproducible dealing for test vectors (never use a seed in production)
  blsdkg deal -t 2 -n 3 --seed 00112233 --output ./vectors`,
	RunE: runDeal,
}

func init() {
	dealCmd.Flags().IntVarP(&dealThreshold, "threshold", "t", 2, "number of shares needed to reconstruct (t)")
	dealCmd.Flags().IntVarP(&dealParticipants, "participants", "n", 3, "total number of participants (n)")
	dealCmd.Flags().IntVar(&dealID, "id", 1, "dealer participant ID (1 to n)")
	dealCmd.Flags().StringVar(&dealSeed, "seed", "", "hex seed for deterministic sampling (testing only)")
	dealCmd.Flags().StringVarP(&dealOutput, "output", "o", ".", "output directory")

	for key, flag := range map[string]string{
		"deal.threshold":    "threshold",
		"deal.participants": "participants",
		"deal.id":           "id",
		"deal.seed":         "seed",
		"deal.output":       "output",
	} {
		if err := viper.BindPFlag(key, dealCmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", flag, err))
		}
	}
}

func runDeal(cmd *cobra.Command, args []string) error {
	c, err := newCodec()
	if err != nil {
		return err
	}

	threshold := viper.GetInt("deal.threshold")
	total := viper.GetInt("deal.participants")
	id := viper.GetInt("deal.id")

	var source io.Reader = rand.Reader
	if s := viper.GetString("deal.seed"); s != "" {
		seed, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		r, err := rng.New(seed)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		logger.Warn("using deterministic seed, output is reproducible")
		source = r
	}

	d, err := dealer.New(bn254.NewG2(), threshold, total, id, dealer.WithLogger(logger))
	if err != nil {
		return err
	}
	deal, err := d.Deal(source)
	if err != nil {
		return err
	}
	defer deal.Zeroize()

	outDir := filepath.Clean(viper.GetString("deal.output"))
	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := c.EncodeBroadcast(deal.Broadcast)
	if err != nil {
		return err
	}
	broadcastPath := filepath.Join(outDir, "broadcast."+c.Name())
	if err := os.WriteFile(broadcastPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write broadcast: %w", err)
	}

	for rid := 1; rid <= total; rid++ {
		data, err := c.EncodePrivateShare(deal.PrivateShares[rid])
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, fmt.Sprintf("share-%d.%s", rid, c.Name()))
		err = writeSecretFile(path, data)
		for i := range data {
			data[i] = 0
		}
		if err != nil {
			return fmt.Errorf("failed to write share %d: %w", rid, err)
		}
	}

	logger.Info("deal written",
		zap.Int("dealer", id),
		zap.Int("threshold", threshold),
		zap.Int("participants", total),
		zap.String("dir", outDir),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Dealer %d: %d-of-%d shares written to %s\n", id, threshold, total, outDir)
	return nil
}

// writeSecretFile writes data to path with mode 0600. An existing file is
// truncated and its mode reset, since os.WriteFile keeps the old mode.
func writeSecretFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	if err := f.Chmod(0600); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
