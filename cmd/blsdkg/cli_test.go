package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/blsdkg/bn254"
	"github.com/f3rmion/blsdkg/dealer"
	"github.com/f3rmion/blsdkg/wire"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "blsdkg", rootCmd.Use)

	expected := []string{"version", "deal", "verify", "config"}
	for _, name := range expected {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "expected subcommand %s", name)
	}

	for _, flag := range []string{"config", "codec", "verbose"} {
		require.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "flag %s not found", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "blsdkg version "+Version)
}

func TestDealAndVerify(t *testing.T) {
	for _, codecName := range wire.Codecs() {
		t.Run(codecName, func(t *testing.T) {
			dir := t.TempDir()

			out, err := execute(t, "deal", "--codec", codecName, "-t", "3", "-n", "4", "--id", "2", "-o", dir)
			require.NoError(t, err)
			assert.Contains(t, out, "Dealer 2: 3-of-4 shares written")

			broadcast := filepath.Join(dir, "broadcast."+codecName)
			require.FileExists(t, broadcast)

			for id := 1; id <= 4; id++ {
				share := filepath.Join(dir, fmt.Sprintf("share-%d.%s", id, codecName))
				info, err := os.Stat(share)
				require.NoError(t, err)
				assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

				out, err := execute(t, "verify", "--codec", codecName, "-t", "3", "-n", "4", "-b", broadcast, "-s", share)
				require.NoError(t, err)
				assert.Contains(t, out, "valid")
			}
		})
	}
}

func TestDealTightensExistingShareMode(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "share-1.json")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0600))
	require.NoError(t, os.Chmod(stale, 0644))

	_, err := execute(t, "deal", "--codec", "json", "-t", "2", "-n", "2", "--id", "1", "-o", dir)
	require.NoError(t, err)

	for id := 1; id <= 2; id++ {
		info, err := os.Stat(filepath.Join(dir, fmt.Sprintf("share-%d.json", id)))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "share-%d.json", id)
	}
	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestDealSeeded(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	_, err := execute(t, "deal", "--codec", "json", "-t", "2", "-n", "2", "--id", "1", "--seed", "00112233", "-o", dirA)
	require.NoError(t, err)
	_, err = execute(t, "deal", "--codec", "json", "-t", "2", "-n", "2", "--id", "1", "--seed", "00112233", "-o", dirB)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dirA, "broadcast.json"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "broadcast.json"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = execute(t, "deal", "--codec", "json", "--seed", "not-hex", "-o", t.TempDir())
	assert.Error(t, err)

	// reset for later tests sharing the command state
	require.NoError(t, dealCmd.Flags().Set("seed", ""))
}

func TestVerifyRejectsForeignShare(t *testing.T) {
	dir := t.TempDir()
	g := bn254.NewG2()
	c, err := wire.NewCodec(wire.JSON)
	require.NoError(t, err)

	_, err = execute(t, "deal", "--codec", "json", "-t", "2", "-n", "3", "--id", "1", "-o", dir)
	require.NoError(t, err)

	// a share from a different polynomial, relabelled as coming from dealer 1
	d, err := dealer.New(g, 2, 3, 1)
	require.NoError(t, err)
	deal, err := d.Deal(bytes.NewReader(bytes.Repeat([]byte{0x42}, 1024)))
	require.NoError(t, err)
	data, err := c.EncodePrivateShare(deal.PrivateShares[2])
	require.NoError(t, err)
	forged := filepath.Join(dir, "forged.json")
	require.NoError(t, os.WriteFile(forged, data, 0600))

	_, err = execute(t, "verify", "--codec", "json", "-t", "2", "-n", "3",
		"-b", filepath.Join(dir, "broadcast.json"), "-s", forged)
	var rej *dealer.RejectionError
	require.ErrorAs(t, err, &rej)
	assert.Equal(t, 1, rej.DealerID)
	assert.Equal(t, 2, rej.RecipientID)
}

func TestVerifyMissingPaths(t *testing.T) {
	_, err := execute(t, "verify", "--codec", "json", "-b", "", "-s", "")
	assert.Error(t, err)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)
	require.FileExists(t, path)

	_, err = execute(t, "config", "init", "-o", path)
	assert.Error(t, err, "existing file must not be overwritten without --force")

	_, err = execute(t, "config", "init", "-o", path, "--force")
	require.NoError(t, err)

	// the written sample is a loadable config
	dir := t.TempDir()
	_, err = execute(t, "--config", path, "deal", "--codec", "json", "-o", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "broadcast.json"))
	require.NoError(t, rootCmd.PersistentFlags().Set("config", ""))
}
