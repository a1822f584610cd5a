package mounttab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSampleMounts(t *testing.T) MountList {
	t.Helper()
	list, err := ParseMounts(strings.NewReader(mountSample), Strict)
	require.NoError(t, err)
	return list
}

func TestMountList_SourceMountedAt(t *testing.T) {
	mounts := parseSampleMounts(t)

	assert.True(t, mounts.SourceMountedAt("/dev/sda2", "/"))
	assert.True(t, mounts.SourceMountedAt("/dev/sda1", "/boot/efi"))
	assert.False(t, mounts.SourceMountedAt("/dev/sda1", "/"))
	assert.False(t, mounts.SourceMountedAt("/dev/sdz9", "/"))
}

func TestMountList_BySource(t *testing.T) {
	mounts := parseSampleMounts(t)

	entry := mounts.BySource("/dev/sda1")
	require.NotNil(t, entry)

	want := MountEntry{
		Source: "/dev/sda1",
		Target: "/boot/efi",
		FSType: "vfat",
		Options: OptionList{
			Flag("rw"),
			Flag("relatime"),
			KeyValue("fmask", "0077"),
			KeyValue("dmask", "0077"),
			KeyValue("codepage", "437"),
			KeyValue("iocharset", "iso8859-1"),
			KeyValue("shortname", "mixed"),
			KeyValue("errors", "remount-ro"),
		},
	}
	assert.True(t, entry.Equal(want))

	assert.Nil(t, mounts.BySource("/dev/none"))
}

func TestMountList_ByTarget(t *testing.T) {
	mounts := parseSampleMounts(t)

	entry := mounts.ByTarget("/run")
	require.NotNil(t, entry)
	assert.Equal(t, "tmpfs", entry.Source)

	assert.Nil(t, mounts.ByTarget("/nowhere"))
}

func TestMountList_TargetPrefix(t *testing.T) {
	mounts := parseSampleMounts(t)

	var targets []string
	for _, e := range mounts.TargetPrefix("/") {
		targets = append(targets, e.Target)
	}
	assert.Equal(t, []string{
		"/sys", "/proc", "/dev", "/run", "/",
		"/sys/fs/fuse/connections", "/boot/efi", "/mnt/data",
	}, targets)

	assert.Len(t, mounts.TargetPrefix("/sys"), 2)
	assert.Empty(t, mounts.TargetPrefix("/xyz"))
}

func TestMountList_SourcePrefix(t *testing.T) {
	mounts := parseSampleMounts(t)
	assert.Len(t, mounts.SourcePrefix("/dev/sda"), 3)
}

func TestParseSwapsAndSwapped(t *testing.T) {
	swaps, err := ParseSwaps(strings.NewReader(swapSample), Strict)
	require.NoError(t, err)
	require.Len(t, swaps, 1)

	assert.Equal(t, SwapEntry{
		Source:   "/dev/sda5",
		Kind:     "partition",
		Size:     8388600,
		Used:     0,
		Priority: -2,
	}, swaps[0])

	assert.True(t, swaps.Swapped("/dev/sda5"))
	assert.False(t, swaps.Swapped("/dev/sda1"))
}
