package diskfs

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

const sampleMounts = `/dev/nvme0n1p2 / ext4 rw,relatime 0 0
/dev/nvme0n1p1 /boot/efi vfat rw,relatime 0 0
/dev/loop0 /snap/core20/1828 squashfs ro,nodev,relatime 0 0
/dev/loop12 /var/snap/lxd/common ext4 rw 0 0
/dev/ram0 /mnt/ram ext2 rw 0 0
/dev/fd0 /mnt/floppy vfat rw 0 0
proc /proc proc rw,nosuid,nodev,noexec 0 0
sysfs /sys sysfs rw,nosuid 0 0
tmpfs /run tmpfs rw,nosuid,nodev 0 0
/dev/sda1 /data xfs rw,relatime 0 0
/rpool/home /home zfs rw,xattr,posixacl 0 0
drvfs /mnt/c 9p rw,noatime 0 0
`

func TestParseMounts(t *testing.T) {
	got := ParseMounts(sampleMounts)
	want := []Mount{
		{"/dev/nvme0n1p2", "/", "ext4"},
		{"/dev/nvme0n1p1", "/boot/efi", "vfat"},
		{"/dev/sda1", "/data", "xfs"},
		{"/rpool/home", "/home", "zfs"},
		{"drvfs", "/mnt/c", "9p"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseMounts = %v, want %v", got, want)
	}
}

func TestParseMountsExclusions(t *testing.T) {
	tests := []struct {
		name string
		line string
		keep bool
	}{
		{"loop device", "/dev/loop3 /snap/firefox/100 squashfs ro 0 0", false},
		{"ram device", "/dev/ram1 /mnt/r ext2 rw 0 0", false},
		{"fd device", "/dev/fd0 /mnt/f vfat rw 0 0", false},
		{"snap path", "/dev/sdb1 /var/snap/docker ext4 rw 0 0", false},
		{"non-dev device", "overlay /var/lib/docker/overlay2/x overlay rw 0 0", false},
		{"plain dev device", "/dev/sdc1 /backup ext4 rw 0 0", true},
		{"rpool passthrough", "/rpool/ROOT /pool zfs rw 0 0", true},
		{"drvfs passthrough", "drvfs /mnt/d 9p rw 0 0", true},
		{"short line", "/dev/sdd1 /incomplete", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMounts(tt.line)
			if kept := len(got) == 1; kept != tt.keep {
				t.Errorf("ParseMounts(%q) kept=%v, want %v", tt.line, kept, tt.keep)
			}
		})
	}
}

func TestScan(t *testing.T) {
	stats := map[string]Stats{
		"/":     {Blocks: 1000, Avail: 250, BlockSize: 4096},
		"/data": {Blocks: 500, Avail: 100, BlockSize: 4096},
	}
	stat := func(path string) (Stats, error) {
		st, ok := stats[path]
		if !ok {
			return Stats{}, errors.New("no such mount")
		}
		return st, nil
	}

	got := Scan([]Mount{
		{"/dev/a", "/", "ext4"},
		{"/dev/b", "/data", "xfs"},
		{"/dev/c", "/gone", "ext4"},
	}, stat)

	want := []Usage{
		{Path: "/", Used: 750 * 4096, Total: 1000 * 4096},
		{Path: "/data", Used: 400 * 4096, Total: 500 * 4096},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %v, want %v", got, want)
	}
}

func TestScanDropsEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		st   Stats
	}{
		{"underflow", Stats{Blocks: 100, Avail: 200, BlockSize: 4096}},
		{"zero used", Stats{Blocks: 100, Avail: 100, BlockSize: 4096}},
		{"used overflow", Stats{Blocks: math.MaxUint64, Avail: 0, BlockSize: 4096}},
		{"total overflow", Stats{Blocks: math.MaxUint64/4096 + 1, Avail: 1, BlockSize: 4096}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan([]Mount{{"/dev/x", "/x", "ext4"}}, func(string) (Stats, error) {
				return tt.st, nil
			})
			if len(got) != 0 {
				t.Errorf("Scan kept %v, want drop", got)
			}
		})
	}
}

func TestScanUsedNeverExceedsTotal(t *testing.T) {
	got := Scan([]Mount{{"/dev/x", "/x", "ext4"}}, func(string) (Stats, error) {
		return Stats{Blocks: 1000, Avail: 1, BlockSize: 512}, nil
	})
	if len(got) != 1 {
		t.Fatalf("Scan returned %d results, want 1", len(got))
	}
	if got[0].Used > got[0].Total {
		t.Errorf("Used %d > Total %d", got[0].Used, got[0].Total)
	}
}

func TestUsageRendering(t *testing.T) {
	u := Usage{Path: "/home", Used: 250 * 1024 * 1024 * 1024, Total: 500 * 1024 * 1024 * 1024}
	if got := u.Label(); got != "Disk (/home)" {
		t.Errorf("Label = %q", got)
	}
	if got := u.String(); got != "250 GiB/ 500 GiB" {
		t.Errorf("String = %q", got)
	}
}
