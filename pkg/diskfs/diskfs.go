// Package diskfs scans the mount table and computes per-mount disk usage.
//
// Scanning is split into a pure parse step over mount-table text, a
// filesystem-statistics query per surviving mount, and usage arithmetic
// with explicit underflow and overflow guards. The statistics query is
// injected so the parse and arithmetic are testable without real mounts.
package diskfs

import (
	"math"
	"regexp"
	"strings"

	"github.com/casually-blue/mirafetch/pkg/bytefmt"
)

// Mount is one mount-table candidate. Only the first three fields of a
// mount line are consumed.
type Mount struct {
	Device string
	Path   string
	FSType string
}

// Stats is the result of a filesystem-statistics query: raw block counts
// plus the block size in bytes. Avail counts blocks available to
// unprivileged users, not free blocks.
type Stats struct {
	Blocks    uint64
	Avail     uint64
	BlockSize uint64
}

// StatFunc queries filesystem statistics for a mount path.
type StatFunc func(path string) (Stats, error)

// Usage is the computed usage for one real filesystem.
type Usage struct {
	Path  string
	Used  uint64 // bytes; always > 0 and <= Total
	Total uint64 // bytes
}

// Label returns the display label for the mount.
func (u Usage) Label() string {
	return "Disk (" + u.Path + ")"
}

// String renders used and total in IEC units without decimals.
func (u Usage) String() string {
	return bytefmt.Format(u.Used, 0) + "/ " + bytefmt.Format(u.Total, 0)
}

// pseudoRe matches loopback, ramdisk, and fd pseudo-devices as well as
// snap package mounts.
var pseudoRe = regexp.MustCompile(`(^/dev/(loop|ram|fd))|(/var/snap)`)

// ParseMounts extracts candidates from mount-table text. A line is dropped
// when it matches the pseudo-mount pattern or when its device field does
// not begin with /dev/; lines starting with the pool or passthrough
// prefixes (/rpool/, drvfs) are kept despite failing either rule.
func ParseMounts(text string) []Mount {
	var mounts []Mount
	for _, line := range strings.Split(text, "\n") {
		passthrough := strings.HasPrefix(line, "/rpool/") || strings.HasPrefix(line, "drvfs")
		if !passthrough {
			if pseudoRe.MatchString(line) {
				continue
			}
			if !strings.HasPrefix(line, "/dev/") {
				continue
			}
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		mounts = append(mounts, Mount{Device: fields[0], Path: fields[1], FSType: fields[2]})
	}
	return mounts
}

// Scan queries statistics for each mount and computes usage. A mount is
// dropped when the query fails, when available exceeds total (underflow),
// when the used block count is zero (not a real filesystem, e.g. an
// unmounted overlay), or when the byte conversion would overflow.
func Scan(mounts []Mount, stat StatFunc) []Usage {
	var results []Usage
	for _, m := range mounts {
		st, err := stat(m.Path)
		if err != nil {
			continue
		}
		if st.Avail > st.Blocks {
			continue
		}
		usedBlocks := st.Blocks - st.Avail
		if usedBlocks == 0 {
			continue
		}
		used, ok := mulBytes(usedBlocks, st.BlockSize)
		if !ok {
			continue
		}
		total, ok := mulBytes(st.Blocks, st.BlockSize)
		if !ok {
			continue
		}
		results = append(results, Usage{Path: m.Path, Used: used, Total: total})
	}
	return results
}

func mulBytes(blocks, size uint64) (uint64, bool) {
	if size != 0 && blocks > math.MaxUint64/size {
		return 0, false
	}
	return blocks * size, true
}
