//go:build linux

package diskfs

import "golang.org/x/sys/unix"

// Statfs queries filesystem statistics via statfs(2).
func Statfs(path string) (Stats, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Stats{}, err
	}
	return Stats{
		Blocks:    st.Blocks,
		Avail:     st.Bavail,
		BlockSize: uint64(st.Bsize),
	}, nil
}
