//go:build linux

package sysinfo

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"

	"github.com/casually-blue/mirafetch/pkg/diskfs"
	"github.com/casually-blue/mirafetch/pkg/netaddr"
	"github.com/casually-blue/mirafetch/pkg/osrelease"
	"github.com/casually-blue/mirafetch/pkg/pci"
)

// linuxProber answers the capability interface from /proc, /sys, uname,
// and the os-release cache.
type linuxProber struct {
	noDesktop

	arch    string
	node    string
	kernel  string
	release *osrelease.Map
}

// New constructs the Linux prober. The uname query is the only operation
// whose failure is fatal; everything after construction collapses to
// absent per the interface contract.
func New() (Prober, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, err
	}
	return &linuxProber{
		arch:    siCString(uts.Machine[:]),
		node:    siCString(uts.Nodename[:]),
		kernel:  siCString(uts.Release[:]),
		release: osrelease.New(osrelease.DefaultPath),
	}, nil
}

func (p *linuxProber) OS() string {
	name, ok := p.release.Lookup("NAME")
	if !ok {
		return ""
	}
	parts := []string{name}
	if version := p.release.Get("VERSION"); version != "" {
		parts = append(parts, version)
	}
	parts = append(parts, p.arch)
	return strings.Join(parts, " ")
}

func (p *linuxProber) ID() string {
	return p.release.Get("ID")
}

func (p *linuxProber) Hostname() string { return p.node }

func (p *linuxProber) Machine() string {
	return siReadTrimmed("/sys/class/dmi/id/product_name")
}

func (p *linuxProber) Kernel() string { return p.kernel }

func (p *linuxProber) CPU() string {
	data, err := os.ReadFile("/proc/cpuinfo")
	if err != nil {
		return ""
	}
	return siParseCPUInfo(string(data))
}

func (p *linuxProber) Memory() string {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return ""
	}
	return siParseMemInfo(string(data))
}

func (p *linuxProber) Disks() []diskfs.Usage {
	data, err := os.ReadFile("/proc/mounts")
	if err != nil {
		return nil
	}
	return diskfs.Scan(diskfs.ParseMounts(string(data)), diskfs.Statfs)
}

func (p *linuxProber) IPs() []string {
	records, err := netaddr.Gather()
	if err != nil {
		return nil
	}
	return netaddr.Collect(records).Render()
}

func (p *linuxProber) GPUs() []string {
	cards, err := filepath.Glob("/sys/class/drm/card[0-9]/device")
	if err != nil {
		return nil
	}
	var gpus []string
	for _, card := range cards {
		vendor := siHexID(filepath.Join(card, "vendor"))
		device := siHexID(filepath.Join(card, "device"))
		if vendor == "" || device == "" {
			continue
		}
		gpus = append(gpus, pci.DeviceName(vendor, device))
	}
	return gpus
}

func (p *linuxProber) Battery() string {
	paths, err := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	if err != nil {
		return ""
	}
	for _, path := range paths {
		v := siReadTrimmed(path)
		if _, err := strconv.Atoi(v); err == nil {
			return v + "%"
		}
	}
	return ""
}

func (p *linuxProber) Locale() string {
	return siLocale(os.Getenv)
}

func (p *linuxProber) Uptime() string {
	seconds, err := host.Uptime()
	if err != nil {
		return ""
	}
	return siFormatUptime(seconds)
}

func (p *linuxProber) Username() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

func (p *linuxProber) Shell() string {
	// The invoking shell is this process's parent.
	return siReadTrimmed("/proc/" + strconv.Itoa(os.Getppid()) + "/comm")
}

func (p *linuxProber) Displays() []string {
	paths, err := filepath.Glob("/sys/class/drm/card*-*/modes")
	if err != nil {
		return nil
	}
	var modes []string
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if mode := siFirstLine(string(data)); mode != "" {
			modes = append(modes, mode)
		}
	}
	return modes
}

// siHexID reads a sysfs hardware id file holding a single hex value like
// "0x10de" and returns the bare lowercase digits.
func siHexID(path string) string {
	v := siReadTrimmed(path)
	if !strings.HasPrefix(v, "0x") {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(v, "0x"))
}
