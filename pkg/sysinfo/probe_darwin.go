//go:build darwin

package sysinfo

import (
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"

	"github.com/casually-blue/mirafetch/pkg/bytefmt"
	"github.com/casually-blue/mirafetch/pkg/diskfs"
	"github.com/casually-blue/mirafetch/pkg/netaddr"
)

// systemVersionPlist identifies the installed macOS product.
const systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

// darwinProber answers the capability interface from sysctl, the
// SystemVersion plist, and gopsutil.
type darwinProber struct {
	noDesktop

	node   string
	kernel string
}

// New constructs the Darwin prober. As on Linux, only the base uname query
// is fatal.
func New() (Prober, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, err
	}
	return &darwinProber{
		node:   siCString(uts.Nodename[:]),
		kernel: siCString(uts.Release[:]),
	}, nil
}

func (p *darwinProber) OS() string {
	data, err := os.ReadFile(systemVersionPlist)
	if err != nil {
		return ""
	}
	name := siPlistString(string(data), "ProductName")
	version := siPlistString(string(data), "ProductVersion")
	if name == "" || version == "" {
		return ""
	}
	return name + " " + version
}

func (p *darwinProber) ID() string { return "macos" }

func (p *darwinProber) Hostname() string { return p.node }

// Machine is not reported on Darwin.
func (p *darwinProber) Machine() string { return "" }

func (p *darwinProber) Kernel() string { return p.kernel }

func (p *darwinProber) CPU() string {
	model, err := unix.Sysctl("machdep.cpu.brand_string")
	if err != nil {
		return ""
	}
	cores, err := unix.SysctlUint32("machdep.cpu.core_count")
	if err != nil {
		// Physical core count via gopsutil when the sysctl is absent.
		n, err := cpu.Counts(false)
		if err != nil || n <= 0 {
			return model
		}
		cores = uint32(n)
	}
	return model + " (" + strconv.FormatUint(uint64(cores), 10) + ")"
}

func (p *darwinProber) Memory() string {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Available > vm.Total {
		return ""
	}
	return bytefmt.Format(vm.Total-vm.Available, 2) + " / " + bytefmt.Format(vm.Total, 2)
}

// Disks is not reported on Darwin; the scanner consumes a Linux mount
// table.
func (p *darwinProber) Disks() []diskfs.Usage { return nil }

func (p *darwinProber) IPs() []string {
	records, err := netaddr.Gather()
	if err != nil {
		return nil
	}
	return netaddr.Collect(records).Render()
}

// GPUs is not reported on Darwin.
func (p *darwinProber) GPUs() []string { return nil }

func (p *darwinProber) Battery() string {
	bats, err := battery.GetAll()
	if err != nil {
		// Partial errors still carry usable readings; anything else
		// collapses to absent.
		if _, ok := err.(battery.Errors); !ok {
			return ""
		}
	}
	var parts []string
	for _, b := range bats {
		if b == nil {
			continue
		}
		if pct := siBatteryPercent(b.Current, b.Full); pct != "" {
			parts = append(parts, pct)
		}
	}
	return strings.Join(parts, ", ")
}

func (p *darwinProber) Locale() string {
	return siLocale(os.Getenv)
}

func (p *darwinProber) Uptime() string {
	seconds, err := host.Uptime()
	if err != nil {
		return ""
	}
	return siFormatUptime(seconds)
}

func (p *darwinProber) Username() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	return u.Username
}

func (p *darwinProber) Shell() string {
	return os.Getenv("SHELL")
}

// Displays is not reported on Darwin.
func (p *darwinProber) Displays() []string { return nil }
