// Package pci resolves PCI vendor and device ids to display names using
// the system pci.ids database.
package pci

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jaypipes/pcidb"
)

var (
	loadOnce sync.Once
	db       *pcidb.PCIDB
)

// load initializes the database once. A load failure leaves db nil and
// every lookup falls back to raw ids.
func load() {
	loadOnce.Do(func() {
		db, _ = pcidb.New()
	})
}

// DeviceName returns a "<vendor> <device>" display string for a PCI
// vendor/device id pair, each a 4-digit lowercase hex string without the
// 0x prefix. Unknown ids fall back to the raw hex pair.
func DeviceName(vendorID, deviceID string) string {
	load()
	if db != nil {
		if vendor, ok := db.Vendors[vendorID]; ok {
			name := cleanVendor(vendor.Name)
			for _, product := range vendor.Products {
				if product.ID == deviceID {
					return fmt.Sprintf("%s %s", name, product.Name)
				}
			}
			return fmt.Sprintf("%s Device %s", name, deviceID)
		}
	}
	return fmt.Sprintf("Device %s:%s", vendorID, deviceID)
}

// cleanVendor shortens the verbose registry names of common GPU vendors.
func cleanVendor(name string) string {
	name = strings.ReplaceAll(name, "Advanced Micro Devices, Inc. [AMD/ATI]", "AMD")
	name = strings.ReplaceAll(name, "Advanced Micro Devices, Inc. [AMD]", "AMD")
	name = strings.ReplaceAll(name, "Intel Corporation", "Intel")
	name = strings.ReplaceAll(name, "NVIDIA Corporation", "NVIDIA")
	return name
}
