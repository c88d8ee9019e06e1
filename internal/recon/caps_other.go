//go:build !linux

package recon

import "github.com/Karmanya03/Ferret/pkg/models"

// Caps matches nothing on platforms without Linux file capabilities.
func Caps() *Scan {
	return &Scan{
		Name:     "caps",
		Describe: "Files with capabilities",
		Match:    func(*models.Entry) bool { return false },
	}
}
