package main

import "fmt"

// Format names one of the three BCn variants this CLI drives.
type Format string

const (
	FormatBC1 Format = "bc1"
	FormatBC2 Format = "bc2"
	FormatBC3 Format = "bc3"
)

func parseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatBC1, FormatBC2, FormatBC3:
		return Format(s), nil
	default:
		return "", fmt.Errorf("dxtltcli: unknown format %q (want bc1, bc2, or bc3)", s)
	}
}

func (f Format) blockSize() int {
	switch f {
	case FormatBC1:
		return 8
	default:
		return 16
	}
}

func parseDecorrelation(s string) (uint8, error) {
	switch s {
	case "none", "":
		return 0, nil
	case "v1":
		return 1, nil
	case "v2":
		return 2, nil
	case "v3":
		return 3, nil
	default:
		return 0, fmt.Errorf("dxtltcli: unknown decorrelation mode %q (want none, v1, v2, or v3)", s)
	}
}
