//go:build !linux

package sysmon

func affinityCPUs() (int, bool) { return 0, false }
