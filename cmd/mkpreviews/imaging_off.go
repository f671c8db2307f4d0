//go:build noimaging

package main

const imagingAvailable = false

func renderStrategy() strategy {
	return nil
}
