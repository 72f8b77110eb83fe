// SPDX-License-Identifier: MIT

// Command lvtrace runs instrumented algorithms and prints or serves their
// step traces.
package main

func main() {
	Execute()
}
