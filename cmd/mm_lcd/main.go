/* Dump a Millennium LCD (local call determination) table. */
package main

import (
	mmanager "github.com/payphreak/mmtool/src"
)

func main() {
	mmanager.MMLcdMain()
}
