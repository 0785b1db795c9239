/* Dump a Millennium expanded carrier table, or reset it to factory defaults. */
package main

import (
	mmanager "github.com/payphreak/mmtool/src"
)

func main() {
	mmanager.MMCarrierMain()
}
