/* Convert a Millennium MTR 2.x card table to the MTR 1.x layout. */
package main

import (
	mmanager "github.com/payphreak/mmtool/src"
)

func main() {
	mmanager.MMConvertCardMain()
}
