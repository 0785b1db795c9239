/* Dump or rewrite a Millennium MTR 1.x card table. */
package main

import (
	mmanager "github.com/payphreak/mmtool/src"
)

func main() {
	mmanager.MMCardMain()
}
