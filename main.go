package main

import (
	"github.com/sahaltools/sahal-ledger/cmd"
)

func main() {
	cmd.Execute()
}
