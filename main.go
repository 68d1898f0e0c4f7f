//go:generate swag init -g cmd/serve.go -d ./,./feature/diff,./core/report,./core/reconcile -o docs/swagger --outputTypes go

package main

import "csvdiff/cmd"

func main() {
	cmd.Execute()
}
