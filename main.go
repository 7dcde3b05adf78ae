//go:generate mockery
package main

import (
	_ "embed"

	"github.com/quotefeed/dibbs/cmd"
)

//go:embed db/schema.sql
var schemaSQL string

func init() {
	cmd.SchemaSQL = schemaSQL
}

func main() {
	cmd.Execute()
}
