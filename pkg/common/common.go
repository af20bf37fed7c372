// Package common holds small shared helpers: snowflake identifiers and
// opaque token generation.
package common

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	nodeID := cast.ToInt64(os.Getenv("BEAUTYFIND_NODE_ID")) % 1024
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		panic(err)
	}
	snowflakeNode = node
}

// UUIDint64 returns a process-unique int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUIDstr returns a process-unique identifier in base36 string form.
func UUIDstr() string {
	return snowflakeNode.Generate().Base36()
}

// NextToken generates an opaque session token. It is intentionally not a
// real credential; the auth flow is a simulation.
func NextToken() string {
	return fmt.Sprintf("tok_%s_%06d", snowflakeNode.Generate().Base36(), rand.Intn(1000000))
}
